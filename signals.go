package steg

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Carrier labels for signal fields.
const (
	carrierImage = "image"
	carrierText  = "text"
)

// Signals for steganography events.
var (
	SignalEncodeStart    = capitan.NewSignal("steg.encode.start", "Encode operation beginning")
	SignalEncodeComplete = capitan.NewSignal("steg.encode.complete", "Encode operation finished")
	SignalDecodeStart    = capitan.NewSignal("steg.decode.start", "Decode operation beginning")
	SignalDecodeComplete = capitan.NewSignal("steg.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyCarrier     = capitan.NewStringKey("carrier")
	KeySecretBytes = capitan.NewIntKey("secret_bytes")
	KeyCarrierSize = capitan.NewIntKey("carrier_size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitEncodeStart emits an event when an encode begins. carrierSize is
// bytes for the image path and runes for the text path.
func emitEncodeStart(carrier string, secretBytes, carrierSize int) {
	capitan.Emit(context.Background(), SignalEncodeStart,
		KeyCarrier.Field(carrier),
		KeySecretBytes.Field(secretBytes),
		KeyCarrierSize.Field(carrierSize),
	)
}

// emitEncodeComplete emits an event when an encode finishes.
func emitEncodeComplete(carrier string, carrierSize int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCarrier.Field(carrier),
		KeyCarrierSize.Field(carrierSize),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalEncodeComplete, fields...)
		return
	}
	capitan.Emit(context.Background(), SignalEncodeComplete, fields...)
}

// emitDecodeStart emits an event when a decode begins.
func emitDecodeStart(carrier string, carrierSize int) {
	capitan.Emit(context.Background(), SignalDecodeStart,
		KeyCarrier.Field(carrier),
		KeyCarrierSize.Field(carrierSize),
	)
}

// emitDecodeComplete emits an event when a decode finishes.
func emitDecodeComplete(carrier string, secretBytes int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyCarrier.Field(carrier),
		KeySecretBytes.Field(secretBytes),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalDecodeComplete, fields...)
		return
	}
	capitan.Emit(context.Background(), SignalDecodeComplete, fields...)
}
