package api

// TextEncodeRequest hides a secret in cover text.
type TextEncodeRequest struct {
	Cover    string `json:"cover"`
	Secret   string `json:"secret"`
	Password string `json:"password,omitempty"`
}

// TextEncodeResponse carries the cover text with the invisible run spliced in.
type TextEncodeResponse struct {
	ID       string `json:"id"`
	StegText string `json:"steg_text"`
}

// TextDecodeRequest recovers a secret from steganographic text.
type TextDecodeRequest struct {
	Text     string `json:"text"`
	Password string `json:"password,omitempty"`
}

// TextDecodeResponse carries the recovered secret.
type TextDecodeResponse struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

// ImageEncodeRequest hides a secret in a base64-encoded PNG carrier.
type ImageEncodeRequest struct {
	PNG      string `json:"png"` // base64-encoded image bytes
	Secret   string `json:"secret"`
	Password string `json:"password,omitempty"`
}

// ImageEncodeResponse carries the re-encoded carrier as base64 PNG.
type ImageEncodeResponse struct {
	ID     string `json:"id"`
	PNG    string `json:"png"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ImageDecodeRequest recovers a secret from a base64-encoded image carrier.
type ImageDecodeRequest struct {
	PNG      string `json:"png"`
	Password string `json:"password,omitempty"`
}

// ImageDecodeResponse carries the recovered secret.
type ImageDecodeResponse struct {
	ID     string `json:"id"`
	Secret string `json:"secret"`
}

// CapacityResponse reports how many characters an image carrier can hold.
type CapacityResponse struct {
	PixelCount int `json:"pixel_count"`
	Capacity   int `json:"capacity"`
}

// ResponseError is the error body returned by every failing endpoint.
type ResponseError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}
