// Package api exposes the steg core operations over HTTP.
//
// The handlers are thin: request decoding, base64/PNG container handling,
// and taxonomy-to-status mapping. All capacity and framing validation
// stays in the core, which remains authoritative regardless of what a
// client checked first.
package api

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v5"

	"github.com/subrosa-io/steg"
	"github.com/subrosa-io/steg/pngio"
)

type Server struct {
	log *slog.Logger
}

func NewServer(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log}
}

func (s *Server) Register(e *echo.Echo) {
	e.POST("/v1/text/encode", s.handleTextEncode)
	e.POST("/v1/text/decode", s.handleTextDecode)
	e.POST("/v1/image/encode", s.handleImageEncode)
	e.POST("/v1/image/decode", s.handleImageDecode)
	e.GET("/v1/image/capacity", s.handleImageCapacity)
}

func (s *Server) handleTextEncode(c *echo.Context) error {
	req, err := decodeJSON[TextEncodeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	out, err := steg.TextEncode(req.Cover, req.Secret, req.Password)
	if err != nil {
		return writeStegError(c, err)
	}
	return c.JSON(http.StatusOK, TextEncodeResponse{
		ID:       newResultID(),
		StegText: out,
	})
}

func (s *Server) handleTextDecode(c *echo.Context) error {
	req, err := decodeJSON[TextDecodeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	secret, err := steg.TextDecode(req.Text, req.Password)
	if err != nil {
		return writeStegError(c, err)
	}
	return c.JSON(http.StatusOK, TextDecodeResponse{
		ID:     newResultID(),
		Secret: secret,
	})
}

func (s *Server) handleImageEncode(c *echo.Context) error {
	req, err := decodeJSON[ImageEncodeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	raw, err := base64.StdEncoding.DecodeString(req.PNG)
	if err != nil {
		return writeBadRequest(c, "png field is not valid base64")
	}
	pixels, w, h, err := pngio.DecodeRGB(bytes.NewReader(raw))
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	out, err := steg.ImageEncode(pixels, w, h, req.Secret, req.Password)
	if err != nil {
		return writeStegError(c, err)
	}

	var buf bytes.Buffer
	if err := pngio.EncodePNG(&buf, out, w, h); err != nil {
		s.log.Error("encode result png", "error", err)
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
	return c.JSON(http.StatusOK, ImageEncodeResponse{
		ID:     newResultID(),
		PNG:    base64.StdEncoding.EncodeToString(buf.Bytes()),
		Width:  w,
		Height: h,
	})
}

func (s *Server) handleImageDecode(c *echo.Context) error {
	req, err := decodeJSON[ImageDecodeRequest](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	raw, err := base64.StdEncoding.DecodeString(req.PNG)
	if err != nil {
		return writeBadRequest(c, "png field is not valid base64")
	}
	pixels, _, _, err := pngio.DecodeRGB(bytes.NewReader(raw))
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	secret, err := steg.ImageDecode(pixels, req.Password)
	if err != nil {
		return writeStegError(c, err)
	}
	return c.JSON(http.StatusOK, ImageDecodeResponse{
		ID:     newResultID(),
		Secret: secret,
	})
}

func (s *Server) handleImageCapacity(c *echo.Context) error {
	pixels, err := strconv.Atoi(c.QueryParam("pixels"))
	if err != nil || pixels < 0 {
		return writeBadRequest(c, "pixels must be a non-negative integer")
	}

	return c.JSON(http.StatusOK, CapacityResponse{
		PixelCount: pixels,
		Capacity:   max(steg.ImageCapacity(pixels), 0),
	})
}
