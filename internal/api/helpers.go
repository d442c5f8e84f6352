package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/subrosa-io/steg"
)

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
		},
	})
}

// writeStegError maps the core error taxonomy to HTTP statuses.
func writeStegError(c *echo.Context, err error) error {
	switch {
	case errors.Is(err, steg.ErrEmptySecret),
		errors.Is(err, steg.ErrEmptyCover),
		errors.Is(err, steg.ErrCapacity),
		errors.Is(err, steg.ErrBadCarrier):
		return writeError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, steg.ErrNoHiddenMessage):
		return writeError(c, http.StatusNotFound, "format_error", err.Error())
	case errors.Is(err, steg.ErrWrongPassword):
		return writeError(c, http.StatusForbidden, "integrity_error", err.Error())
	case errors.Is(err, steg.ErrCorrupted):
		return writeError(c, http.StatusUnprocessableEntity, "decode_error", err.Error())
	default:
		return writeError(c, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var v T
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}

func newResultID() string {
	return "steg_" + uuid.NewString()
}
