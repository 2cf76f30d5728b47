package handlers

import (
	"errors"
	"net/http"

	poke "poke_explorer"
	"poke_explorer/internal/service"

	"github.com/gin-gonic/gin"
)

func errorBody(message, cause string) poke.ErrorResponse {
	return poke.ErrorResponse{Message: message, Error: cause}
}

// classify maps a service error to its HTTP status and client-facing body.
// Anything unclassified is a 500.
func classify(err error) (int, poke.ErrorResponse) {
	var se *service.Error
	if !errors.As(err, &se) {
		return http.StatusInternalServerError, errorBody(errInternalFailure, err.Error())
	}

	switch {
	case errors.Is(se.Kind, service.ErrValidation), errors.Is(se.Kind, service.ErrConflict):
		return http.StatusBadRequest, errorBody(se.Message, "")
	case errors.Is(se.Kind, service.ErrAuth):
		return http.StatusUnauthorized, errorBody(se.Message, "")
	case errors.Is(se.Kind, service.ErrNotFound):
		return http.StatusNotFound, errorBody(se.Message, "")
	default:
		return http.StatusInternalServerError, errorBody(se.Message, se.Cause())
	}
}

// respondError writes the classified error. 5xx are logged as errors, the rest at info.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	code, body := classify(err)
	fields := append([]interface{}{"err", err, "status", code}, kv...)
	if code >= http.StatusInternalServerError {
		h.log.Errorw(logKey, fields...)
	} else {
		h.log.Infow(logKey, fields...)
	}
	c.JSON(code, body)
}
