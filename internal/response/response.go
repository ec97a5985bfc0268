// Package response renders failures as the API's uniform error body.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fuzumoe/alarm-service/internal/i18n"
	"github.com/fuzumoe/alarm-service/internal/service"
)

// ValidationDetail is one rejected field of a request body.
type ValidationDetail struct {
	FieldName    string `json:"fieldName"`
	ErrorMessage string `json:"errorMessage"`
}

// ErrorBody is returned for every failed request.
type ErrorBody struct {
	Code       int                `json:"code"`
	Message    string             `json:"message"`
	Validation []ValidationDetail `json:"validation"`
}

// Writer translates errors into localized ErrorBody responses.
type Writer struct {
	bundle *i18n.Bundle
	log    zerolog.Logger
}

// NewWriter creates a Writer.
func NewWriter(bundle *i18n.Bundle, log zerolog.Logger) *Writer {
	return &Writer{bundle: bundle, log: log}
}

// Body builds the ErrorBody for err in the given locale. Errors that are
// neither validation nor application errors become 500.
func (w *Writer) Body(locale string, err error) ErrorBody {
	var (
		verr *service.ValidationError
		aerr *service.AppError
	)
	switch {
	case errors.As(err, &verr):
		details := make([]ValidationDetail, len(verr.Fields))
		for i, f := range verr.Fields {
			details[i] = ValidationDetail{FieldName: f.Field, ErrorMessage: w.bundle.T(locale, f.Key)}
		}
		return ErrorBody{
			Code:       http.StatusBadRequest,
			Message:    w.bundle.T(locale, i18n.KeyBadRequest),
			Validation: details,
		}
	case errors.As(err, &aerr):
		return w.simple(locale, aerr.Status, aerr.Key)
	default:
		return w.simple(locale, http.StatusInternalServerError, i18n.KeyInternal)
	}
}

func (w *Writer) simple(locale string, status int, key string) ErrorBody {
	return ErrorBody{Code: status, Message: w.bundle.T(locale, key), Validation: []ValidationDetail{}}
}

// Error aborts the request with the body for err.
func (w *Writer) Error(c *gin.Context, err error) {
	body := w.Body(c.GetString(i18n.ContextKey), err)
	if body.Code >= http.StatusInternalServerError {
		w.log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.AbortWithStatusJSON(body.Code, body)
}

// BadRequest aborts with 400 for input that could not be decoded at all,
// such as malformed JSON or a non-numeric path id.
func (w *Writer) BadRequest(c *gin.Context, err error) {
	w.log.Debug().Err(err).Str("path", c.FullPath()).Msg("bad request")
	c.AbortWithStatusJSON(http.StatusBadRequest,
		w.simple(c.GetString(i18n.ContextKey), http.StatusBadRequest, i18n.KeyBadRequest))
}
