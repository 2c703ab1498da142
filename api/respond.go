package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/authors-haven/backend/errs"
	"github.com/rs/zerolog"
)

// Envelope is the uniform response shape: status is "success" for 2xx,
// "fail" for 4xx and "error" for 5xx.
type Envelope struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) writeJSON(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteSuccess writes a 2xx envelope around the payload.
func (r Responder) WriteSuccess(w http.ResponseWriter, statusCode int, data any) {
	r.writeJSON(w, statusCode, Envelope{Status: "success", Data: data})
}

// WriteError writes the envelope for a failure. Expected failures
// (*errs.ApiErr) keep their status code and message; anything else is logged
// in full and surfaced as a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	if !errors.As(err, &apiErr) || apiErr.StatusCode >= http.StatusInternalServerError {
		// Log the detail internally, never leak it to the client
		if apiErr != nil {
			r.logger.Error().Msg(apiErr.GetFullError())
		} else {
			r.logger.Error().Msg(err.Error())
		}
		r.writeJSON(w, http.StatusInternalServerError, Envelope{
			Status: "error",
			Data:   map[string]string{"message": "An unexpected error occurred"},
		})
		return
	}

	data := map[string]any{"message": apiErr.Error()}
	if apiErr.Field != "" {
		data["field"] = apiErr.Field
	}
	r.writeJSON(w, apiErr.StatusCode, Envelope{Status: "fail", Data: data})
}
