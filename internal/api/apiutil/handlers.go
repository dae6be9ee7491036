package apiutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
)

type HandlerError struct {
	Status  int
	Message string
	Err     error
}

func (e HandlerError) Error() string {
	return e.Message
}

func (e HandlerError) Unwrap() error {
	return e.Err
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	if err := encoder.Encode(payload); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteError writes a JSON error body with the given status.
func WriteError(w http.ResponseWriter, status int, message string) {
	if err := WriteJSON(w, status, ErrorResponse{Error: message}); err != nil {
		http.Error(w, message, status)
	}
}

// RespondError writes err as JSON. A HandlerError supplies its own status and
// message; anything else is a 500 with a generic message. Server errors are
// logged with the underlying cause.
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.Ctx(r.Context())

	var handlerErr HandlerError
	if !errors.As(err, &handlerErr) {
		handlerErr = HandlerError{Status: http.StatusInternalServerError, Message: "Internal Server Error", Err: err}
	}

	if handlerErr.Status >= http.StatusInternalServerError {
		logger.Error().Err(handlerErr.Err).Int("status", handlerErr.Status).Msg(handlerErr.Message)
	} else {
		logger.Debug().Err(handlerErr.Err).Int("status", handlerErr.Status).Msg(handlerErr.Message)
	}

	WriteError(w, handlerErr.Status, handlerErr.Message)
}
