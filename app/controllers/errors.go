package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"techwritehub/app/services"
	"techwritehub/global"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service error kinds to status codes. Internal failures are
// logged with full detail; the client only sees a generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, services.ErrAuth):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "invalid credentials"})
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	default:
		global.Logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("internal error")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
