package controller

import (
	"encoding/json"
	"net/http"

	"civic/pkg/serrors"
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON encodes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// WriteError replies with the error envelope for kind k.
func WriteError(w http.ResponseWriter, k serrors.Kind, message string) {
	WriteJSON(w, serrors.HTTPStatus(k), ErrorResponse{
		Code:    k.Error(),
		Message: message,
	})
}
