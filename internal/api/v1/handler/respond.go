package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"courseplanner/internal/service"
	"courseplanner/internal/store"
)

// errorDTO is the error envelope every failure response uses. Message carries
// the underlying failure detail on 5xx responses.
type errorDTO struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, summary, detail string) {
	writeJSON(w, status, errorDTO{Error: summary, Message: detail})
}

// writeServiceError translates an error from the service layer into the
// response contract: validation failures and empty updates are client errors,
// a missing item is 404, and anything else is a 500 carrying the underlying
// failure's message.
func writeServiceError(w http.ResponseWriter, err error, notFoundMsg, fallback string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Error(), "")
	case errors.Is(err, store.ErrNoFieldsToUpdate):
		writeError(w, http.StatusBadRequest, "No fields to update", "")
	case errors.Is(err, store.ErrItemNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg, "")
	default:
		writeError(w, http.StatusInternalServerError, fallback, err.Error())
	}
}
