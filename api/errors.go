package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tcallow/gatehouse/account"
)

// maxAuthBodySize caps auth request bodies. Credentials and names are short;
// anything larger is rejected before decoding.
const maxAuthBodySize = 64 * 1024

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Message: msg})
}

// mapStoreError translates account store sentinel errors into the status
// codes and messages of the original service's wire contract. Note the 500
// for bad credentials: that is the contract, not an accident here.
func mapStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, account.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "username is taken")
	case errors.Is(err, account.ErrInvalidCredentials):
		writeError(w, http.StatusInternalServerError, "Incorrect username or password")
	case errors.Is(err, account.ErrNotFound):
		writeError(w, http.StatusNotFound, "User does not exist")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON decodes a JSON request body into T with a size cap. On failure
// it writes the error response and returns false.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, maxSize int64) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return v, false
	}
	return v, true
}
