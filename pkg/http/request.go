package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	apperrors "tramondo/pkg/errors"
)

// DecodeJSON reads a single JSON object from the request body into dst.
// Unknown fields are ignored so that server-derived fields sent by a client
// are dropped rather than stored.
func DecodeJSON(r *http.Request, dst any, invalidMessage string) error {
	if r.Body == nil {
		return apperrors.InvalidInput(invalidMessage)
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return apperrors.InvalidInput("Request body too large")
		}
		if errors.Is(err, io.EOF) {
			return apperrors.InvalidInput(invalidMessage)
		}
		return apperrors.Wrap(err, apperrors.CodeInvalidInput, invalidMessage, http.StatusBadRequest)
	}

	return nil
}
