package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxRequestBodySize bounds every JSON request body.
const maxRequestBodySize = 1 << 20

// decodeJSON reads a single JSON object from the request body into dst.
// Any decoding failure is reported as ErrMalformedBody.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return nil
}
