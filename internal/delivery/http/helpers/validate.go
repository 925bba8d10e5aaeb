package helpers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements Validator, runs Validate(). On decode or validation failure
// it writes a 400 JSON error and returns false; otherwise returns true.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := Decode(r, dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONFormError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "), dest)
			return false
		}
	}
	return true
}

// Decode decodes the request body into dest, rejecting unknown fields.
func Decode(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

// PathID reads the named path value as a positive int64. On failure it writes
// a 404 JSON error, since no record can have such an id, and returns false.
func PathID(w http.ResponseWriter, r *http.Request, name, resource string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, resource+" not found")
		return 0, false
	}
	return id, true
}
