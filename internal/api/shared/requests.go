package shared

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Global validator instance for reuse
var validate = validator.New()

// ValidateRequest validates v with its `validate` struct tags.
func ValidateRequest(v any) error {
	return validate.Struct(v)
}

// DecodeAndValidate decodes the request body into v and runs v's Bind hook,
// which is expected to call ValidateRequest.
func DecodeAndValidate(r *http.Request, v render.Binder) error {
	return render.Bind(r, v)
}
