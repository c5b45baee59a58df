package serverutils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateRequest checks struct tags on a bound request body. The returned
// validator.ValidationErrors is mapped to a 400 by the error handler.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
