package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()

	// Lookback windows accepted by the history and analytics endpoints.
	_ = v.RegisterValidation("timeframe", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "1month", "3months", "6months", "1year":
			return true
		}
		return false
	})

	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
