package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fieldtrax/sales_visit_app/internal/core/domain"
)

// RegisterCustomValidators installs the binding rules used by the request tags above.
// Must run once before the engine serves requests.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	// hhmm: wall-clock time of day, e.g. "09:30".
	return v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.TimeOfDayLayout, fl.Field().String())
		return err == nil
	})
}
