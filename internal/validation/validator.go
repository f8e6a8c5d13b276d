package validation

import (
	"reflect"
	"strings"
	"sync"
	"time"

	"roundup-savings/internal/models"
	"roundup-savings/internal/roundup"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("rounding_rule", validateRoundingRule)
	_ = v.RegisterValidation("ymd_date", validateYMDDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateUsername allows 3-50 letters, digits and underscores
func validateUsername(fl validator.FieldLevel) bool {
	return models.IsValidUsername(fl.Field().String())
}

func validateRoundingRule(fl validator.FieldLevel) bool {
	return roundup.Rule(fl.Field().String()).Valid()
}

// validateYMDDate accepts calendar dates in YYYY-MM-DD form
func validateYMDDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
