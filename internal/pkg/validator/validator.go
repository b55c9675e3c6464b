package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Calendar date, e.g. 2026-01-20
	validate.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return false
		}
		_, err := time.Parse("2006-01-02", s)
		return err == nil
	})

	validate.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "pending", "confirmed", "cancelled")
	})

	validate.RegisterValidation("payment_status", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "unpaid", "deposit_paid", "paid", "refunded")
	})

	validate.RegisterValidation("inquiry_status", func(fl validator.FieldLevel) bool {
		return oneOf(fl.Field().String(), "new", "contacted", "converted", "closed")
	})
}

func oneOf(value string, allowed ...string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "iso_date":
			errors[field] = "Invalid date. Expected format: YYYY-MM-DD"
		case "booking_status":
			errors[field] = "Invalid status. Must be: pending, confirmed, or cancelled"
		case "payment_status":
			errors[field] = "Invalid payment status. Must be: unpaid, deposit_paid, paid, or refunded"
		case "inquiry_status":
			errors[field] = "Invalid status. Must be: new, contacted, converted, or closed"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}
