package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the calendar-date wire format for appointment dates.
const DateLayout = "2006-01-02"

var timeOfDayRegex = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the json field name so clients can match
	// them against the payload they sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timeOfDayRegex.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		d, err := time.ParseInLocation(DateLayout, fl.Field().String(), time.Local)
		if err != nil {
			return false
		}
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !d.Before(today)
	})

	return v
}

// FieldError describes a single violated constraint on a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate performs validation on a struct.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors converts a validator error into the full list of
// field-level violations, not just the first one.
func FieldErrors(err error) []FieldError {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		out = append(out, FieldError{Field: e.Field(), Message: fieldMessage(e)})
	}
	return out
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s must be less than %s characters", e.Field(), e.Param())
	case "hhmm":
		return "time must be in HH:MM format"
	case "futuredate":
		return "appointment date cannot be in the past"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}

// BindAndValidate binds the request body to a struct and validates it.
// If binding or validation fails, it sends a 400 response and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		BadRequest(c, "Invalid request payload: "+err.Error())
		return false
	}
	if err := Validate(obj); err != nil {
		ValidationFailed(c, FieldErrors(err))
		return false
	}
	return true
}
