package helper

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"academia_backend/internals/helpers/dbtime"
)

var (
	cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$|^\d{11}$`)
	nonDigit   = regexp.MustCompile(`\D`)

	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the custom rules registered:
//   - cpf:    11 digits or XXX.XXX.XXX-XX
//   - date:   parseable by dbtime.ParseDate
//   - finite: not NaN / Inf
//   - money:  at most two decimal places, so a numeric(10,2) column stores it unchanged
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return IsValidCPF(fl.Field().String())
		})
		_ = v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
			_, err := dbtime.ParseDate(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})
		_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
			return HasCents(fl.Field().Float())
		})
		validate = v
	})
	return validate
}

// HasCents reports whether f has no more than two decimal places, tolerating
// binary float noise (99.99*100 is 9998.999999999998).
func HasCents(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	c := f * 100
	return math.Abs(c-math.Round(c)) < 1e-6
}

func IsValidCPF(s string) bool {
	return cpfPattern.MatchString(strings.TrimSpace(s))
}

// NormalizeCPF keeps only the digits, capped at 11.
func NormalizeCPF(s string) string {
	digits := nonDigit.ReplaceAllString(s, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	return digits
}

// ValidateStruct runs the validator and converts failures to a ValidationError
// keyed by json field name.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return NewValidationError(MsgInvalidData, nil)
	}
	fields := make(map[string][]string, len(ves))
	for _, fe := range ves {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return NewValidationError(MsgInvalidData, fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be a valid e-mail"
	case "cpf":
		return "must be 11 digits or XXX.XXX.XXX-XX"
	case "date":
		return "must be a valid date"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "finite":
		return "must be a finite number"
	case "money":
		return "must have at most 2 decimal places"
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}

// Normalizer is implemented by request DTOs that trim or default fields
// before validation.
type Normalizer interface {
	Normalize()
}

// ParseBody decodes the JSON body, normalizes and validates it. An empty body
// decodes as {}.
func ParseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) > 0 {
		if err := c.App().Config().JSONDecoder(c.Body(), out); err != nil {
			return NewValidationError("invalid JSON body", nil)
		}
	}
	if n, ok := out.(Normalizer); ok {
		n.Normalize()
	}
	return ValidateStruct(out)
}
