// Package validation runs declarative schema checks on request payloads.
// Schemas are structs with go-playground/validator tags; violations are
// collected in one pass and returned as an ordered list of human-readable
// messages rather than failing on the first error.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ObjectRule lets a schema declare whole-object constraints that cannot be
// expressed as per-field tags, such as "at least one field present" on
// partial updates. Messages are appended after the field-level ones.
type ObjectRule interface {
	ObjectRules() []string
}

// Defaulter lets a schema fill absent optional fields after validation
// passes, before the payload reaches domain logic.
type Defaulter interface {
	ApplyDefaults()
}

// Check validates payload and returns every violation found. A nil slice
// means the payload is valid; defaults have then already been applied.
func Check(payload any) []string {
	var msgs []string

	if err := validate.Struct(payload); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
		} else {
			msgs = append(msgs, err.Error())
		}
	}

	if rule, ok := payload.(ObjectRule); ok {
		msgs = append(msgs, rule.ObjectRules()...)
	}

	if len(msgs) > 0 {
		return msgs
	}

	if d, ok := payload.(Defaulter); ok {
		d.ApplyDefaults()
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
