package dto

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	passwordvalidator "github.com/wagslane/go-password-validator"

	autherror "github.com/annguyen2k3/project-api-twitter/internal/errors"
)

// Passwords below this entropy are rejected no matter their length.
const passwordMinEntropyBits = 52

// wrapValidation converts ozzo's field→error map into the taxonomy's
// UnprocessableEntity error so the boundary can serialize it per field.
func wrapValidation(err error) error {
	if err == nil {
		return nil
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for field, ferr := range verrs {
			fields[field] = ferr.Error()
		}
		return autherror.Validation(fields)
	}

	return autherror.Validation(map[string]string{"body": err.Error()})
}

func strongPassword(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required is reported separately
	}
	if err := passwordvalidator.Validate(s, passwordMinEntropyBits); err != nil {
		return fmt.Errorf("password is not strong enough: %v", err)
	}
	return nil
}

func matches(other, message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != other {
			return errors.New(message)
		}
		return nil
	}
}
