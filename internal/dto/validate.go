package dto

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/SscSPs/hotel_management_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a request struct against its validate tags. Failures wrap
// apperrors.ErrValidation and name the offending fields.
func Validate(req any) error {
	err := getValidator().Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%s: %w", strings.Join(msgs, "; "), apperrors.ErrValidation)
	}
	return fmt.Errorf("%v: %w", err, apperrors.ErrValidation)
}
