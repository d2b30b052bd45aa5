// Package services contains application services for the SkillSwap client.
// Services sit between the CLI and the API gateway: they validate input,
// enforce local policies (login throttling, mentor access) and keep the
// session state in sync with server responses.
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/skillswap/skillswap-cli/internal/common"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// checkStruct runs struct tag validation and converts failures into a
// common.ErrValidation with per-field detail, so callers can treat local
// and server-side validation uniformly.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", common.ErrValidation, err.Error())
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", common.ErrValidation, strings.Join(fields, ", "))
}
