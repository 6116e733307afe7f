package palette

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gogpu/dry"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("dry_color", func(fl validator.FieldLevel) bool {
			_, err := dry.Resolve(fl.Field().String())
			return err == nil
		})
		validateInst = v
	})
	return validateInst
}

// ValidationError describes the first rule a palette broke.
type ValidationError struct {
	Field string // lowercased namespace, e.g. "palette.colors[sky]"
	Tag   string // validator tag that failed
	Value string
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("palette: %s failed %q (value %q)", e.Field, e.Tag, e.Value)
	}
	return fmt.Sprintf("palette: %s failed %q", e.Field, e.Tag)
}

// Unwrap returns ErrInvalid.
func (e *ValidationError) Unwrap() error { return ErrInvalid }

// Validate checks the palette against its struct rules.
func (p *Palette) Validate() error {
	err := validatorInstance().Struct(p)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	// Map entries are walked in random order; report the same one every time.
	fe := slices.MinFunc(ves, func(a, b validator.FieldError) int {
		return strings.Compare(a.Namespace(), b.Namespace())
	})
	return &ValidationError{
		Field: strings.ToLower(fe.Namespace()),
		Tag:   fe.Tag(),
		Value: fmt.Sprint(fe.Value()),
	}
}
