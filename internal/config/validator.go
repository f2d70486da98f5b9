package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance.
// The custom zeroone rule — a matrix cell must be 0 or 1 — is registered
// exactly once.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("zeroone", func(fl validator.FieldLevel) bool {
			cell := fl.Field().Int()

			return cell == 0 || cell == 1
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a document:
// struct tags first (value domains), then the form rule — exactly one of
// the matrix form and the vertices/edges form must be present.
func Validate(d *Document) error {
	if d == nil {
		return ErrEmptyDocument
	}

	if err := validatorInstance().Struct(d); err != nil {
		return convertFieldError(err)
	}

	hasMatrix := d.Matrix != nil
	hasVertices := d.Vertices != nil
	switch {
	case hasMatrix && (hasVertices || len(d.Edges) > 0):
		return ErrBothForms
	case !hasMatrix && !hasVertices && len(d.Edges) > 0:
		return ErrEdgesWithoutVertices
	case !hasMatrix && !hasVertices:
		return ErrEmptyDocument
	}

	return nil
}

// convertFieldError rewrites the first validator failure into a message
// naming the offending field in yaml-ish lowercase.
func convertFieldError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]

		return fmt.Errorf("config: field %s fails rule %q", yamlishField(fe), fe.Tag())
	}

	return fmt.Errorf("config: validate: %w", err)
}

// yamlishField lowers a validator struct namespace ("Document.Matrix[1][2]")
// into the casing users typed in their YAML.
func yamlishField(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	return strings.Join(parts, ".")
}
