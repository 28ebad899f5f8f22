// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/go-blog-list/models"
	"github.com/go-playground/validator/v10"
)

// maxPasswordBytes is the longest input bcrypt hashes. The limit is in
// bytes, so a `max` tag (which counts runes) cannot express it.
const maxPasswordBytes = 72

// RequestValidator implements [Validator] for the HTTP request bodies.
// Structural rules live in `validate` struct tags on the models; this type
// turns go-playground/validator field errors into client-facing messages.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with a single shared
// go-playground validator instance.
func NewRequestValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate dispatches validation to the appropriate type-specific method.
// When fields are given only those struct fields (Go names) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.CreateBlogRequest:
		return v.validateCreateBlogRequest(value, fields...)
	case *models.CreateBlogRequest:
		return v.validateCreateBlogRequest(*value, fields...)

	case models.UpdateBlogRequest:
		return v.validateUpdateBlogRequest(value, fields...)
	case *models.UpdateBlogRequest:
		return v.validateUpdateBlogRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	failed, err := v.failedTags(request, fields...)
	if err != nil {
		return err
	}

	switch {
	case failed["required"]:
		return newValidationError(MsgMissingCredentials)
	case failed["min"]:
		return newValidationError(MsgShortCredentials)
	}

	if (len(fields) == 0 || slices.Contains(fields, "Password")) && len(request.Password) > maxPasswordBytes {
		return newValidationError(MsgPasswordTooLong)
	}

	return nil
}

func (v *RequestValidator) validateCreateBlogRequest(request models.CreateBlogRequest, fields ...string) error {
	failed, err := v.failedTags(request, fields...)
	if err != nil {
		return err
	}

	switch {
	case failed["required"]:
		return newValidationError(MsgMissingBlogFields)
	case failed["min"]:
		return newValidationError(MsgNegativeLikes)
	}

	return nil
}

func (v *RequestValidator) validateUpdateBlogRequest(request models.UpdateBlogRequest, fields ...string) error {
	failed, err := v.failedTags(request, fields...)
	if err != nil {
		return err
	}

	if failed["min"] {
		return newValidationError(MsgNegativeLikes)
	}

	return nil
}

// failedTags runs struct validation and returns the set of failed tags.
func (v *RequestValidator) failedTags(obj any, fields ...string) (map[string]bool, error) {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartial(obj, fields...)
	} else {
		err = v.validate.Struct(obj)
	}
	if err == nil {
		return nil, nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, fmt.Errorf("error validating %T: %w", obj, err)
	}

	failed := make(map[string]bool, len(validationErrors))
	for _, fieldErr := range validationErrors {
		failed[fieldErr.Tag()] = true
	}
	return failed, nil
}
