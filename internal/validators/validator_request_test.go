// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func assertValidationMessage(t *testing.T, err error, want string) {
	t.Helper()
	if want == "" {
		assert.NoError(t, err)
		return
	}
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, want, validationErr.Message)
	assert.Equal(t, want, err.Error())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), models.LoginRequest{}), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_RegisterRequest(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
		want    string
	}{
		{name: "valid", request: models.RegisterRequest{Username: "teemu", Name: "Teemu Teekkari", Password: "salainen"}},
		{name: "valid without name", request: models.RegisterRequest{Username: "abc", Password: "abc"}},
		{name: "missing username", request: models.RegisterRequest{Password: "salainen"}, want: MsgMissingCredentials},
		{name: "missing password", request: models.RegisterRequest{Username: "teemu"}, want: MsgMissingCredentials},
		{name: "missing both", request: models.RegisterRequest{}, want: MsgMissingCredentials},
		{name: "missing wins over short", request: models.RegisterRequest{Username: "ab"}, want: MsgMissingCredentials},
		{name: "short username", request: models.RegisterRequest{Username: "ab", Password: "abc"}, want: MsgShortCredentials},
		{name: "short password", request: models.RegisterRequest{Username: "abc", Password: "ab"}, want: MsgShortCredentials},
		{name: "password at bcrypt limit", request: models.RegisterRequest{Username: "abc", Password: strings.Repeat("a", 72)}},
		{name: "password over bcrypt limit", request: models.RegisterRequest{Username: "abc", Password: strings.Repeat("a", 73)}, want: MsgPasswordTooLong},
		// 30 runes, 75 bytes
		{name: "multibyte password over limit", request: models.RegisterRequest{Username: "abc", Password: strings.Repeat("ä€", 15)}, want: MsgPasswordTooLong},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidationMessage(t, v.Validate(context.Background(), tt.request), tt.want)
			// pointer form dispatches to the same rules
			assertValidationMessage(t, v.Validate(context.Background(), &tt.request), tt.want)
		})
	}
}

func TestValidate_CreateBlogRequest(t *testing.T) {
	tests := []struct {
		name    string
		request models.CreateBlogRequest
		want    string
	}{
		{name: "valid without likes", request: models.CreateBlogRequest{Title: "T", URL: "U"}},
		{name: "valid with zero likes", request: models.CreateBlogRequest{Title: "T", URL: "U", Likes: ptr(0)}},
		{name: "valid with likes", request: models.CreateBlogRequest{Title: "T", Author: "A", URL: "U", Likes: ptr(7)}},
		{name: "missing title", request: models.CreateBlogRequest{URL: "U"}, want: MsgMissingBlogFields},
		{name: "missing url", request: models.CreateBlogRequest{Title: "T"}, want: MsgMissingBlogFields},
		{name: "negative likes", request: models.CreateBlogRequest{Title: "T", URL: "U", Likes: ptr(-1)}, want: MsgNegativeLikes},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidationMessage(t, v.Validate(context.Background(), tt.request), tt.want)
		})
	}
}

func TestValidate_UpdateBlogRequest(t *testing.T) {
	tests := []struct {
		name    string
		request models.UpdateBlogRequest
		want    string
	}{
		{name: "empty update", request: models.UpdateBlogRequest{ID: "b1"}},
		{name: "likes only", request: models.UpdateBlogRequest{ID: "b1", Likes: ptr(100)}},
		{name: "all fields", request: models.UpdateBlogRequest{ID: "b1", Title: ptr("T"), Author: ptr("A"), URL: ptr("U"), Likes: ptr(0)}},
		{name: "negative likes", request: models.UpdateBlogRequest{ID: "b1", Likes: ptr(-5)}, want: MsgNegativeLikes},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidationMessage(t, v.Validate(context.Background(), &tt.request), tt.want)
		})
	}
}

func TestValidate_RegisterRequest_PartialSkipsPassword(t *testing.T) {
	v := NewRequestValidator()
	request := models.RegisterRequest{Username: "abc", Password: strings.Repeat("a", 80)}

	assert.NoError(t, v.Validate(context.Background(), request, "Username"))
	assertValidationMessage(t, v.Validate(context.Background(), request, "Password"), MsgPasswordTooLong)
}
