// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrMalformedBody is returned when a request body cannot be decoded as the
// JSON object the route expects.
var ErrMalformedBody = errors.New("malformed request body")

// Messages shown to API clients. Validation messages come from the
// validators package.
const (
	msgUsernameTaken    = "Expected 'username' to be unique"
	msgInvalidToken     = "Invalid token"
	msgWrongCredentials = "Incorrect username or password"
	msgNotBlogOwner     = "Only the user that created a blog can delete it"
	msgMalformedBody    = "malformed request body"
	msgInvalidData      = "invalid data provided"
	msgInternalError    = "internal server error"
	msgUnknownEndpoint  = "unknown endpoint"
)
