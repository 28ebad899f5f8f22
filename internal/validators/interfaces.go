// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks typed request bodies at the HTTP boundary before
// they reach service logic.
//
// Failures are returned as *ValidationError values wrapping [ErrValidation];
// their message is safe to send to the client as is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
