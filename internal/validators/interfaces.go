// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks inbound credential payloads before they reach
// the auth service.
package validators

import "context"

// Validator checks obj and returns one of the package errors when it is
// unacceptable. When fields are given, only those fields are checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
