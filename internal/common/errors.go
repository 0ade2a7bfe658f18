// Package common defines shared constants and sentinel errors used across
// Planvite components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session / token lifecycle errors.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Pre-call validation errors (caught before a request is made).
	ErrValidation = errors.New("validation error")

	// Generic flow-control errors.
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)
