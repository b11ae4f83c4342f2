// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrPasswordMismatch is returned by PasswordHasher.Compare when the
	// candidate password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password does not match")

	// ErrInvalidToken is returned by TokenManager.Verify for malformed,
	// tampered, expired or foreign tokens.
	ErrInvalidToken = errors.New("token is expired or invalid")

	// ErrEmptyPassword is returned by PasswordHasher.Hash for an empty input.
	ErrEmptyPassword = errors.New("empty password")
)
