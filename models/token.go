// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued access token.
//
// The only custom claim is the user id ("id"); e-mail, password and any other
// personal data are never embedded. [jwt.RegisteredClaims] provides the
// standard issuer, issued-at and expiry claims.
type TokenClaims struct {
	// ID is the identifier of the user the token was issued for.
	ID int64 `json:"id"`

	jwt.RegisteredClaims
}

// Token wraps a signed access token together with the decoded claims.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// Claims holds the decoded claim set.
	Claims TokenClaims `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// UserID returns the id of the user the token belongs to.
func (t Token) UserID() int64 {
	return t.Claims.ID
}
