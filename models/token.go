// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every identity token.
//
// Besides the standard registered claims it holds exactly the public part of
// the user at issuance time: id and username. The subject claim mirrors id.
type TokenClaims struct {
	jwt.RegisteredClaims

	UserID   string `json:"id"`
	Username string `json:"username"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations and [TokenClaims] for
// access to the decoded payload. SignedString holds the compact serialized
// form of the token ready to be sent to the client.
type Token struct {
	*jwt.Token `json:"-"`

	TokenClaims

	SignedString string `json:"-"`
}

// Identity returns the user identity recovered from the token claims.
func (t *Token) Identity() Identity {
	return Identity{
		ID:       t.UserID,
		Username: t.Username,
	}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
