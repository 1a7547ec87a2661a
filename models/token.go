package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be sent in the Authorization header.
//
// Username is a cached copy of the "sub" (subject) claim. It is populated
// during validation so that callers never need to touch raw claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the subject the token was issued for.
	Username string `json:"-"`
}

// GetUsername returns the username the token was issued for, preferring
// the copy cached during validation and falling back to the "sub"
// (subject) claim.
//
// Returns an error if neither source yields a non-empty value. Calling it
// on a token that has not been validated is undefined; callers must
// validate first.
func (t *Token) GetUsername() (string, error) {
	if t.Username != "" {
		return t.Username, nil
	}

	username, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if username == "" {
		return "", errors.New("empty subject in token")
	}

	return username, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
