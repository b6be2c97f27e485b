package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification errors returned by TokenCodec.Verify. Every failure collapses
// into exactly one of these three; callers that must not leak the failure
// mode (the request resolver) map all of them to the same response.
var (
	// ErrTokenMalformed indicates the token could not be parsed at all.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrTokenInvalidSignature indicates the signature does not verify
	// against the current secret key.
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	// ErrTokenExpired indicates the token's expiry time has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// Claims is the payload of issued tokens. Subject (the standard "sub" claim)
// carries the username used at issuance; UserID carries the stable principal
// id that ownership checks compare against.
type Claims struct {
	UserID int64 `json:"userId"`
	jwt.RegisteredClaims
}

// TokenCodec encodes identity claims into signed HS256 bearer tokens and
// verifies them back into claims. The secret key and TTL are fixed at
// construction; a codec holds no mutable state and is safe for concurrent
// use by any number of request handlers.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a TokenCodec signing with the given secret and
// issuing tokens valid for ttl.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue builds and signs a token asserting the given identity. It returns
// the encoded token string and its expiry time. Two calls with the same
// inputs produce semantically equivalent but byte-distinct tokens, since
// the issued-at timestamp is part of the signed payload.
func (c *TokenCodec) Issue(subject string, userID int64) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(c.ttl)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify parses the token, recomputes the signature with the secret key and
// checks expiry. On success it returns the embedded claims; on failure it
// returns one of ErrTokenMalformed, ErrTokenInvalidSignature or
// ErrTokenExpired.
func (c *TokenCodec) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			// Unknown alg, missing parts, etc. all count as malformed.
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalidSignature
	}
	return claims, nil
}
