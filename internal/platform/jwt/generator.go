package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrMissingEmail is returned when a token is requested for a user without an
// email address. Callers must treat this as a hard failure, never as an empty
// but usable token.
var ErrMissingEmail = errors.New("cannot issue token for user without email")

// Clock supplies the current instant for claim timestamps.
// Following Go convention: the consumer declares the interface; the system
// implementation lives in platform/clock.
type Clock interface {
	Now() time.Time
}

// Generator defines the interface for JWT token generation.
type Generator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, email string) (string, error)
}

// generator implements the Generator interface.
type generator struct {
	secret     []byte
	expiration time.Duration
	clock      Clock
}

// NewGenerator creates a new JWT generator with the provided secret,
// expiration duration and time source.
func NewGenerator(secret string, expiration time.Duration, clock Clock) *generator {
	return &generator{
		secret:     []byte(secret),
		expiration: expiration,
		clock:      clock,
	}
}

// GenerateToken creates a signed HS256 token carrying the user's identity.
// The internal id travels in the id claim; the email is present twice, as
// the subject and under the registered email claim name. The jti claim is a
// fresh random UUID so two tokens for the same user are never correlatable.
func (g *generator) GenerateToken(userID uint, email string) (string, error) {
	if email == "" {
		return "", ErrMissingEmail
	}

	now := g.clock.Now()
	claims := jwt.MapClaims{
		"id":    userID,
		"sub":   email,
		"email": email,
		"jti":   uuid.NewString(),
		"exp":   now.Add(g.expiration).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
