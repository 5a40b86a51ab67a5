// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password is wrong. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserCreationFailed is returned when the credential store rejects a
	// new identity (password policy, storage failure at insert time).
	ErrUserCreationFailed = errors.New("error creating the user, please try again later")

	// ErrTokenGeneration is returned when a user was authenticated or created
	// but no token could be signed for them.
	ErrTokenGeneration = errors.New("failed to generate token")
)
