package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrUsernameTooLong    = errors.New("username must be at most 39 characters")
)

// ===== Token Errors =====
var (
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
)

// ===== Registry Errors =====
var (
	ErrRegistryNotFound     = errors.New("registry not found")
	ErrRegistryLimitReached = errors.New("maximum registries per user reached")
	ErrNotRegistryOwner     = errors.New("only the registry owner may mint cards")
)

// ===== Card Errors =====
var (
	ErrCardNotFound      = errors.New("card not found")
	ErrNotCardHolder     = errors.New("only the current holder may transfer a card")
	ErrTransferToSelf    = errors.New("card is already held by this user")
	ErrRecipientNotFound = errors.New("transfer recipient not found")
)

// ===== Duel Errors =====
var (
	ErrDuelCardNotFound = errors.New("duel card not found")
)
