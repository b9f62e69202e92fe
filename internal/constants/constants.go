package constants

import "time"

// Context keys
const (
	ContextKeyUserID    = "user_id"
	ContextKeyToken     = "token"
	ContextKeyRequestID = "request_id"
)

// HeaderRequestID carries the per-request correlation id.
const HeaderRequestID = "X-Request-ID"

// RoleMember is the role every signup receives.
const RoleMember uint64 = 2

// Auth
const (
	MinPasswordLength = 8
	BcryptCost        = 10
	DefaultTokenTTL   = 10 * time.Hour
)

// PasswordSpecialChars are the characters that satisfy the "special character" rule.
const PasswordSpecialChars = "#?!@$%^&*-"
