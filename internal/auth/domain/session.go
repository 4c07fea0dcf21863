package domain

import "time"

// TokenTypeBearer is the only token type we hand out.
const TokenTypeBearer = "Bearer"

// LoginResult is what a successful login returns to the caller.
type LoginResult struct {
	Token     string
	TokenType string
	ExpiresIn time.Duration
	User      UserInfo
}
