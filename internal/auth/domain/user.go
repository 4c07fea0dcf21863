package domain

import "time"

// UserStatus is the enabled flag persisted with every user.
type UserStatus int

const (
	UserStatusDisabled UserStatus = 0
	UserStatusEnabled  UserStatus = 1
)

func (s UserStatus) Enabled() bool { return s == UserStatusEnabled }

type User struct {
	ID            int64
	Username      string
	PasswordHash  string // argon2id PHC string, or bcrypt for imported accounts
	Nickname      string
	Email         string
	Avatar        string
	Role          string
	Status        UserStatus
	LastLoginTime *time.Time // nil until the first successful login
	LastLoginIP   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// UserInfo is the profile subset returned to an authenticated caller.
type UserInfo struct {
	ID            int64
	Username      string
	Nickname      string
	Email         string
	Avatar        string
	Role          string
	LastLoginTime *time.Time
}

func (u User) Info() UserInfo {
	return UserInfo{
		ID:            u.ID,
		Username:      u.Username,
		Nickname:      u.Nickname,
		Email:         u.Email,
		Avatar:        u.Avatar,
		Role:          u.Role,
		LastLoginTime: u.LastLoginTime,
	}
}
