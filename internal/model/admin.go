package model

import "time"

type Admin struct {
	ID           string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

type Credentials struct {
	Username string
	Password string
}

type Token struct {
	AccessToken string
	ExpiresAt   time.Time
	Username    string
}

// Claims is what the auth middleware puts into the request context.
type Claims struct {
	AdminID  string
	Username string
}
