package entities

import "time"

// Credential is an entry of the static credential table.
type Credential struct {
	Email        string
	Name         string
	PasswordHash string
}

// User is the public view of an authenticated identity.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Session holds the state kept for a logged in client.
type Session struct {
	Token     string    // opaque token handed to the client
	UserEmail string    // email of the authenticated user
	UserName  string    // display name of the authenticated user
	CreatedAt time.Time // when the session was established
}

// NewSession creates a session for the given token and credential.
func NewSession(token string, cred Credential) *Session {
	return &Session{
		Token:     token,
		UserEmail: cred.Email,
		UserName:  cred.Name,
		CreatedAt: time.Now().UTC(),
	}
}

// User returns the identity stored in the session.
func (s *Session) User() User {
	return User{Email: s.UserEmail, Name: s.UserName}
}
