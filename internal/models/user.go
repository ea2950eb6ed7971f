package models

import "time"

type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"passwordHash,omitempty"`
	// Password is only set on records imported from before hashing was
	// introduced; login falls back to a plain-text compare for them.
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Session is the tab-wide login state: either LoggedOut or LoggedIn
// with the active user. The zero value is LoggedOut.
type Session struct {
	user *User
}

func LoggedOut() Session {
	return Session{}
}

func LoggedIn(u User) Session {
	return Session{user: &u}
}

// User returns the active user and whether anyone is logged in.
func (s Session) User() (User, bool) {
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}
