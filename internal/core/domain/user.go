package domain

import "time"

// User models a registered account holder. The password hash lives in a
// separate Credential record and is never embedded here.
type User struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Age     int       `json:"age,omitempty"`
	Pet     string    `json:"pet,omitempty"`
	Entries int64     `json:"entries"`
	Joined  time.Time `json:"joined"`
}

// Credential is the login record: a case-normalized email paired with a
// one-way password hash. Created at registration, never mutated.
type Credential struct {
	Email        string
	PasswordHash string
}

// Session is the result of a successful credential sign-in: a freshly minted
// bearer token registered against the user's id in the session store.
type Session struct {
	UserID string
	Token  string
}

// ProfilePatch carries the mutable profile fields of a user.
type ProfilePatch struct {
	Name string
	Age  int
	Pet  string
}
