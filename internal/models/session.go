package models

import "encoding/json"

// SessionProfile is one social/professional link on a user profile.
type SessionProfile struct {
	Type       string `json:"type"`
	Link       string `json:"link"`
	Visibility string `json:"visibility"`
	ID         string `json:"_id,omitempty"`
}

// SessionUser is the identity slice of the authenticated admin kept in the
// session slot. Unknown upstream fields are preserved in Extra so the
// stored identity round-trips whatever the backend returns.
type SessionUser struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Username       string           `json:"username"`
	CollegeEmail   string           `json:"collegeEmail"`
	PersonalEmail  string           `json:"personalEmail,omitempty"`
	ProfilePicture string           `json:"profilePicture,omitempty"`
	Batch          int              `json:"batch,omitempty"`
	Department     string           `json:"department,omitempty"`
	Profiles       []SessionProfile `json:"profiles,omitempty"`
	Bio            string           `json:"bio,omitempty"`
	Role           string           `json:"role"`

	Extra json.RawMessage `json:"-"`
}

// Session is the persisted session slot. Token and User are all-or-nothing:
// either both are set and IsLoggedIn is true, or the slot is absent.
type Session struct {
	Token      string      `json:"token"`
	User       SessionUser `json:"user"`
	IsLoggedIn bool        `json:"isLoggedIn"`
}

// LoginRequest is the credential payload relayed to the upstream login.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// LoginResult is the upstream login response slice the gateway inspects
// before deciding whether to establish a session.
type LoginResult struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}
