package models

import "time"

// User is the principal a master-key wrapping belongs to. Authentication of
// the principal itself happens in external backends; this subsystem only
// needs a stable identity to key [MasterKeyRecord] rows by.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier handed over by the
	// external authenticator together with the password.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// CreatedAt is the timestamp when the user account was first seen.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
