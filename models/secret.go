package models

import "time"

// SecretHistoryRecord is one snapshot of an account secret's prior value.
// History snapshots are encrypted with a short-lived key derived straight
// from the master-password chain at write time, which is why a master-key
// rotation must re-encrypt every row of this table.
type SecretHistoryRecord struct {
	// ID is the server-assigned primary key.
	ID int64 `json:"-"`

	// UserID identifies the owner of the snapshot.
	UserID int64 `json:"-"`

	// Data is the encrypted snapshot payload.
	Data []byte `json:"-"`

	// KeyMaterial is the wrapped per-row key protecting Data.
	KeyMaterial []byte `json:"-"`

	// KeyVersion marks which key generation the row is encrypted under.
	// Rotation skips rows already at the target version, making a retried
	// run idempotent.
	KeyVersion int64 `json:"-"`

	// CreatedAt is the snapshot creation time.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the SecretHistoryRecord model.
func (s SecretHistoryRecord) TableName() string {
	return "secret_history"
}

// CustomFieldRecord is one user-defined encrypted field attached to a stored
// credential. Like secret history, field payloads sit directly under the
// master-password key chain and participate in rotation.
type CustomFieldRecord struct {
	// ID is the server-assigned primary key.
	ID int64 `json:"-"`

	// UserID identifies the owner of the field.
	UserID int64 `json:"-"`

	// FieldName is the user-visible field label. Not encrypted.
	FieldName string `json:"field_name"`

	// Data is the encrypted field payload.
	Data []byte `json:"-"`

	// KeyMaterial is the wrapped per-row key protecting Data.
	KeyMaterial []byte `json:"-"`

	// KeyVersion marks which key generation the row is encrypted under.
	KeyVersion int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the CustomFieldRecord model.
func (c CustomFieldRecord) TableName() string {
	return "custom_fields"
}
