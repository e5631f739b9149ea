package models

// Param is one named entry of the generic key-value configuration store the
// subsystem shares with the rest of the application (verifier hash, rotation
// timestamp, installation bookkeeping).
type Param struct {
	// Name is the unique parameter name.
	Name string `json:"name"`

	// Value is the parameter payload. Always a printable string; binary
	// values are base64-encoded by the owning component before saving.
	Value string `json:"value"`
}

// TableName returns the name of the database table
// associated with the Param model.
func (p Param) TableName() string {
	return "params"
}
