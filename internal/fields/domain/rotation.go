package domain

// RotateInput selects the rotation mode.
//
// With an empty DatabaseKey the stored data is read under the configured master key and
// GenerateNewKey must be set. With a DatabaseKey the stored data is read under that key and
// rewrapped under a new master key when GenerateNewKey is set, or under the configured
// master key otherwise.
type RotateInput struct {
	DatabaseKey    string
	GenerateNewKey bool
}

// RotateOutput reports the result of a successful rotation.
type RotateOutput struct {
	// NewMasterKey is the generated master key, hex-encoded. Empty when none was generated.
	// It is never persisted and must be stored by the caller.
	NewMasterKey string
	Rotated      int
}

// RecordFailure names a record that could not be decrypted.
type RecordFailure struct {
	RecordType     string
	RecordIdentity int64
	Field          string
	Err            error
}

// VerifyReport summarizes a verification pass over every record key.
type VerifyReport struct {
	Keys     int
	Records  int
	Fields   int
	Failures []RecordFailure
}

// OK reports whether every record decrypted.
func (r *VerifyReport) OK() bool {
	return len(r.Failures) == 0
}
