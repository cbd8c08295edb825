package domain

import (
	"time"
)

// RecordKey is the per-record data key.
//
// KeyMaterial holds the hex-encoded key while IsWrapped is false and the base64 envelope of
// that hex string under the master key while IsWrapped is true. A RecordKey must be wrapped
// whenever it reaches storage and unwrapped while the codec uses it.
type RecordKey struct {
	ID             int64
	RecordType     string
	RecordIdentity int64
	KeyMaterial    string
	IsWrapped      bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewRecordKey returns an unwrapped key for a record. identity may be 0 when the record
// has not been stored yet.
func NewRecordKey(recordType string, identity int64, hexKey string) *RecordKey {
	now := time.Now().UTC()
	return &RecordKey{
		RecordType:     recordType,
		RecordIdentity: identity,
		KeyMaterial:    hexKey,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// HasIdentity reports whether the owning record's identity is attached.
func (k *RecordKey) HasIdentity() bool {
	return k.RecordIdentity != 0
}

// Clone returns a copy of the key.
func (k *RecordKey) Clone() *RecordKey {
	c := *k
	return &c
}
