// Package domain defines the core types for per-field envelope encryption.
//
// A record type registers the fields that are stored encrypted together with a FieldOption
// describing which key protects them. Fields without an explicit key share a per-record data
// key (RecordKey) that is itself wrapped under the master key before it reaches storage.
//
// # Key Selection
//
// For every field exactly one key source applies, in order of precedence:
//
//  1. UseMasterKey: the process master key encrypts the value directly
//  2. Key: an explicit key, or a reference resolved from configuration
//  3. the record's own data key
//
// A record gets its data key on the first encode of any field without an explicit key,
// master-key fields included, so every such record is reached by key rotation.
//
// # Structured Values
//
// When Elements is set and the field holds a string map, only the listed entries are
// encrypted. Other entries are left untouched.
package domain

// KeySource identifies which key protects a field.
type KeySource int

const (
	// KeySourceRecord selects the per-record data key.
	KeySourceRecord KeySource = iota

	// KeySourceExplicit selects the explicit key from FieldOption.Key.
	KeySourceExplicit

	// KeySourceMaster selects the process master key.
	KeySourceMaster
)

// String returns the lowercase name used in logs and metrics.
func (s KeySource) String() string {
	switch s {
	case KeySourceMaster:
		return "master"
	case KeySourceExplicit:
		return "explicit"
	default:
		return "record"
	}
}

// FieldOption holds the encryption options for a single field. It is immutable once registered.
type FieldOption struct {
	// Elements restricts encryption to the named entries of a map value. Nil means the whole
	// value is a single plaintext unit.
	Elements []string

	// UseMasterKey encrypts the field directly under the master key.
	UseMasterKey bool

	// Key is an explicit hex key or a reference such as "env:NAME" or "%env(NAME)%".
	Key string
}

// KeySource reports the key that applies to this field. UseMasterKey wins over Key.
func (o FieldOption) KeySource() KeySource {
	if o.UseMasterKey {
		return KeySourceMaster
	}
	if o.Key != "" {
		return KeySourceExplicit
	}
	return KeySourceRecord
}

// NeedsRecordKey reports whether the field is protected by the per-record data key.
func (o FieldOption) NeedsRecordKey() bool {
	return o.KeySource() == KeySourceRecord
}

// ProvisionsRecordKey reports whether encoding this field gives its record a data key.
func (o FieldOption) ProvisionsRecordKey() bool {
	return o.KeySource() != KeySourceExplicit
}

// HasElements reports whether only selected map entries are encrypted.
func (o FieldOption) HasElements() bool {
	return o.Elements != nil
}

// Clone returns a deep copy so callers cannot mutate registered options.
func (o FieldOption) Clone() FieldOption {
	if o.Elements != nil {
		elements := make([]string, len(o.Elements))
		copy(elements, o.Elements)
		o.Elements = elements
	}
	return o
}
