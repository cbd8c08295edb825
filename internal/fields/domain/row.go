package domain

// Row is a map-backed Record used for tables described in configuration rather than in code.
type Row struct {
	Tracked

	recordType string
	identity   int64
	values     map[string]any
}

// NewRow returns a row of recordType. identity 0 means not yet stored.
func NewRow(recordType string, identity int64, values map[string]any) *Row {
	if values == nil {
		values = make(map[string]any)
	}
	return &Row{recordType: recordType, identity: identity, values: values}
}

func (r *Row) RecordType() string {
	return r.recordType
}

func (r *Row) RecordIdentity() (int64, bool) {
	return r.identity, r.identity != 0
}

// SetIdentity attaches the storage identity after insert.
func (r *Row) SetIdentity(identity int64) {
	r.identity = identity
}

func (r *Row) FieldAccessor() FieldAccessor {
	return r
}

// GetField returns the column value. Missing columns read as absent.
func (r *Row) GetField(name string) (any, error) {
	v, ok := r.values[name]
	if !ok {
		return nil, nil
	}
	switch s := v.(type) {
	case string:
		if s == "" {
			return nil, nil
		}
	case []byte:
		if len(s) == 0 {
			return nil, nil
		}
	}
	return v, nil
}

func (r *Row) SetField(name string, value any) error {
	r.values[name] = value
	return nil
}

// Values returns the underlying column map.
func (r *Row) Values() map[string]any {
	return r.values
}
