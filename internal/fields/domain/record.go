package domain

import (
	"fmt"
)

// FieldAccessor reads and writes named fields of a record instance.
type FieldAccessor interface {
	GetField(name string) (any, error)
	SetField(name string, value any) error
}

// Record is a persisted entity whose registered fields are encrypted at rest.
//
// RecordIdentity returns false until the record has been assigned a storage identity.
// The correlation token links a not-yet-identified record to its pending data key.
type Record interface {
	RecordType() string
	RecordIdentity() (int64, bool)
	FieldAccessor() FieldAccessor
	CorrelationToken() string
	SetCorrelationToken(token string)
}

// Tracked implements the correlation-token half of Record. Embed it in record structs.
type Tracked struct {
	token string
}

// CorrelationToken returns the token stamped at encode time, or "".
func (t *Tracked) CorrelationToken() string {
	return t.token
}

// SetCorrelationToken stamps or clears the token.
func (t *Tracked) SetCorrelationToken(token string) {
	t.token = token
}

// Field is a typed get/set pair for one field of R.
type Field[R any] struct {
	Get func(R) any
	Set func(R, any) error
}

// Fields is the accessor table of a record type, built once per type.
type Fields[R any] map[string]Field[R]

// Bind returns a FieldAccessor operating on r.
func (f Fields[R]) Bind(r R) FieldAccessor {
	return boundFields[R]{fields: f, record: r}
}

type boundFields[R any] struct {
	fields Fields[R]
	record R
}

func (b boundFields[R]) GetField(name string) (any, error) {
	field, ok := b.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return field.Get(b.record), nil
}

func (b boundFields[R]) SetField(name string, value any) error {
	field, ok := b.fields[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return field.Set(b.record, value)
}

// StringField adapts a string struct field. The empty string reads as absent.
func StringField[R any](ptr func(R) *string) Field[R] {
	return Field[R]{
		Get: func(r R) any {
			if v := *ptr(r); v != "" {
				return v
			}
			return nil
		},
		Set: func(r R, value any) error {
			switch v := value.(type) {
			case string:
				*ptr(r) = v
			case []byte:
				*ptr(r) = string(v)
			case nil:
				*ptr(r) = ""
			default:
				return fmt.Errorf("%w: %T", ErrUnsupportedFieldValue, value)
			}
			return nil
		},
	}
}

// NullableStringField adapts a *string struct field. A nil pointer reads as absent.
func NullableStringField[R any](ptr func(R) **string) Field[R] {
	return Field[R]{
		Get: func(r R) any {
			if v := *ptr(r); v != nil {
				return *v
			}
			return nil
		},
		Set: func(r R, value any) error {
			switch v := value.(type) {
			case string:
				*ptr(r) = &v
			case []byte:
				s := string(v)
				*ptr(r) = &s
			case nil:
				*ptr(r) = nil
			default:
				return fmt.Errorf("%w: %T", ErrUnsupportedFieldValue, value)
			}
			return nil
		},
	}
}

// BytesField adapts a []byte struct field. Ciphertext is stored as the envelope bytes.
func BytesField[R any](ptr func(R) *[]byte) Field[R] {
	return Field[R]{
		Get: func(r R) any {
			if v := *ptr(r); len(v) > 0 {
				return v
			}
			return nil
		},
		Set: func(r R, value any) error {
			switch v := value.(type) {
			case []byte:
				*ptr(r) = v
			case string:
				*ptr(r) = []byte(v)
			case nil:
				*ptr(r) = nil
			default:
				return fmt.Errorf("%w: %T", ErrUnsupportedFieldValue, value)
			}
			return nil
		},
	}
}

// MapField adapts a map[string]string struct field, used with FieldOption.Elements.
func MapField[R any](ptr func(R) *map[string]string) Field[R] {
	return Field[R]{
		Get: func(r R) any {
			if v := *ptr(r); v != nil {
				return v
			}
			return nil
		},
		Set: func(r R, value any) error {
			switch v := value.(type) {
			case map[string]string:
				*ptr(r) = v
			case map[string]any:
				m, err := StringMap(v)
				if err != nil {
					return err
				}
				*ptr(r) = m
			case nil:
				*ptr(r) = nil
			default:
				return fmt.Errorf("%w: %T", ErrUnsupportedFieldValue, value)
			}
			return nil
		},
	}
}

// StringMap converts a map[string]any whose values are all strings (or nil) into a
// map[string]string. Nil values are dropped.
func StringMap(m map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		switch s := v.(type) {
		case string:
			out[k] = s
		case nil:
		default:
			return nil, fmt.Errorf("%w: entry %q is %T", ErrUnsupportedFieldValue, k, v)
		}
	}
	return out, nil
}
