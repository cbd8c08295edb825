package usecase

import (
	"fmt"
	"maps"

	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

// fieldCipher is the key selected for one field: either the engine's master key or an
// explicit hex key.
type fieldCipher struct {
	cipher    cryptoService.Cipher
	useMaster bool
	key       string
}

func (f fieldCipher) seal(plaintext string) (string, error) {
	if f.useMaster {
		return f.cipher.EncryptWithMasterKey([]byte(plaintext))
	}
	return f.cipher.Encrypt([]byte(plaintext), f.key)
}

func (f fieldCipher) open(envelope string) (string, error) {
	var (
		plaintext []byte
		err       error
	)
	if f.useMaster {
		plaintext, err = f.cipher.DecryptWithMasterKey(envelope)
	} else {
		plaintext, err = f.cipher.Decrypt(envelope, f.key)
	}
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// selectCipher applies the key precedence: master key, then explicit key, then record key.
func selectCipher(
	cipher cryptoService.Cipher,
	resolver KeyResolver,
	opt fieldsDomain.FieldOption,
	recordKey *fieldsDomain.RecordKey,
) (fieldCipher, error) {
	switch opt.KeySource() {
	case fieldsDomain.KeySourceMaster:
		return fieldCipher{cipher: cipher, useMaster: true}, nil
	case fieldsDomain.KeySourceExplicit:
		key, err := resolver.Resolve(opt.Key)
		if err != nil {
			return fieldCipher{}, err
		}
		return fieldCipher{cipher: cipher, key: key}, nil
	default:
		if recordKey == nil {
			return fieldCipher{}, fieldsDomain.ErrRecordKeyNotFound
		}
		return fieldCipher{cipher: cipher, key: recordKey.KeyMaterial}, nil
	}
}

// isAbsent reports whether a field value is skipped by the codec.
func isAbsent(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []byte:
		return len(v) == 0
	}
	return false
}

// transformValue applies fn to the plaintext units of value and returns a new value of the
// same shape. Maps require elements; only listed, present, non-empty entries are touched.
func transformValue(
	value any,
	opt fieldsDomain.FieldOption,
	fn func(string) (string, error),
) (any, error) {
	switch v := value.(type) {
	case string:
		return fn(v)
	case []byte:
		out, err := fn(string(v))
		if err != nil {
			return nil, err
		}
		return []byte(out), nil
	case map[string]string:
		if !opt.HasElements() {
			return nil, fmt.Errorf("%w: map value without elements", fieldsDomain.ErrUnsupportedFieldValue)
		}
		out := maps.Clone(v)
		for _, element := range opt.Elements {
			entry, ok := v[element]
			if !ok || entry == "" {
				continue
			}
			result, err := fn(entry)
			if err != nil {
				return nil, fmt.Errorf("element %q: %w", element, err)
			}
			out[element] = result
		}
		return out, nil
	case map[string]any:
		if !opt.HasElements() {
			return nil, fmt.Errorf("%w: map value without elements", fieldsDomain.ErrUnsupportedFieldValue)
		}
		out := maps.Clone(v)
		for _, element := range opt.Elements {
			raw, ok := v[element]
			if !ok || isAbsent(raw) {
				continue
			}
			entry, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %q is %T", fieldsDomain.ErrUnsupportedFieldValue, element, raw)
			}
			result, err := fn(entry)
			if err != nil {
				return nil, fmt.Errorf("element %q: %w", element, err)
			}
			out[element] = result
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", fieldsDomain.ErrUnsupportedFieldValue, value)
	}
}
