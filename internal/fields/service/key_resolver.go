// Package service provides the building blocks used by the field encryption use cases:
// key reference resolution, record key wrapping, and the YAML metadata source.
package service

import (
	"fmt"
	"strings"

	"github.com/allisson/go-env"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

// EnvKeyResolver resolves "env:NAME" and "%env(NAME)%" references from the environment.
// Any other value is returned as a literal key.
type EnvKeyResolver struct {
	getenv func(name string) string
}

// NewEnvKeyResolver creates a resolver reading the process environment.
func NewEnvKeyResolver() *EnvKeyResolver {
	return &EnvKeyResolver{
		getenv: func(name string) string {
			return env.GetString(name, "")
		},
	}
}

// Resolve returns the key material for key. References to unset variables fail with
// ErrKeyReferenceUnresolved. Resolution happens on every call so rotated environment
// values are picked up without a restart.
func (r *EnvKeyResolver) Resolve(key string) (string, error) {
	name, isRef := referenceName(key)
	if !isRef {
		return strings.TrimSpace(key), nil
	}

	value := strings.TrimSpace(r.getenv(name))
	if value == "" {
		return "", fmt.Errorf("%w: %s", fieldsDomain.ErrKeyReferenceUnresolved, name)
	}
	return value, nil
}

func referenceName(key string) (string, bool) {
	key = strings.TrimSpace(key)
	if name, ok := strings.CutPrefix(key, "env:"); ok {
		return name, true
	}
	if strings.HasPrefix(key, "%env(") && strings.HasSuffix(key, ")%") {
		return key[len("%env(") : len(key)-len(")%")], true
	}
	return "", false
}
