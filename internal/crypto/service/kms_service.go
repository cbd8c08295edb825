package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"

	"gocloud.dev/secrets"
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
)

// KeeperSchemes lists the KMS_KEY_URI schemes with a registered driver.
var KeeperSchemes = []string{"awskms", "azurekeyvault", "base64key", "gcpkms", "hashivault"}

// KMSService opens the keeper that wraps the master key stored in configuration.
type KMSService interface {
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}

type keeperOpener struct{}

// NewKMSService returns a KMSService backed by gocloud.dev/secrets.
func NewKMSService() KMSService {
	return keeperOpener{}
}

// OpenKeeper rejects URIs whose scheme has no driver before dialing the provider.
// The caller closes the returned keeper.
func (keeperOpener) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	u, err := url.Parse(keyURI)
	if err != nil {
		return nil, fmt.Errorf("kms key uri: %w", err)
	}
	if !slices.Contains(KeeperSchemes, u.Scheme) {
		return nil, fmt.Errorf("kms key uri: unsupported scheme %q", u.Scheme)
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("open %s keeper: %w", u.Scheme, err)
	}
	return keeper, nil
}
