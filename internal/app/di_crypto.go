package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
)

type cryptoComponents struct {
	aeadManager  cryptoService.AEADManager
	kmsService   cryptoService.KMSService
	masterKey    string
	cipherEngine *cryptoService.CipherEngine

	aeadManagerInit  sync.Once
	kmsServiceInit   sync.Once
	masterKeyInit    sync.Once
	cipherEngineInit sync.Once
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// MasterKey returns the hex master key, decrypting it through KMS when a keeper URI is
// configured. An unset MASTER_KEY yields an empty key; operations that need it fail later
// with ErrMasterKeyNotSet.
func (c *Container) MasterKey() (string, error) {
	var err error
	c.masterKeyInit.Do(func() {
		c.masterKey, err = c.initMasterKey()
		if err != nil {
			c.setInitError("masterKey", err)
		}
	})
	if err != nil {
		return "", err
	}
	if storedErr := c.initError("masterKey"); storedErr != nil {
		return "", storedErr
	}
	return c.masterKey, nil
}

// CipherEngine returns the cipher engine for the configured algorithm and master key.
func (c *Container) CipherEngine() (*cryptoService.CipherEngine, error) {
	var err error
	c.cipherEngineInit.Do(func() {
		c.cipherEngine, err = c.initCipherEngine()
		if err != nil {
			c.setInitError("cipherEngine", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("cipherEngine"); storedErr != nil {
		return nil, storedErr
	}
	return c.cipherEngine, nil
}

// initMasterKey loads MASTER_KEY, tolerating its absence.
func (c *Container) initMasterKey() (string, error) {
	logger := c.Logger()

	masterKey, err := cryptoDomain.LoadMasterKey(
		context.Background(),
		c.config.MasterKey,
		c.config.KMSKeyURI,
		c.KMSService(),
		logger,
	)
	if errors.Is(err, cryptoDomain.ErrMasterKeyNotSet) {
		logger.Warn("MASTER_KEY is not set, master key operations will fail")
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load master key: %w", err)
	}

	if c.config.KMSKeyURI != "" {
		logger.Info("master key loaded with kms", slog.String("kms_key_uri", c.config.KMSKeyURI))
	}
	return masterKey, nil
}

// initCipherEngine validates the algorithm and the master key length at startup.
func (c *Container) initCipherEngine() (*cryptoService.CipherEngine, error) {
	alg, err := cryptoDomain.ParseAlgorithm(c.config.Cipher)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cipher: %w", err)
	}

	masterKey, err := c.MasterKey()
	if err != nil {
		return nil, err
	}

	engine, err := cryptoService.NewCipherEngine(c.AEADManager(), alg, masterKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher engine: %w", err)
	}

	if masterKey != "" {
		if err := engine.ValidateKey(masterKey); err != nil {
			return nil, fmt.Errorf("invalid master key for %s: %w", alg, err)
		}
	}

	return engine, nil
}
