package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	fieldsRepository "github.com/allisson/encrypted-fields/internal/fields/repository"
	fieldsService "github.com/allisson/encrypted-fields/internal/fields/service"
	fieldsUsecase "github.com/allisson/encrypted-fields/internal/fields/usecase"
)

type fieldsComponents struct {
	fieldsSource   *fieldsService.YAMLSource
	registry       *fieldsDomain.Registry
	recordKeyRepo  fieldsUsecase.RecordKeyRepository
	recordStore    fieldsUsecase.RecordStore
	recordKeyStore fieldsUsecase.RecordKeyStore
	fieldCodec     fieldsUsecase.FieldCodec
	lifecycle      *fieldsUsecase.Lifecycle
	rotator        fieldsUsecase.Rotator
	verifier       fieldsUsecase.Verifier

	fieldsSourceInit   sync.Once
	registryInit       sync.Once
	recordKeyRepoInit  sync.Once
	recordStoreInit    sync.Once
	recordKeyStoreInit sync.Once
	fieldCodecInit     sync.Once
	lifecycleInit      sync.Once
	rotatorInit        sync.Once
	verifierInit       sync.Once
}

// FieldsSource returns the YAML metadata source read from FIELDS_CONFIG_PATH.
func (c *Container) FieldsSource() (*fieldsService.YAMLSource, error) {
	var err error
	c.fieldsSourceInit.Do(func() {
		c.fieldsSource, err = fieldsService.LoadYAMLSource(c.config.FieldsConfigPath)
		if err != nil {
			err = fmt.Errorf("failed to load fields config %s: %w", c.config.FieldsConfigPath, err)
			c.setInitError("fieldsSource", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("fieldsSource"); storedErr != nil {
		return nil, storedErr
	}
	return c.fieldsSource, nil
}

// Registry returns the frozen field metadata registry.
func (c *Container) Registry() (*fieldsDomain.Registry, error) {
	var err error
	c.registryInit.Do(func() {
		c.registry, err = c.initRegistry()
		if err != nil {
			c.setInitError("registry", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("registry"); storedErr != nil {
		return nil, storedErr
	}
	return c.registry, nil
}

// RecordKeyRepository returns the record key repository for the configured driver.
func (c *Container) RecordKeyRepository() (fieldsUsecase.RecordKeyRepository, error) {
	var err error
	c.recordKeyRepoInit.Do(func() {
		c.recordKeyRepo, err = c.initRecordKeyRepository()
		if err != nil {
			c.setInitError("recordKeyRepo", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("recordKeyRepo"); storedErr != nil {
		return nil, storedErr
	}
	return c.recordKeyRepo, nil
}

// RecordStore returns the table-backed record store.
func (c *Container) RecordStore() (fieldsUsecase.RecordStore, error) {
	var err error
	c.recordStoreInit.Do(func() {
		c.recordStore, err = c.initRecordStore()
		if err != nil {
			c.setInitError("recordStore", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("recordStore"); storedErr != nil {
		return nil, storedErr
	}
	return c.recordStore, nil
}

// RecordKeyStore returns the wrapping record key store.
func (c *Container) RecordKeyStore() (fieldsUsecase.RecordKeyStore, error) {
	var err error
	c.recordKeyStoreInit.Do(func() {
		c.recordKeyStore, err = c.initRecordKeyStore()
		if err != nil {
			c.setInitError("recordKeyStore", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("recordKeyStore"); storedErr != nil {
		return nil, storedErr
	}
	return c.recordKeyStore, nil
}

// FieldCodec returns the field codec, instrumented with metrics.
func (c *Container) FieldCodec() (fieldsUsecase.FieldCodec, error) {
	var err error
	c.fieldCodecInit.Do(func() {
		c.fieldCodec, err = c.initFieldCodec()
		if err != nil {
			c.setInitError("fieldCodec", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("fieldCodec"); storedErr != nil {
		return nil, storedErr
	}
	return c.fieldCodec, nil
}

// Lifecycle returns the persistence hook adapter driving the field codec.
func (c *Container) Lifecycle() (*fieldsUsecase.Lifecycle, error) {
	var err error
	c.lifecycleInit.Do(func() {
		var codec fieldsUsecase.FieldCodec
		codec, err = c.FieldCodec()
		if err != nil {
			err = fmt.Errorf("failed to get field codec for lifecycle: %w", err)
			c.setInitError("lifecycle", err)
			return
		}
		c.lifecycle = fieldsUsecase.NewLifecycle(codec)
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("lifecycle"); storedErr != nil {
		return nil, storedErr
	}
	return c.lifecycle, nil
}

// Rotator returns the key rotation procedure, instrumented with metrics.
func (c *Container) Rotator() (fieldsUsecase.Rotator, error) {
	var err error
	c.rotatorInit.Do(func() {
		c.rotator, err = c.initRotator()
		if err != nil {
			c.setInitError("rotator", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("rotator"); storedErr != nil {
		return nil, storedErr
	}
	return c.rotator, nil
}

// Verifier returns the verification procedure, instrumented with metrics.
func (c *Container) Verifier() (fieldsUsecase.Verifier, error) {
	var err error
	c.verifierInit.Do(func() {
		c.verifier, err = c.initVerifier()
		if err != nil {
			c.setInitError("verifier", err)
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr := c.initError("verifier"); storedErr != nil {
		return nil, storedErr
	}
	return c.verifier, nil
}

// initRegistry discovers registrations from the YAML source and freezes the registry.
func (c *Container) initRegistry() (*fieldsDomain.Registry, error) {
	source, err := c.FieldsSource()
	if err != nil {
		return nil, err
	}

	registry, err := fieldsDomain.NewRegistryFromSource(context.Background(), source)
	if err != nil {
		return nil, fmt.Errorf("failed to build field registry: %w", err)
	}

	c.Logger().Debug("field registry loaded", slog.Any("record_types", registry.RecordTypes()))
	return registry, nil
}

// initRecordKeyRepository creates the record key repository based on the database driver.
func (c *Container) initRecordKeyRepository() (fieldsUsecase.RecordKeyRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for record key repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return fieldsRepository.NewMySQLRecordKeyRepository(db), nil
	case "postgres":
		return fieldsRepository.NewPostgreSQLRecordKeyRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRecordStore creates the record store over the tables declared in the YAML source.
func (c *Container) initRecordStore() (fieldsUsecase.RecordStore, error) {
	var dialect fieldsRepository.Dialect
	switch c.config.DBDriver {
	case "mysql":
		dialect = fieldsRepository.DialectMySQL
	case "postgres":
		dialect = fieldsRepository.DialectPostgreSQL
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	source, err := c.FieldsSource()
	if err != nil {
		return nil, err
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for record store: %w", err)
	}

	return fieldsRepository.NewTableRecordStore(db, dialect, source.Tables()), nil
}

// initRecordKeyStore creates the record key store with the master key sealer.
func (c *Container) initRecordKeyStore() (fieldsUsecase.RecordKeyStore, error) {
	repo, err := c.RecordKeyRepository()
	if err != nil {
		return nil, err
	}

	engine, err := c.CipherEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher engine for record key store: %w", err)
	}

	return fieldsUsecase.NewRecordKeyStore(repo, fieldsService.NewRecordKeySealer(engine)), nil
}

// initFieldCodec creates the field codec with all its dependencies.
func (c *Container) initFieldCodec() (fieldsUsecase.FieldCodec, error) {
	registry, err := c.Registry()
	if err != nil {
		return nil, err
	}

	engine, err := c.CipherEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher engine for field codec: %w", err)
	}

	keyStore, err := c.RecordKeyStore()
	if err != nil {
		return nil, fmt.Errorf("failed to get record key store for field codec: %w", err)
	}

	codec := fieldsUsecase.NewFieldCodec(registry, engine, keyStore, fieldsService.NewEnvKeyResolver())
	return fieldsUsecase.NewFieldCodecWithMetrics(codec, c.BusinessMetrics()), nil
}

// initRotator creates the rotation procedure with all its dependencies.
func (c *Container) initRotator() (fieldsUsecase.Rotator, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for rotator: %w", err)
	}

	keyRepo, err := c.RecordKeyRepository()
	if err != nil {
		return nil, err
	}

	records, err := c.RecordStore()
	if err != nil {
		return nil, err
	}

	registry, err := c.Registry()
	if err != nil {
		return nil, err
	}

	engine, err := c.CipherEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher engine for rotator: %w", err)
	}

	lifecycle, err := c.Lifecycle()
	if err != nil {
		return nil, err
	}

	rotator := fieldsUsecase.NewRotator(
		txManager,
		keyRepo,
		records,
		registry,
		engine,
		fieldsService.NewRecordKeySealer(engine),
		fieldsService.NewEnvKeyResolver(),
		lifecycle,
	)
	return fieldsUsecase.NewRotatorWithMetrics(rotator, c.BusinessMetrics()), nil
}

// initVerifier creates the verification procedure with all its dependencies.
func (c *Container) initVerifier() (fieldsUsecase.Verifier, error) {
	keyRepo, err := c.RecordKeyRepository()
	if err != nil {
		return nil, err
	}

	records, err := c.RecordStore()
	if err != nil {
		return nil, err
	}

	registry, err := c.Registry()
	if err != nil {
		return nil, err
	}

	engine, err := c.CipherEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher engine for verifier: %w", err)
	}

	verifier := fieldsUsecase.NewVerifier(
		keyRepo,
		records,
		registry,
		engine,
		fieldsService.NewRecordKeySealer(engine),
		fieldsService.NewEnvKeyResolver(),
	)
	return fieldsUsecase.NewVerifierWithMetrics(verifier, c.BusinessMetrics()), nil
}
