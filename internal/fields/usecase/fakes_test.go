package usecase

import (
	"context"
	"errors"
	"maps"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	fieldsService "github.com/allisson/encrypted-fields/internal/fields/service"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// memKeyRepo is an in-memory RecordKeyRepository. It refuses unwrapped keys like the SQL
// repositories do.
type memKeyRepo struct {
	mu     sync.Mutex
	nextID int64
	keys   map[int64]*fieldsDomain.RecordKey

	failUpdateAt int
	updates      int
}

func newMemKeyRepo() *memKeyRepo {
	return &memKeyRepo{keys: make(map[int64]*fieldsDomain.RecordKey)}
}

func (r *memKeyRepo) Create(_ context.Context, key *fieldsDomain.RecordKey) error {
	if !key.IsWrapped {
		return fieldsDomain.ErrRecordKeyNotWrapped
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	key.ID = r.nextID
	r.keys[key.ID] = key.Clone()
	return nil
}

func (r *memKeyRepo) Update(_ context.Context, key *fieldsDomain.RecordKey) error {
	if !key.IsWrapped {
		return fieldsDomain.ErrRecordKeyNotWrapped
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	if r.failUpdateAt > 0 && r.updates == r.failUpdateAt {
		return errors.New("update failed")
	}
	if _, ok := r.keys[key.ID]; !ok {
		return fieldsDomain.ErrRecordKeyNotFound
	}
	r.keys[key.ID] = key.Clone()
	return nil
}

func (r *memKeyRepo) GetByIdentity(
	_ context.Context,
	recordType string,
	identity int64,
) (*fieldsDomain.RecordKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range r.keys {
		if key.RecordType == recordType && key.RecordIdentity == identity {
			return key.Clone(), nil
		}
	}
	return nil, fieldsDomain.ErrRecordKeyNotFound
}

func (r *memKeyRepo) List(_ context.Context, _ bool) ([]*fieldsDomain.RecordKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.keys))
	for id := range r.keys {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	keys := make([]*fieldsDomain.RecordKey, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, r.keys[id].Clone())
	}
	return keys, nil
}

func (r *memKeyRepo) snapshot() map[int64]fieldsDomain.RecordKey {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[int64]fieldsDomain.RecordKey, len(r.keys))
	for id, key := range r.keys {
		out[id] = *key
	}
	return out
}

func (r *memKeyRepo) restore(state map[int64]fieldsDomain.RecordKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys = make(map[int64]*fieldsDomain.RecordKey, len(state))
	for id, key := range state {
		k := key
		r.keys[id] = &k
	}
}

type rowKey struct {
	recordType string
	identity   int64
}

// memRecordStore is an in-memory RecordStore over Rows.
type memRecordStore struct {
	mu       sync.Mutex
	nextID   int64
	rows     map[rowKey]map[string]any
	failSave map[int64]bool
}

func newMemRecordStore() *memRecordStore {
	return &memRecordStore{rows: make(map[rowKey]map[string]any), failSave: make(map[int64]bool)}
}

func (s *memRecordStore) Find(_ context.Context, recordType string, identity int64) (fieldsDomain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.rows[rowKey{recordType, identity}]
	if !ok {
		return nil, fieldsDomain.ErrRecordNotFound
	}
	return fieldsDomain.NewRow(recordType, identity, maps.Clone(values)), nil
}

func (s *memRecordStore) Save(_ context.Context, rec fieldsDomain.Record) error {
	row, ok := rec.(*fieldsDomain.Row)
	if !ok {
		return errors.New("unexpected record")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	identity, hasIdentity := row.RecordIdentity()
	if !hasIdentity {
		s.nextID++
		identity = s.nextID
		row.SetIdentity(identity)
	}
	if s.failSave[identity] {
		return errors.New("save failed")
	}
	s.rows[rowKey{row.RecordType(), identity}] = maps.Clone(row.Values())
	return nil
}

func (s *memRecordStore) values(recordType string, identity int64) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.rows[rowKey{recordType, identity}])
}

func (s *memRecordStore) snapshot() map[rowKey]map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[rowKey]map[string]any, len(s.rows))
	for k, v := range s.rows {
		out[k] = maps.Clone(v)
	}
	return out
}

func (s *memRecordStore) restore(state map[rowKey]map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = state
}

// snapshotTxManager restores both stores when the transaction function fails.
type snapshotTxManager struct {
	keys    *memKeyRepo
	records *memRecordStore
}

func (m *snapshotTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	keys := m.keys.snapshot()
	records := m.records.snapshot()
	if err := fn(ctx); err != nil {
		m.keys.restore(keys)
		m.records.restore(records)
		return err
	}
	return nil
}

// staticResolver resolves "env:" references from a map and passes literals through.
type staticResolver map[string]string

func (r staticResolver) Resolve(key string) (string, error) {
	name, isRef := strings.CutPrefix(key, "env:")
	if !isRef {
		return key, nil
	}
	if v, ok := r[name]; ok {
		return v, nil
	}
	return "", fieldsDomain.ErrKeyReferenceUnresolved
}

type testEnv struct {
	cipher   *cryptoService.CipherEngine
	sealer   *fieldsService.RecordKeySealer
	keyRepo  *memKeyRepo
	records  *memRecordStore
	keyStore RecordKeyStore
	registry *fieldsDomain.Registry
	resolver staticResolver
	codec    FieldCodec
}

func newEngine(t *testing.T, masterKey string) *cryptoService.CipherEngine {
	t.Helper()
	engine, err := cryptoService.NewCipherEngine(cryptoService.NewAEADManager(), cryptoDomain.AES256GCM, masterKey)
	require.NoError(t, err)
	return engine
}

func generateKey(t *testing.T) string {
	t.Helper()
	key, err := newEngine(t, "").GenerateKey()
	require.NoError(t, err)
	return key
}

// newTestEnv wires a codec over in-memory storage and a real cipher engine.
func newTestEnv(t *testing.T, masterKey string, registrations ...fieldsDomain.Registration) *testEnv {
	t.Helper()

	registry, err := fieldsDomain.NewRegistryFromSource(
		context.Background(),
		fieldsDomain.StaticSource(registrations),
	)
	require.NoError(t, err)

	engine := newEngine(t, masterKey)
	sealer := fieldsService.NewRecordKeySealer(engine)
	keyRepo := newMemKeyRepo()
	keyStore := NewRecordKeyStore(keyRepo, sealer)
	resolver := staticResolver{}

	return &testEnv{
		cipher:   engine,
		sealer:   sealer,
		keyRepo:  keyRepo,
		records:  newMemRecordStore(),
		keyStore: keyStore,
		registry: registry,
		resolver: resolver,
		codec:    NewFieldCodec(registry, engine, keyStore, resolver),
	}
}

// insert runs the insert lifecycle for a new row: encode, save, link.
func (e *testEnv) insert(t *testing.T, row *fieldsDomain.Row) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.codec.Encode(ctx, row))
	require.NoError(t, e.records.Save(ctx, row))
	require.NoError(t, e.codec.LinkPending(ctx, row))
}

func (e *testEnv) decodeStored(t *testing.T, recordType string, identity int64) map[string]any {
	t.Helper()
	ctx := context.Background()
	rec, err := e.records.Find(ctx, recordType, identity)
	require.NoError(t, err)
	require.NoError(t, e.codec.Decode(ctx, rec))
	return rec.(*fieldsDomain.Row).Values()
}
