package usecase

import (
	"context"
	"sync/atomic"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

// Lifecycle maps persistence events onto the codec. A persistence layer calls the hooks
// around every write and read of a managed record.
type Lifecycle struct {
	codec     FieldCodec
	suspended atomic.Int32
}

// NewLifecycle creates a Lifecycle driving codec.
func NewLifecycle(codec FieldCodec) *Lifecycle {
	return &Lifecycle{codec: codec}
}

// PrePersist encrypts fields before an insert.
func (l *Lifecycle) PrePersist(ctx context.Context, rec fieldsDomain.Record) error {
	if l.Suspended() {
		return nil
	}
	return l.codec.Encode(ctx, rec)
}

// PostPersist links a key provisioned before the insert, then decrypts fields for use.
func (l *Lifecycle) PostPersist(ctx context.Context, rec fieldsDomain.Record) error {
	if l.Suspended() {
		return nil
	}
	if err := l.codec.LinkPending(ctx, rec); err != nil {
		return err
	}
	return l.codec.Decode(ctx, rec)
}

// PreUpdate encrypts fields before an update.
func (l *Lifecycle) PreUpdate(ctx context.Context, rec fieldsDomain.Record) error {
	if l.Suspended() {
		return nil
	}
	return l.codec.Encode(ctx, rec)
}

// PostUpdate decrypts fields after an update.
func (l *Lifecycle) PostUpdate(ctx context.Context, rec fieldsDomain.Record) error {
	if l.Suspended() {
		return nil
	}
	return l.codec.Decode(ctx, rec)
}

// PostLoad decrypts fields after a read.
func (l *Lifecycle) PostLoad(ctx context.Context, rec fieldsDomain.Record) error {
	if l.Suspended() {
		return nil
	}
	return l.codec.Decode(ctx, rec)
}

// Suspend turns every hook into a no-op until the returned resume func is called.
// Suspensions nest; resume is safe to call more than once.
func (l *Lifecycle) Suspend() (resume func()) {
	l.suspended.Add(1)
	var once atomic.Bool
	return func() {
		if once.CompareAndSwap(false, true) {
			l.suspended.Add(-1)
		}
	}
}

// Suspended reports whether hooks are currently disabled.
func (l *Lifecycle) Suspended() bool {
	return l.suspended.Load() > 0
}
