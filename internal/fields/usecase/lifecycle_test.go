package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	fieldsUsecaseMocks "github.com/allisson/encrypted-fields/internal/fields/usecase/mocks"
)

func TestLifecycle_Hooks(t *testing.T) {
	ctx := context.Background()

	t.Run("PrePersist_Encodes", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		w := &widget{Secret: "hello"}

		mockCodec.EXPECT().Encode(ctx, w).Return(nil).Once()

		assert.NoError(t, NewLifecycle(mockCodec).PrePersist(ctx, w))
	})

	t.Run("PreUpdate_Encodes", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		w := &widget{ID: 1, Secret: "hello"}

		mockCodec.EXPECT().Encode(ctx, w).Return(nil).Once()

		assert.NoError(t, NewLifecycle(mockCodec).PreUpdate(ctx, w))
	})

	t.Run("PostPersist_LinksThenDecodes", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		w := &widget{ID: 1}

		linked := mockCodec.EXPECT().LinkPending(ctx, w).Return(nil).Once()
		mockCodec.EXPECT().Decode(ctx, w).Return(nil).Once().NotBefore(linked)

		assert.NoError(t, NewLifecycle(mockCodec).PostPersist(ctx, w))
	})

	t.Run("PostPersist_LinkFailureSkipsDecode", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		w := &widget{ID: 1}
		expectedErr := errors.New("link failed")

		mockCodec.EXPECT().LinkPending(ctx, w).Return(expectedErr).Once()

		assert.ErrorIs(t, NewLifecycle(mockCodec).PostPersist(ctx, w), expectedErr)
	})

	t.Run("PostUpdate_Decodes", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		w := &widget{ID: 1}

		mockCodec.EXPECT().Decode(ctx, w).Return(nil).Once()

		assert.NoError(t, NewLifecycle(mockCodec).PostUpdate(ctx, w))
	})

	t.Run("PostLoad_PropagatesError", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		w := &widget{ID: 1}
		expectedErr := errors.New("decode failed")

		mockCodec.EXPECT().Decode(ctx, w).Return(expectedErr).Once()

		assert.ErrorIs(t, NewLifecycle(mockCodec).PostLoad(ctx, w), expectedErr)
	})
}

func TestLifecycle_Suspend(t *testing.T) {
	ctx := context.Background()
	mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
	lifecycle := NewLifecycle(mockCodec)
	w := &widget{ID: 1}

	resumeOuter := lifecycle.Suspend()
	resumeInner := lifecycle.Suspend()
	assert.True(t, lifecycle.Suspended())

	assert.NoError(t, lifecycle.PrePersist(ctx, w))
	assert.NoError(t, lifecycle.PostPersist(ctx, w))
	assert.NoError(t, lifecycle.PreUpdate(ctx, w))
	assert.NoError(t, lifecycle.PostUpdate(ctx, w))
	assert.NoError(t, lifecycle.PostLoad(ctx, w))

	resumeInner()
	resumeInner()
	assert.True(t, lifecycle.Suspended())

	resumeOuter()
	assert.False(t, lifecycle.Suspended())

	mockCodec.EXPECT().Decode(ctx, w).Return(nil).Once()
	assert.NoError(t, lifecycle.PostLoad(ctx, w))
}
