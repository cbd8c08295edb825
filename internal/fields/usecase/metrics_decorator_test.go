package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	fieldsUsecaseMocks "github.com/allisson/encrypted-fields/internal/fields/usecase/mocks"
	"github.com/allisson/encrypted-fields/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func (m *mockBusinessMetrics) RecordRecords(ctx context.Context, domain, operation, outcome string, count int) {
	m.Called(ctx, domain, operation, outcome, count)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func expectMetrics(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "fields", operation, status).
		Return().
		Once()
	m.On("RecordDuration", ctx, "fields", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

// TestFieldCodecWithMetrics tests the field codec metrics decorator.
func TestFieldCodecWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Encode_RecordsSuccess", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		mockMetrics := &mockBusinessMetrics{}
		w := &widget{Secret: "hello"}

		mockCodec.EXPECT().Encode(ctx, w).Return(nil).Once()
		expectMetrics(ctx, mockMetrics, "field_encode", "success")

		decorator := NewFieldCodecWithMetrics(mockCodec, mockMetrics)
		assert.NoError(t, decorator.Encode(ctx, w))
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Decode_RecordsError", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		mockMetrics := &mockBusinessMetrics{}
		w := &widget{ID: 1}
		expectedErr := errors.New("decode failed")

		mockCodec.EXPECT().Decode(ctx, w).Return(expectedErr).Once()
		expectMetrics(ctx, mockMetrics, "field_decode", "error")

		decorator := NewFieldCodecWithMetrics(mockCodec, mockMetrics)
		assert.ErrorIs(t, decorator.Decode(ctx, w), expectedErr)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("LinkPending_RecordsSuccess", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		mockMetrics := &mockBusinessMetrics{}
		w := &widget{ID: 1}

		mockCodec.EXPECT().LinkPending(ctx, w).Return(nil).Once()
		expectMetrics(ctx, mockMetrics, "key_link", "success")

		decorator := NewFieldCodecWithMetrics(mockCodec, mockMetrics)
		assert.NoError(t, decorator.LinkPending(ctx, w))
		mockMetrics.AssertExpectations(t)
	})

	t.Run("PendingBookkeeping_NotRecorded", func(t *testing.T) {
		mockCodec := fieldsUsecaseMocks.NewMockFieldCodec(t)
		mockMetrics := &mockBusinessMetrics{}
		w := &widget{}

		mockCodec.EXPECT().DiscardPending(w).Return().Once()
		mockCodec.EXPECT().PendingCount().Return(3).Once()

		decorator := NewFieldCodecWithMetrics(mockCodec, mockMetrics)
		decorator.DiscardPending(w)
		assert.Equal(t, 3, decorator.PendingCount())
		mockMetrics.AssertNotCalled(t, "RecordOperation", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// TestRotatorWithMetrics tests the rotator metrics decorator.
func TestRotatorWithMetrics(t *testing.T) {
	ctx := context.Background()
	input := fieldsDomain.RotateInput{GenerateNewKey: true}

	t.Run("Success", func(t *testing.T) {
		mockRotator := fieldsUsecaseMocks.NewMockRotator(t)
		mockMetrics := &mockBusinessMetrics{}
		expected := &fieldsDomain.RotateOutput{NewMasterKey: "abcd", Rotated: 2}

		mockRotator.EXPECT().Rotate(ctx, input).Return(expected, nil).Once()
		expectMetrics(ctx, mockMetrics, "key_rotate", "success")
		mockMetrics.On("RecordRecords", ctx, "fields", "key_rotate", "rotated", 2).Return().Once()

		output, err := NewRotatorWithMetrics(mockRotator, mockMetrics).Rotate(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, expected, output)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockRotator := fieldsUsecaseMocks.NewMockRotator(t)
		mockMetrics := &mockBusinessMetrics{}

		mockRotator.EXPECT().Rotate(ctx, input).Return(nil, fieldsDomain.ErrRotationFailed).Once()
		expectMetrics(ctx, mockMetrics, "key_rotate", "error")

		output, err := NewRotatorWithMetrics(mockRotator, mockMetrics).Rotate(ctx, input)
		assert.ErrorIs(t, err, fieldsDomain.ErrRotationFailed)
		assert.Nil(t, output)
		mockMetrics.AssertExpectations(t)
	})
}

// TestVerifierWithMetrics tests the verifier metrics decorator.
func TestVerifierWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("CleanReport_RecordsSuccess", func(t *testing.T) {
		mockVerifier := fieldsUsecaseMocks.NewMockVerifier(t)
		mockMetrics := &mockBusinessMetrics{}

		mockVerifier.EXPECT().Verify(ctx).Return(&fieldsDomain.VerifyReport{Keys: 1, Records: 1}, nil).Once()
		expectMetrics(ctx, mockMetrics, "verify", "success")
		mockMetrics.On("RecordRecords", ctx, "fields", "verify", "verified", 1).Return().Once()
		mockMetrics.On("RecordRecords", ctx, "fields", "verify", "failed", 0).Return().Once()

		report, err := NewVerifierWithMetrics(mockVerifier, mockMetrics).Verify(ctx)
		assert.NoError(t, err)
		assert.True(t, report.OK())
		mockMetrics.AssertExpectations(t)
	})

	t.Run("FailedRecords_RecordsError", func(t *testing.T) {
		mockVerifier := fieldsUsecaseMocks.NewMockVerifier(t)
		mockMetrics := &mockBusinessMetrics{}
		report := &fieldsDomain.VerifyReport{
			Keys:     1,
			Failures: []fieldsDomain.RecordFailure{{RecordType: "customers", RecordIdentity: 1}},
		}

		mockVerifier.EXPECT().Verify(ctx).Return(report, nil).Once()
		expectMetrics(ctx, mockMetrics, "verify", "error")
		mockMetrics.On("RecordRecords", ctx, "fields", "verify", "verified", 0).Return().Once()
		mockMetrics.On("RecordRecords", ctx, "fields", "verify", "failed", 1).Return().Once()

		got, err := NewVerifierWithMetrics(mockVerifier, mockMetrics).Verify(ctx)
		assert.NoError(t, err)
		assert.Same(t, report, got)
		mockMetrics.AssertExpectations(t)
	})
}
