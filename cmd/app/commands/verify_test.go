package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	fieldsUsecaseMocks "github.com/allisson/encrypted-fields/internal/fields/usecase/mocks"
)

func TestRunVerify(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	report := &fieldsDomain.VerifyReport{Keys: 3, Records: 3, Fields: 7}

	t.Run("success-text", func(t *testing.T) {
		mockVerifier := fieldsUsecaseMocks.NewMockVerifier(t)
		mockVerifier.EXPECT().Verify(ctx).Return(report, nil).Once()

		var out bytes.Buffer
		err := RunVerify(ctx, mockVerifier, logger, &out, "text")
		require.NoError(t, err)
		require.Contains(t, out.String(), "Encrypted Field Verification")
		require.Contains(t, out.String(), "Status: PASSED")
	})

	t.Run("success-json", func(t *testing.T) {
		mockVerifier := fieldsUsecaseMocks.NewMockVerifier(t)
		mockVerifier.EXPECT().Verify(ctx).Return(report, nil).Once()

		var out bytes.Buffer
		err := RunVerify(ctx, mockVerifier, logger, &out, "json")
		require.NoError(t, err)

		var result map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Equal(t, float64(3), result["records"])
		require.Equal(t, float64(7), result["fields"])
		require.Equal(t, true, result["passed"])
	})

	t.Run("no-keys", func(t *testing.T) {
		mockVerifier := fieldsUsecaseMocks.NewMockVerifier(t)
		mockVerifier.EXPECT().Verify(ctx).Return(&fieldsDomain.VerifyReport{}, nil).Once()

		var out bytes.Buffer
		require.NoError(t, RunVerify(ctx, mockVerifier, logger, &out, "text"))
		require.Contains(t, out.String(), "Status: No record keys found")
	})

	t.Run("failures", func(t *testing.T) {
		mockVerifier := fieldsUsecaseMocks.NewMockVerifier(t)
		failed := &fieldsDomain.VerifyReport{
			Keys:    2,
			Records: 1,
			Failures: []fieldsDomain.RecordFailure{
				{RecordType: "customers", RecordIdentity: 7, Field: "email", Err: errors.New("bad tag")},
			},
		}
		mockVerifier.EXPECT().Verify(ctx).Return(failed, nil).Once()

		var out bytes.Buffer
		err := RunVerify(ctx, mockVerifier, logger, &out, "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "verification failed")
		require.Contains(t, out.String(), "WARNING: 1 record(s) could not be decrypted!")
		require.Contains(t, out.String(), "customers 7 (email): bad tag")
	})

	t.Run("failures-json", func(t *testing.T) {
		mockVerifier := fieldsUsecaseMocks.NewMockVerifier(t)
		failed := &fieldsDomain.VerifyReport{
			Keys: 1,
			Failures: []fieldsDomain.RecordFailure{
				{RecordType: "customers", RecordIdentity: 404, Err: fieldsDomain.ErrRecordNotFound},
			},
		}
		mockVerifier.EXPECT().Verify(ctx).Return(failed, nil).Once()

		var out bytes.Buffer
		require.Error(t, RunVerify(ctx, mockVerifier, logger, &out, "json"))

		var result struct {
			Passed   bool `json:"passed"`
			Failures []struct {
				RecordIdentity int64  `json:"record_identity"`
				Field          string `json:"field"`
			} `json:"failures"`
		}
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.False(t, result.Passed)
		require.Len(t, result.Failures, 1)
		require.Equal(t, int64(404), result.Failures[0].RecordIdentity)
		require.Empty(t, result.Failures[0].Field)
	})

	t.Run("verifier-error", func(t *testing.T) {
		mockVerifier := fieldsUsecaseMocks.NewMockVerifier(t)
		mockVerifier.EXPECT().Verify(ctx).Return(nil, errors.New("connection refused")).Once()

		var out bytes.Buffer
		err := RunVerify(ctx, mockVerifier, logger, &out, "text")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to verify encrypted fields")
		require.Empty(t, out.String())
	})
}
