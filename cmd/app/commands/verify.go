package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	fieldsUsecase "github.com/allisson/encrypted-fields/internal/fields/usecase"
)

// RunVerify decrypts every managed record under the current configuration and reports
// the records that fail. Nothing is written back.
func RunVerify(
	ctx context.Context,
	verifier fieldsUsecase.Verifier,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	logger.Info("verifying encrypted fields")

	report, err := verifier.Verify(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify encrypted fields: %w", err)
	}

	if format == "json" {
		if err := outputVerifyJSON(writer, report); err != nil {
			return fmt.Errorf("failed to output JSON: %w", err)
		}
	} else {
		outputVerifyText(writer, report)
	}

	logger.Info("verification completed",
		slog.Int("keys", report.Keys),
		slog.Int("records", report.Records),
		slog.Int("fields", report.Fields),
		slog.Int("failures", len(report.Failures)),
	)

	if !report.OK() {
		return fmt.Errorf("verification failed: %d record(s) could not be decrypted", len(report.Failures))
	}

	return nil
}

func failureLabel(f fieldsDomain.RecordFailure) string {
	if f.Field == "" {
		return fmt.Sprintf("%s %d", f.RecordType, f.RecordIdentity)
	}
	return fmt.Sprintf("%s %d (%s)", f.RecordType, f.RecordIdentity, f.Field)
}

// outputVerifyText outputs the verification result in human-readable text format.
func outputVerifyText(writer io.Writer, report *fieldsDomain.VerifyReport) {
	_, _ = fmt.Fprintf(writer, "Encrypted Field Verification\n")
	_, _ = fmt.Fprintf(writer, "============================\n\n")

	_, _ = fmt.Fprintf(writer, "Record Keys:  %d\n", report.Keys)
	_, _ = fmt.Fprintf(writer, "Records:      %d\n", report.Records)
	_, _ = fmt.Fprintf(writer, "Fields:       %d\n", report.Fields)
	_, _ = fmt.Fprintf(writer, "Failures:     %d\n\n", len(report.Failures))

	switch {
	case !report.OK():
		_, _ = fmt.Fprintf(writer, "WARNING: %d record(s) could not be decrypted!\n\n", len(report.Failures))
		for _, f := range report.Failures {
			_, _ = fmt.Fprintf(writer, "  - %s: %v\n", failureLabel(f), f.Err)
		}
		_, _ = fmt.Fprintf(writer, "\nStatus: FAILED\n")
	case report.Keys == 0:
		_, _ = fmt.Fprintf(writer, "Status: No record keys found\n")
	default:
		_, _ = fmt.Fprintf(writer, "Status: PASSED\n")
	}
}

type verifyFailureJSON struct {
	RecordType     string `json:"record_type"`
	RecordIdentity int64  `json:"record_identity"`
	Field          string `json:"field,omitempty"`
	Error          string `json:"error"`
}

type verifyResultJSON struct {
	Keys     int                 `json:"keys"`
	Records  int                 `json:"records"`
	Fields   int                 `json:"fields"`
	Failures []verifyFailureJSON `json:"failures"`
	Passed   bool                `json:"passed"`
}

// outputVerifyJSON outputs the verification result in JSON format for machine consumption.
func outputVerifyJSON(writer io.Writer, report *fieldsDomain.VerifyReport) error {
	result := verifyResultJSON{
		Keys:     report.Keys,
		Records:  report.Records,
		Fields:   report.Fields,
		Failures: make([]verifyFailureJSON, 0, len(report.Failures)),
		Passed:   report.OK(),
	}
	for _, f := range report.Failures {
		msg := ""
		if f.Err != nil {
			msg = f.Err.Error()
		}
		result.Failures = append(result.Failures, verifyFailureJSON{
			RecordType:     f.RecordType,
			RecordIdentity: f.RecordIdentity,
			Field:          f.Field,
			Error:          msg,
		})
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
	return nil
}
