package usecase

import (
	"context"
	"time"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	"github.com/allisson/encrypted-fields/internal/metrics"
)

const metricsDomain = "fields"

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// fieldCodecWithMetrics decorates FieldCodec with metrics instrumentation.
type fieldCodecWithMetrics struct {
	next    FieldCodec
	metrics metrics.BusinessMetrics
}

// NewFieldCodecWithMetrics wraps a FieldCodec with metrics recording.
func NewFieldCodecWithMetrics(codec FieldCodec, m metrics.BusinessMetrics) FieldCodec {
	return &fieldCodecWithMetrics{
		next:    codec,
		metrics: m,
	}
}

// Encode records metrics for field encryption.
func (f *fieldCodecWithMetrics) Encode(ctx context.Context, rec fieldsDomain.Record) error {
	start := time.Now()
	err := f.next.Encode(ctx, rec)

	status := statusOf(err)
	f.metrics.RecordOperation(ctx, metricsDomain, "field_encode", status)
	f.metrics.RecordDuration(ctx, metricsDomain, "field_encode", time.Since(start), status)

	return err
}

// Decode records metrics for field decryption.
func (f *fieldCodecWithMetrics) Decode(ctx context.Context, rec fieldsDomain.Record) error {
	start := time.Now()
	err := f.next.Decode(ctx, rec)

	status := statusOf(err)
	f.metrics.RecordOperation(ctx, metricsDomain, "field_decode", status)
	f.metrics.RecordDuration(ctx, metricsDomain, "field_decode", time.Since(start), status)

	return err
}

// LinkPending records metrics for pending key linking.
func (f *fieldCodecWithMetrics) LinkPending(ctx context.Context, rec fieldsDomain.Record) error {
	start := time.Now()
	err := f.next.LinkPending(ctx, rec)

	status := statusOf(err)
	f.metrics.RecordOperation(ctx, metricsDomain, "key_link", status)
	f.metrics.RecordDuration(ctx, metricsDomain, "key_link", time.Since(start), status)

	return err
}

// DiscardPending delegates without recording.
func (f *fieldCodecWithMetrics) DiscardPending(rec fieldsDomain.Record) {
	f.next.DiscardPending(rec)
}

// PendingCount delegates without recording.
func (f *fieldCodecWithMetrics) PendingCount() int {
	return f.next.PendingCount()
}

// rotatorWithMetrics decorates Rotator with metrics instrumentation.
type rotatorWithMetrics struct {
	next    Rotator
	metrics metrics.BusinessMetrics
}

// NewRotatorWithMetrics wraps a Rotator with metrics recording.
func NewRotatorWithMetrics(rotator Rotator, m metrics.BusinessMetrics) Rotator {
	return &rotatorWithMetrics{
		next:    rotator,
		metrics: m,
	}
}

// Rotate records metrics for key rotation.
func (r *rotatorWithMetrics) Rotate(
	ctx context.Context,
	input fieldsDomain.RotateInput,
) (*fieldsDomain.RotateOutput, error) {
	start := time.Now()
	output, err := r.next.Rotate(ctx, input)

	status := statusOf(err)
	r.metrics.RecordOperation(ctx, metricsDomain, "key_rotate", status)
	r.metrics.RecordDuration(ctx, metricsDomain, "key_rotate", time.Since(start), status)
	if output != nil {
		r.metrics.RecordRecords(ctx, metricsDomain, "key_rotate", "rotated", output.Rotated)
	}

	return output, err
}

// verifierWithMetrics decorates Verifier with metrics instrumentation.
type verifierWithMetrics struct {
	next    Verifier
	metrics metrics.BusinessMetrics
}

// NewVerifierWithMetrics wraps a Verifier with metrics recording.
func NewVerifierWithMetrics(verifier Verifier, m metrics.BusinessMetrics) Verifier {
	return &verifierWithMetrics{
		next:    verifier,
		metrics: m,
	}
}

// Verify records metrics for verification runs. Runs with failed records count as errors.
func (v *verifierWithMetrics) Verify(ctx context.Context) (*fieldsDomain.VerifyReport, error) {
	start := time.Now()
	report, err := v.next.Verify(ctx)

	status := statusOf(err)
	if report != nil && !report.OK() {
		status = "error"
	}
	v.metrics.RecordOperation(ctx, metricsDomain, "verify", status)
	v.metrics.RecordDuration(ctx, metricsDomain, "verify", time.Since(start), status)
	if report != nil {
		v.metrics.RecordRecords(ctx, metricsDomain, "verify", "verified", report.Records)
		v.metrics.RecordRecords(ctx, metricsDomain, "verify", "failed", len(report.Failures))
	}

	return report, err
}
