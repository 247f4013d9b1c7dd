package dxt

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned when the format is not BC1, BC2 or BC3.
	ErrUnknownFormat = errors.New("dxt: unknown block format")

	// ErrInvalidLength is returned when the input length is not a multiple
	// of the format's block size. Zero length is a valid no-op.
	ErrInvalidLength = errors.New("dxt: input length is not a multiple of the block size")

	// ErrOutputTooSmall is returned when the output buffer is smaller than
	// the input. Transforms are size preserving.
	ErrOutputTooSmall = errors.New("dxt: output buffer smaller than input")

	// ErrInvalidVariant is returned for settings carrying a decorrelation
	// variant this version does not know.
	ErrInvalidVariant = errors.New("dxt: invalid decorrelation variant")

	// ErrAllocationFailed is returned when a scratch buffer cannot be
	// obtained because the pool memory limit would be exceeded.
	ErrAllocationFailed = errors.New("dxt: scratch buffer allocation failed")

	// ErrSettingsTooWide is returned by UnpackSettings for values wider
	// than the 28-bit packed representation.
	ErrSettingsTooWide = errors.New("dxt: packed settings value exceeds 28 bits")

	// ErrSettingsVersion is returned by UnpackSettings for unknown codec
	// version fields, so future revisions fail loudly instead of decoding
	// to wrong settings.
	ErrSettingsVersion = errors.New("dxt: unsupported packed settings version")

	// ErrSettingsReserved is returned by UnpackSettings when reserved bits
	// are set.
	ErrSettingsReserved = errors.New("dxt: reserved packed settings bits are set")
)

// SizeEstimationError reports an estimator failure during the automatic
// transform search. Settings identifies the candidate being scored when the
// estimator failed; the estimator's own error is available via Unwrap.
type SizeEstimationError struct {
	Settings TransformSettings
	Err      error
}

func (e *SizeEstimationError) Error() string {
	return fmt.Sprintf("dxt: size estimation failed for candidate %v: %v", e.Settings, e.Err)
}

func (e *SizeEstimationError) Unwrap() error {
	return e.Err
}
