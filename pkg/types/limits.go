package types

// ============================================================================
// Document Limits Constants
// ============================================================================

const (
	// MaxErrorMessage bounds the length of parser error messages surfaced
	// to callers (bytes).
	MaxErrorMessage = 256

	// DefaultMaxInputSize is the largest document accepted when
	// ParseOptions.MaxInputSize is zero (64 MiB).
	DefaultMaxInputSize = 64 << 20

	// MaxPathDepth bounds the number of segments accepted by path lookups.
	MaxPathDepth = 512
)
