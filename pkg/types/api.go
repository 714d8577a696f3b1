package types

import (
	"fmt"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindParse           ErrKind = iota // malformed TOML text
	ErrKindIO                             // file cannot be opened or read
	ErrKindIndexOutOfRange                // integer index outside the collection after normalization
	ErrKindInvalidKind                    // member/field the value does not support
	ErrKindNotIndexable                   // indexing or calling a value that supports neither
	ErrKindOutOfMemory                    // decode budget exhausted while decoding a string or timestamp
	ErrKindState                          // operation on a released view
	ErrKindArgument                       // argument of an unsupported type
)

// String implements the Stringer interface for ErrKind
func (k ErrKind) String() string {
	switch k {
	case ErrKindParse:
		return "parse"
	case ErrKindIO:
		return "io"
	case ErrKindIndexOutOfRange:
		return "index out of range"
	case ErrKindInvalidKind:
		return "invalid kind"
	case ErrKindNotIndexable:
		return "not callable or indexable"
	case ErrKindOutOfMemory:
		return "out of memory"
	case ErrKindState:
		return "state"
	case ErrKindArgument:
		return "argument"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause

	// Line and Column locate parse errors (1-based, zero when unknown).
	Line   int
	Column int
}

// Error returns Msg, followed by the cause for kinds other than ErrKindParse.
// A parse error's Msg already carries the bounded decoder text.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Kind != ErrKindParse && e.Err != nil && e.Err.Error() != e.Msg {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, types.ErrIndexOutOfRange) matches any index error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrParse indicates malformed TOML input.
	ErrParse = &Error{Kind: ErrKindParse, Msg: "toml parse error"}
	// ErrIO indicates the input could not be opened or read.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "cannot open file for reading"}
	// ErrIndexOutOfRange indicates an index outside the collection bounds.
	ErrIndexOutOfRange = &Error{Kind: ErrKindIndexOutOfRange, Msg: "index overreach beyond bounds"}
	// ErrInvalidKind indicates a member the value does not provide.
	ErrInvalidKind = &Error{Kind: ErrKindInvalidKind, Msg: "invalid member"}
	// ErrNotIndexable indicates the value can be neither called nor indexed.
	ErrNotIndexable = &Error{Kind: ErrKindNotIndexable, Msg: "value is not callable or indexable"}
	// ErrOutOfMemory indicates the decode budget was exhausted.
	ErrOutOfMemory = &Error{Kind: ErrKindOutOfMemory, Msg: "insufficient memory"}
	// ErrReleased indicates use of a view after Close.
	ErrReleased = &Error{Kind: ErrKindState, Msg: "view is released"}
	// ErrArgument indicates an argument of an unsupported type.
	ErrArgument = &Error{Kind: ErrKindArgument, Msg: "unsupported argument"}
)

// Errorf builds a typed error of the given kind.
func Errorf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// BoundMessage truncates msg to at most MaxErrorMessage bytes without
// splitting a UTF-8 sequence.
func BoundMessage(msg string) string {
	if len(msg) <= MaxErrorMessage {
		return msg
	}
	cut := MaxErrorMessage
	for cut > 0 && msg[cut]&0xC0 == 0x80 {
		cut--
	}
	return msg[:cut]
}

// -----------------------------------------------------------------------------
// Parse Options
// -----------------------------------------------------------------------------

// ParseOptions controls resource limits and lifecycle hooks for a parsed
// document. The zero value is ready to use.
type ParseOptions struct {
	// MaxInputSize guards against absurd inputs.
	// Zero selects DefaultMaxInputSize.
	MaxInputSize int64

	// MaxDecodeBytes bounds the transient buffer a single string or timestamp
	// probe may allocate. Zero means no limit. A probe that would exceed it
	// fails with ErrKindOutOfMemory.
	MaxDecodeBytes int

	// OnRelease, if set, runs once when the last view of the document is
	// closed and the parse tree is freed.
	OnRelease func()

	// NoMmap forces ParseFile to read the file instead of mapping it.
	NoMmap bool
}

// WithDefaults returns a copy of o with zero fields replaced by defaults.
// A nil receiver yields the defaults.
func (o *ParseOptions) WithDefaults() ParseOptions {
	var out ParseOptions
	if o != nil {
		out = *o
	}
	if out.MaxInputSize <= 0 {
		out.MaxInputSize = DefaultMaxInputSize
	}
	if out.MaxDecodeBytes < 0 {
		out.MaxDecodeBytes = 0
	}
	return out
}
