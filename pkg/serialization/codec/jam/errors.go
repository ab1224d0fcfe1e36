package jam

import "errors"

// Kind tags a decode/encode failure with one of the taxonomy entries
// from spec §7. Kinds are checked with errors.Is against the sentinel
// values below, never by string-matching an error's Error() text.
type Kind int

const (
	_ Kind = iota
	KindTruncatedInput
	KindReservedPrefix
	KindNonCanonical
	KindUnknownDiscriminator
	KindDuplicateDiscriminator
	KindFieldShape
	KindDuplicateKey
	KindKeyLength
	KindCrypto
)

var (
	// ErrTruncatedInput is returned when a decoder needed more bytes
	// than the input provided.
	ErrTruncatedInput = errors.New("jam: truncated input")
	// ErrReservedPrefix is returned when a compact decode observes the
	// reserved 1110xxxx prefix.
	ErrReservedPrefix = errors.New("jam: reserved compact prefix")
	// ErrNonCanonical is returned in strict mode when a compact
	// encoding is well-formed but not the shortest possible one.
	ErrNonCanonical = errors.New("jam: non-canonical compact encoding")
	// ErrValueTooLarge is returned when a value exceeds the compact
	// codec's representable domain (2^136).
	ErrValueTooLarge = errors.New("jam: value exceeds compact domain")
	// ErrFieldShape is returned for a field-specific structural
	// violation (missing terminator, count mismatch, and so on).
	ErrFieldShape = errors.New("jam: field shape violation")
)

// Error wraps one of the sentinel kinds above with the offending
// field name and, where known, a byte offset into the input.
type Error struct {
	Kind   Kind
	Field  string
	Offset int
	Err    error
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// wrapField attaches a field name to an underlying sentinel error,
// preserving errors.Is/errors.As against the sentinel.
func wrapField(field string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kindOf(err), Field: field, Err: err}
}

// wrapOffset attaches a byte offset to an underlying sentinel error.
func wrapOffset(offset int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kindOf(err), Offset: offset, Err: err}
}

func kindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrTruncatedInput):
		return KindTruncatedInput
	case errors.Is(err, ErrReservedPrefix):
		return KindReservedPrefix
	case errors.Is(err, ErrNonCanonical):
		return KindNonCanonical
	case errors.Is(err, ErrFieldShape):
		return KindFieldShape
	default:
		return 0
	}
}
