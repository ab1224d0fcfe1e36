package jam

import (
	"github.com/holiman/uint256"

	"github.com/jamcore/statecodec/pkg/log"
)

// maxCompactBits is the width of the compact codec's domain (spec §3.1:
// 0 <= n < 2^136).
const maxCompactBits = 136

var maxCompact = func() *uint256.Int {
	one := uint256.NewInt(1)
	shifted := new(uint256.Int).Lsh(one, maxCompactBits)
	return new(uint256.Int).Sub(shifted, one)
}()

// EncodeCompact renders n as the shortest JAM-compact byte sequence
// that represents it (spec §4.1, P2). It returns ErrValueTooLarge,
// writing nothing, if n exceeds the 2^136 domain.
func EncodeCompact(w *Writer, n *uint256.Int) error {
	if n.Gt(maxCompact) {
		log.Codec.Warn().Str("value", n.String()).Msg("compact value exceeds 2^136 domain")
		return ErrValueTooLarge
	}

	switch {
	case n.LtUint64(1 << 7):
		w.WriteByte(byte(n.Uint64()))
		return nil

	case n.LtUint64(1 << 14):
		v := n.Uint64()
		w.WriteByte(0x80 | byte(v>>8))
		w.WriteByte(byte(v))
		return nil

	// The 110xxxxx prefix leaves 5 value bits in the first byte, so
	// this mode holds values below 2^29; 1110xxxx and 1111nnnn are
	// taken by the reserved and wide prefixes.
	case n.LtUint64(1 << 29):
		v := n.Uint64()
		w.WriteByte(0xC0 | byte((v>>24)&0x1F))
		w.WriteByte(byte(v))
		w.WriteByte(byte(v >> 8))
		w.WriteByte(byte(v >> 16))
		return nil

	default:
		return encodeCompactWide(w, n)
	}
}

// PutCompact is the common-case convenience wrapper used pervasively
// by the field codecs for list lengths and u64-ranged fields.
func PutCompact(w *Writer, n uint64) {
	_ = EncodeCompact(w, uint256.NewInt(n))
}

// encodeCompactWide handles values needing the 1111nnnn "N" prefix.
// nnnn in [0,14] means a trailing width of nnnn+1 bytes; nnnn==15 is
// reserved to mean a fixed 17-byte trailing width, closing the gap
// between a 4-bit length nibble (16 bytes max) and the 2^136 domain
// (17 bytes). See SPEC_FULL.md §2.
func encodeCompactWide(w *Writer, n *uint256.Int) error {
	b := n.Bytes() // big-endian, minimal length, no leading zero
	length := len(b)
	if length == 0 {
		length = 1
	}

	var nnnn int
	var width int
	switch {
	case length <= 15:
		nnnn = length - 1
		width = length
	case length <= 17:
		nnnn = 15
		width = 17
	default:
		log.Codec.Warn().Int("length", length).Msg("compact wide-mode length exceeds 17 bytes")
		return ErrValueTooLarge
	}

	log.Codec.Debug().Int("width", width).Msg("encoding wide-mode compact value")
	w.WriteByte(0xF0 | byte(nnnn))

	// Emit `width` little-endian bytes, zero-padded on the high end.
	le := make([]byte, width)
	for i, bb := range b { // b is big-endian; reverse into le
		le[len(b)-1-i] = bb
	}
	w.Write(le)
	return nil
}

// DecodeCompact reads a JAM-compact value and reports how many bytes
// were consumed (spec §4.1). In strict mode a well-formed but
// non-shortest encoding is rejected with ErrNonCanonical (P2).
func DecodeCompact(r *Reader, strict bool) (*uint256.Int, int, error) {
	prefix, err := r.ReadByte()
	if err != nil {
		return nil, 0, err
	}

	switch {
	case prefix < 0x80:
		return uint256.NewInt(uint64(prefix)), 1, nil

	case prefix < 0xC0:
		b1, err := r.ReadByte()
		if err != nil {
			return nil, 0, err
		}
		v := (uint64(prefix&0x3F) << 8) | uint64(b1)
		if strict && v < (1<<7) {
			log.Codec.Warn().Uint64("value", v).Msg("non-canonical two-byte compact encoding")
			return nil, 0, ErrNonCanonical
		}
		return uint256.NewInt(v), 2, nil

	case prefix < 0xE0:
		rest, err := r.ReadN(3)
		if err != nil {
			return nil, 0, err
		}
		v := (uint64(prefix&0x3F) << 24) | uint64(rest[0]) | uint64(rest[1])<<8 | uint64(rest[2])<<16
		if strict && v < (1<<14) {
			log.Codec.Warn().Uint64("value", v).Msg("non-canonical four-byte compact encoding")
			return nil, 0, ErrNonCanonical
		}
		return uint256.NewInt(v), 4, nil

	case prefix < 0xF0:
		log.Codec.Warn().Uint8("prefix", prefix).Msg("reserved compact prefix")
		return nil, 0, ErrReservedPrefix

	default:
		nnnn := int(prefix & 0x0F)
		width := nnnn + 1
		if nnnn == 15 {
			width = 17
		}
		le, err := r.ReadN(width)
		if err != nil {
			return nil, 0, err
		}
		be := make([]byte, width)
		for i, bb := range le {
			be[width-1-i] = bb
		}
		v := new(uint256.Int).SetBytes(be)
		if v.Gt(maxCompact) {
			log.Codec.Warn().Int("width", width).Msg("wide compact value exceeds 2^136 domain")
			return nil, 0, ErrValueTooLarge
		}
		if strict {
			if !isCanonicalWideWidth(v, width) {
				log.Codec.Warn().Int("width", width).Msg("non-canonical wide compact encoding")
				return nil, 0, ErrNonCanonical
			}
		}
		log.Codec.Debug().Int("width", width).Msg("decoded wide-mode compact value")
		return v, 1 + width, nil
	}
}

// isCanonicalWideWidth reports whether width is the shortest wide
// (N-mode) trailing width capable of representing v.
func isCanonicalWideWidth(v *uint256.Int, width int) bool {
	if v.LtUint64(1 << 29) {
		return false // should have used a narrower fixed mode entirely
	}
	minWidth := len(v.Bytes())
	if minWidth == 0 {
		minWidth = 1
	}
	if minWidth <= 15 {
		return width == minWidth
	}
	return width == 17
}

// GetCompactUint64 decodes a compact value into a uint64, for the
// common case of list lengths and u64-ranged fields. It errors if the
// value does not fit in 64 bits. Canonicality enforcement follows
// whatever strictness the caller's Reader was built with
// (NewReader vs NewReaderStrict, spec §6.3).
func GetCompactUint64(r *Reader) (uint64, error) {
	v, _, err := DecodeCompact(r, r.strict)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, ErrValueTooLarge
	}
	return v.Uint64(), nil
}
