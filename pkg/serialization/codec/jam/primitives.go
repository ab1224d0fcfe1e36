package jam

import "github.com/jamcore/statecodec/internal/crypto"

// PutUint8/16/32/64 write fixed-width little-endian integers (spec
// §3.1). There is no length prefix; the caller already knows the
// width from the field's type.

func PutUint8(w *Writer, v uint8) { w.WriteByte(v) }

func PutUint16(w *Writer, v uint16) {
	w.Write([]byte{byte(v), byte(v >> 8)})
}

func PutUint32(w *Writer, v uint32) {
	w.Write([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

func PutUint64(w *Writer, v uint64) {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
	w.Write(b)
}

func GetUint8(r *Reader) (uint8, error) {
	return r.ReadByte()
}

func GetUint16(r *Reader) (uint16, error) {
	b, err := r.ReadN(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

func GetUint32(r *Reader) (uint32, error) {
	b, err := r.ReadN(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

func GetUint64(r *Reader) (uint64, error) {
	b, err := r.ReadN(8)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(b[i]) << (8 * i)
	}
	return v, nil
}

// PutBool/GetBool encode a boolean as a single 0x00/0x01 byte.
func PutBool(w *Writer, v bool) {
	if v {
		w.WriteByte(0x01)
	} else {
		w.WriteByte(0x00)
	}
}

func GetBool(r *Reader) (bool, error) {
	b, err := r.ReadByte()
	if err != nil {
		return false, err
	}
	switch b {
	case 0x00:
		return false, nil
	case 0x01:
		return true, nil
	default:
		return false, wrapField("bool", ErrFieldShape)
	}
}

// PutHash/GetHash encode a fixed 32-byte H256.
func PutHash(w *Writer, h crypto.Hash) { w.Write(h[:]) }

func GetHash(r *Reader) (crypto.Hash, error) {
	b, err := r.ReadN(crypto.HashSize)
	if err != nil {
		return crypto.Hash{}, err
	}
	var h crypto.Hash
	copy(h[:], b)
	return h, nil
}

// PutBytes/GetBytes encode a variable-length byte string as
// Compact(len) followed by the raw bytes (used for out-of-band-length
// blobs such as authorizer traces and opaque report payloads).
func PutBytes(w *Writer, b []byte) {
	PutCompact(w, uint64(len(b)))
	w.Write(b)
}

func GetBytes(r *Reader) ([]byte, error) {
	n, err := GetCompactUint64(r)
	if err != nil {
		return nil, err
	}
	return r.ReadN(int(n))
}
