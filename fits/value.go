package fits

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Complex is a decoded FITS 'C' (single-precision) or 'M' (double
// precision) complex cell, represented as a real/imaginary pair.
type Complex struct {
	Real, Imag float64
}

// decodeCell decodes one column's raw big-endian bytes for a single row
// into a typed Go value per the column's TForm.
//
// 'X' bit arrays decode to their byte count rather than their bits,
// since nothing downstream interprets individual flag bits. 'A'
// character columns always decode to a single string spanning the full
// column width, regardless of repeat count. Every other code with
// Count > 1 decodes to a []any of Count scalars.
func decodeCell(tf TForm, b []byte) (any, error) {
	switch tf.Code {
	case 'X':
		return len(b), nil
	case 'A':
		return string(b), nil
	}

	size, err := elementSize(tf.Code)
	if err != nil {
		return nil, err
	}
	if tf.Count == 1 {
		return decodeElement(tf.Code, b[:size])
	}

	out := make([]any, tf.Count)
	for i := 0; i < tf.Count; i++ {
		v, err := decodeElement(tf.Code, b[i*size:(i+1)*size])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func decodeElement(code byte, b []byte) (any, error) {
	switch code {
	case 'L':
		return b[0] != 0, nil
	case 'B':
		return int64(b[0]), nil
	case 'I':
		return int64(int16(binary.BigEndian.Uint16(b))), nil
	case 'J':
		return int64(int32(binary.BigEndian.Uint32(b))), nil
	case 'K':
		return int64(binary.BigEndian.Uint64(b)), nil
	case 'E':
		return float64(math.Float32frombits(binary.BigEndian.Uint32(b))), nil
	case 'D':
		return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
	case 'C':
		return Complex{
			Real: float64(math.Float32frombits(binary.BigEndian.Uint32(b[:4]))),
			Imag: float64(math.Float32frombits(binary.BigEndian.Uint32(b[4:8]))),
		}, nil
	case 'M':
		return Complex{
			Real: math.Float64frombits(binary.BigEndian.Uint64(b[:8])),
			Imag: math.Float64frombits(binary.BigEndian.Uint64(b[8:16])),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTForm, string(code))
	}
}
