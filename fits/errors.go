package fits

import "errors"

var (
	// ErrHduNotFound is returned when the requested HDU index does not
	// exist in the file.
	ErrHduNotFound = errors.New("fits: hdu not found")
	// ErrMissingHeaderKey is returned when a required header keyword or
	// table column is absent.
	ErrMissingHeaderKey = errors.New("fits: missing header key")
	// ErrUnexpectedValueType is returned when a header value is present
	// but is not of the kind the caller expected.
	ErrUnexpectedValueType = errors.New("fits: unexpected value type")
	// ErrUnknownTForm is returned for a TFORM type code outside L, X, B,
	// I, J, K, A, E, D, C, M.
	ErrUnknownTForm = errors.New("fits: unknown TFORM code")
	// ErrNotByteData is returned when an HDU's data segment is not a
	// plain byte array of the declared shape.
	ErrNotByteData = errors.New("fits: table data not a byte array of the declared shape")
	// ErrCellDecodeFailed is returned when a cell's bytes cannot be
	// decoded under its column's TFORM.
	ErrCellDecodeFailed = errors.New("fits: cell decode failed")
)
