package fits

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const blockSize = 2880
const cardSize = 80

// Header is one parsed FITS header-data-unit header: an unordered map
// of keyword to value. Values are string, bool, int64,
// or float64 depending on how the card's value field parses.
type Header map[string]any

type hdu struct {
	header Header
	data   []byte
}

// readHDUs reads header+data blocks sequentially from r until it has
// read the HDU at 0-based index upTo (inclusive), or runs out of
// input. Every HDU's data segment up to upTo is read in full and kept in
// the result, so this never needs random access into r.
func readHDUs(r io.Reader, upTo int) ([]hdu, error) {
	br := bufio.NewReaderSize(r, blockSize)
	var hdus []hdu
	for i := 0; i <= upTo; i++ {
		header, err := readHeader(br)
		if err == io.EOF {
			return hdus, nil
		}
		if err != nil {
			return nil, err
		}

		size, err := dataSize(header)
		if err != nil {
			return nil, err
		}
		data := make([]byte, size)
		if size > 0 {
			if _, err := io.ReadFull(br, data); err != nil {
				return nil, fmt.Errorf("fits: reading hdu %d data: %w", i, err)
			}
			if pad := paddedSize(size) - size; pad > 0 {
				if _, err := io.CopyN(io.Discard, br, int64(pad)); err != nil {
					return nil, fmt.Errorf("fits: discarding hdu %d padding: %w", i, err)
				}
			}
		}
		hdus = append(hdus, hdu{header: header, data: data})
	}
	return hdus, nil
}

func readHeader(br *bufio.Reader) (Header, error) {
	header := Header{}
	cardsRead := 0
	for {
		card := make([]byte, cardSize)
		n, err := io.ReadFull(br, card)
		if err != nil {
			if cardsRead == 0 && n == 0 {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("fits: reading header card %d: %w", cardsRead, err)
		}
		cardsRead++

		keyword := strings.TrimRight(string(card[:8]), " ")
		if keyword == "END" {
			break
		}
		if keyword == "" || keyword == "COMMENT" || keyword == "HISTORY" {
			continue
		}
		if card[8] != '=' {
			continue
		}
		header[keyword] = parseCardValue(string(card[10:]))
	}

	if remainder := (cardsRead * cardSize) % blockSize; remainder != 0 {
		pad := (blockSize - remainder)
		if _, err := io.CopyN(io.Discard, br, int64(pad)); err != nil {
			return nil, fmt.Errorf("fits: discarding header padding: %w", err)
		}
	}
	return header, nil
}

func parseCardValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "'") {
		end := strings.Index(trimmed[1:], "'")
		if end < 0 {
			return strings.TrimRight(trimmed[1:], " ")
		}
		return strings.TrimRight(trimmed[1:1+end], " ")
	}

	if idx := strings.Index(raw, "/"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.TrimSpace(raw)

	switch raw {
	case "":
		return ""
	case "T":
		return true
	case "F":
		return false
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

func dataSize(h Header) (int, error) {
	naxis, err := headerInt(h, "NAXIS")
	if err != nil {
		return 0, err
	}
	if naxis == 0 {
		return 0, nil
	}
	bitpix, err := headerInt(h, "BITPIX")
	if err != nil {
		return 0, err
	}
	if bitpix < 0 {
		bitpix = -bitpix
	}
	size := bitpix / 8
	for i := 1; i <= naxis; i++ {
		n, err := headerInt(h, fmt.Sprintf("NAXIS%d", i))
		if err != nil {
			return 0, err
		}
		size *= n
	}
	return size, nil
}

func paddedSize(n int) int {
	if n%blockSize == 0 {
		return n
	}
	return (n/blockSize + 1) * blockSize
}

func headerInt(h Header, key string) (int, error) {
	v, ok := h[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingHeaderKey, key)
	}
	i, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not an integer (got %T)", ErrUnexpectedValueType, key, v)
	}
	return int(i), nil
}

func headerString(h Header, key string) (string, error) {
	v, ok := h[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingHeaderKey, key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string (got %T)", ErrUnexpectedValueType, key, v)
	}
	return s, nil
}
