package core

// streaming.go provides the reader chain used while parsing delimited files.
//
//   - BOMSkippingReader: drops a leading UTF-8 BOM (0xEF 0xBB 0xBF)
//   - UTF8ValidatingReader: fails with ErrInvalidUTF8 on the first bad sequence
//   - CountingReader: tracks bytes read for logging
//
// Use WrapForLoad to apply all three in the correct order.

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned when the input is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 encoding")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
// The BOM is commonly added by Windows spreadsheet exports.
type BOMSkippingReader struct {
	reader  *bufio.Reader
	checked bool
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{reader: bufio.NewReader(r)}
}

// Read implements io.Reader. On the first read it checks for and skips the BOM.
func (r *BOMSkippingReader) Read(p []byte) (int, error) {
	if !r.checked {
		r.checked = true

		// Peek fails for inputs shorter than the BOM, which cannot carry one
		if head, err := r.reader.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
			if _, err := r.reader.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}

	return r.reader.Read(p)
}

// UTF8ValidatingReader wraps an io.Reader and stops with ErrInvalidUTF8 at the
// first invalid sequence. Multi-byte runes split across reads are held back
// until the rest of the rune arrives.
type UTF8ValidatingReader struct {
	reader io.Reader
	offset int64
	err    error

	// Leftover bytes from previous read that may form a multi-byte sequence
	pending []byte

	// Validated bytes not yet handed to the caller (short buffers only)
	ready []byte
}

// NewUTF8ValidatingReader creates a new validating reader.
func NewUTF8ValidatingReader(r io.Reader) *UTF8ValidatingReader {
	return &UTF8ValidatingReader{
		reader:  r,
		pending: make([]byte, 0, utf8.UTFMax),
	}
}

// Read implements io.Reader.
func (v *UTF8ValidatingReader) Read(p []byte) (int, error) {
	if len(v.ready) > 0 {
		n := copy(p, v.ready)
		v.ready = v.ready[n:]
		return n, nil
	}
	if v.err != nil {
		return 0, v.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	if len(p) >= utf8.UTFMax {
		return v.validate(p)
	}

	// Too small to hold a held-back rune; validate into scratch space
	var scratch [512]byte
	n, err := v.validate(scratch[:])
	copied := copy(p, scratch[:n])
	if copied < n {
		v.ready = append([]byte(nil), scratch[copied:n]...)
		if err != nil {
			v.err = err
		}
		return copied, nil
	}
	return copied, err
}

// validate fills p from the underlying reader and returns how many leading
// bytes of p are complete, valid UTF-8. len(p) must be at least utf8.UTFMax.
func (v *UTF8ValidatingReader) validate(p []byte) (int, error) {
	offset := copy(p, v.pending)
	v.pending = v.pending[:0]

	n, err := v.reader.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	data := p[:n]
	if isAllASCII(data) || utf8.Valid(data) {
		v.offset += int64(n)
		return n, err
	}

	atEOF := err != nil
	for i := 0; i < len(data); {
		if data[i] < utf8.RuneSelf {
			i++
			continue
		}

		if !atEOF && !utf8.FullRune(data[i:]) {
			v.pending = append(v.pending, data[i:]...)
			v.offset += int64(i)
			return i, nil
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			v.err = fmt.Errorf("%w at byte %d", ErrInvalidUTF8, v.offset+int64(i))
			v.offset += int64(i)
			return i, v.err
		}
		i += size
	}

	v.offset += int64(n)
	return n, err
}

// isAllASCII returns true if all bytes are ASCII (< 128).
func isAllASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// WrapForLoad wraps a reader with BOM skipping, UTF-8 validation and byte
// counting.
//
// The order matters:
// 1. BOM must be stripped first (it is valid UTF-8 but not data)
// 2. UTF-8 validation happens next
// 3. Counting wraps everything
func WrapForLoad(r io.Reader) *CountingReader {
	bomReader := NewBOMSkippingReader(r)
	validated := NewUTF8ValidatingReader(bomReader)
	return NewCountingReader(validated)
}
