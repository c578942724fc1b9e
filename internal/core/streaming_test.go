package core

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
)

func TestBOMSkippingReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{
			name:     "file with BOM",
			input:    append([]byte{0xEF, 0xBB, 0xBF}, []byte("hello,world")...),
			expected: "hello,world",
		},
		{
			name:     "file without BOM",
			input:    []byte("hello,world"),
			expected: "hello,world",
		},
		{
			name:     "empty file",
			input:    []byte{},
			expected: "",
		},
		{
			name:     "only BOM",
			input:    []byte{0xEF, 0xBB, 0xBF},
			expected: "",
		},
		{
			name:     "partial BOM at start",
			input:    []byte{0xEF, 0xBB, 'a', 'b', 'c'},
			expected: string([]byte{0xEF, 0xBB, 'a', 'b', 'c'}),
		},
		{
			name:     "shorter than BOM",
			input:    []byte("ab"),
			expected: "ab",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := NewBOMSkippingReader(bytes.NewReader(tt.input))
			result, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.expected {
				t.Errorf("got %q, want %q", string(result), tt.expected)
			}
		})
	}
}

func TestUTF8ValidatingReader(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    string
		wantErr bool
	}{
		{
			name:  "valid ASCII",
			input: []byte("hello,world"),
			want:  "hello,world",
		},
		{
			name:  "valid multibyte",
			input: []byte("hello \xe4\xb8\x96\xe7\x95\x8c"), // hello 世界
			want:  "hello \xe4\xb8\x96\xe7\x95\x8c",
		},
		{
			name:  "emoji",
			input: []byte("hi \xf0\x9f\x91\x8b"),
			want:  "hi \xf0\x9f\x91\x8b",
		},
		{
			name:  "empty input",
			input: []byte{},
			want:  "",
		},
		{
			name:    "invalid single byte",
			input:   []byte{'h', 'e', 0x80, 'l', 'o'},
			want:    "he",
			wantErr: true,
		},
		{
			name:    "truncated sequence at EOF",
			input:   []byte{'a', 0xc3},
			want:    "a",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// One byte per underlying read splits every multibyte rune
			reader := NewUTF8ValidatingReader(iotest.OneByteReader(bytes.NewReader(tt.input)))
			result, err := io.ReadAll(reader)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidUTF8) {
					t.Fatalf("err = %v, want ErrInvalidUTF8", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(result) != tt.want {
				t.Errorf("got %q, want %q", string(result), tt.want)
			}
		})
	}
}

func TestUTF8ValidatingReader_ReportsOffset(t *testing.T) {
	reader := NewUTF8ValidatingReader(strings.NewReader("abc\xffdef"))
	_, err := io.ReadAll(reader)
	if err == nil || !strings.Contains(err.Error(), "at byte 3") {
		t.Fatalf("err = %v, want offset 3", err)
	}
}

func TestUTF8ValidatingReader_ShortBuffer(t *testing.T) {
	input := "a\xe4\xb8\x96b\xe7\x95\x8c"
	reader := NewUTF8ValidatingReader(strings.NewReader(input))

	var out []byte
	buf := make([]byte, 2)
	for {
		n, err := reader.Read(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if string(out) != input {
		t.Errorf("got %q, want %q", out, input)
	}
}

func TestCountingReader(t *testing.T) {
	input := strings.Repeat("x", 1000)
	reader := NewCountingReader(strings.NewReader(input))

	buf := make([]byte, 100)
	totalRead := 0
	for {
		n, err := reader.Read(buf)
		totalRead += n
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if totalRead != len(input) {
		t.Errorf("total read = %d, want %d", totalRead, len(input))
	}
	if reader.BytesRead != int64(len(input)) {
		t.Errorf("BytesRead = %d, want %d", reader.BytesRead, len(input))
	}
}

func TestWrapForLoad(t *testing.T) {
	input := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a,b\n1,2\n")...)

	reader := WrapForLoad(bytes.NewReader(input))
	result, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(result) != "a,b\n1,2\n" {
		t.Errorf("got %q, want BOM stripped", result)
	}
	if reader.BytesRead != int64(len(input)-3) {
		t.Errorf("BytesRead = %d, want %d", reader.BytesRead, len(input)-3)
	}
}

func TestWrapForLoad_InvalidUTF8(t *testing.T) {
	reader := WrapForLoad(bytes.NewReader([]byte{'a', ',', 0xff, '\n'}))
	_, err := io.ReadAll(reader)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
}
