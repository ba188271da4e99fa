package pdu

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReadCOctetString(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		maxLen   int
		want     string
		wantKind ErrorKind // zero means success
	}{
		{
			name:   "simple value",
			input:  []byte("abc\x00rest"),
			maxLen: 16,
			want:   "abc",
		},
		{
			name:   "empty value",
			input:  []byte("\x00"),
			maxLen: 16,
			want:   "",
		},
		{
			name:   "terminator on the max length boundary",
			input:  []byte("abcdefghijklmno\x00"),
			maxLen: 16,
			want:   "abcdefghijklmno",
		},
		{
			name:     "no terminator within max length",
			input:    []byte("abcdefghijklmnop\x00"),
			maxLen:   16,
			wantKind: StringTooLong,
		},
		{
			name:     "input ends before terminator",
			input:    []byte("abc"),
			maxLen:   16,
			wantKind: StringDoesNotEndWithZeroByte,
		},
		{
			name:     "empty input",
			input:    nil,
			maxLen:   16,
			wantKind: StringDoesNotEndWithZeroByte,
		},
		{
			name:     "non-ascii byte before terminator",
			input:    []byte("ab\xffc\x00"),
			maxLen:   16,
			wantKind: StringIsNotASCII,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readCOctetString(bytes.NewReader(tc.input), tc.maxLen)
			if tc.wantKind != 0 {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("readCOctetString() error = %v, want *ParseError", err)
				}
				if pe.Kind != tc.wantKind {
					t.Errorf("error kind = %v, want %v", pe.Kind, tc.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("readCOctetString() error = %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("readCOctetString() = %q, want %q", got.String(), tc.want)
			}
		})
	}
}

func TestReadCOctetStringReportsFirstBadByteOffset(t *testing.T) {
	_, err := readCOctetString(bytes.NewReader([]byte("sys\xf0id\x00")), 16)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("readCOctetString() error = %v, want *ParseError", err)
	}
	if want := "string value is not ASCII (valid up to byte 3)"; pe.Message != want {
		t.Errorf("Message = %q, want %q", pe.Message, want)
	}
}

func TestNewCOctetString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		maxLen   int
		wantKind ErrorKind
	}{
		{name: "fits with terminator", value: "abcdefghijklmno", maxLen: 16},
		{name: "too long by one", value: "abcdefghijklmnop", maxLen: 16, wantKind: StringTooLong},
		{name: "non-ascii", value: "ab\xe9c", maxLen: 16, wantKind: StringIsNotASCII},
		{name: "embedded zero byte", value: "ab\x00c", maxLen: 16, wantKind: StringIsNotASCII},
		{name: "empty", value: "", maxLen: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewCOctetString(tc.value, tc.maxLen)
			if tc.wantKind != 0 {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("NewCOctetString() error = %v, want *ParseError", err)
				}
				if pe.Kind != tc.wantKind {
					t.Errorf("error kind = %v, want %v", pe.Kind, tc.wantKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCOctetString() error = %v", err)
			}
			if s.EncodedLen() != len(tc.value)+1 {
				t.Errorf("EncodedLen() = %d, want %d", s.EncodedLen(), len(tc.value)+1)
			}
		})
	}
}

func TestCOctetStringWriteTo(t *testing.T) {
	s, err := NewCOctetString("hi", 16)
	if err != nil {
		t.Fatalf("NewCOctetString() error = %v", err)
	}

	var buf bytes.Buffer
	if err := s.writeTo(&buf); err != nil {
		t.Fatalf("writeTo() error = %v", err)
	}
	if want := []byte("hi\x00"); !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("writeTo() = %x, want %x", buf.Bytes(), want)
	}
}

func TestReadIntegers(t *testing.T) {
	r := bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05})

	v4, err := readUint32(r)
	if err != nil {
		t.Fatalf("readUint32() error = %v", err)
	}
	if v4 != 0x01020304 {
		t.Errorf("readUint32() = 0x%08X, want 0x01020304", v4)
	}

	v1, err := readUint8(r)
	if err != nil {
		t.Fatalf("readUint8() error = %v", err)
	}
	if v1 != 0x05 {
		t.Errorf("readUint8() = 0x%02X, want 0x05", v1)
	}
}

func TestReadIntegerShortInput(t *testing.T) {
	_, err := readUint32(bytes.NewReader([]byte{0x01, 0x02}))

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("readUint32() error = %v, want *ParseError", err)
	}
	if pe.Kind != NotEnoughBytes {
		t.Errorf("error kind = %v, want NotEnoughBytes", pe.Kind)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error does not wrap io.ErrUnexpectedEOF: %v", err)
	}
}

func TestReadOctetString(t *testing.T) {
	got, err := readOctetString(bytes.NewReader([]byte{0xde, 0xad, 0xbe, 0xef}), 3)
	if err != nil {
		t.Fatalf("readOctetString() error = %v", err)
	}
	if !bytes.Equal(got, []byte{0xde, 0xad, 0xbe}) {
		t.Errorf("readOctetString() = %x", got)
	}

	if _, err := readOctetString(bytes.NewReader([]byte{0x01}), 3); err == nil {
		t.Error("readOctetString() short input succeeded, want error")
	}
}
