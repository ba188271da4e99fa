package pdu

import (
	"encoding/binary"
	"io"
)

// Primitive field formats (SMPP 3.4 Section 3.1).
// All multi-byte integers are big-endian on the wire.

// readUint8 consumes exactly one byte.
func readUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, notEnoughBytes(err)
	}
	return b[0], nil
}

// readUint32 consumes exactly four bytes.
func readUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, notEnoughBytes(err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

func writeUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	return err
}

func writeUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// COctetString is a C-octet string: ASCII bytes followed by a single zero
// byte on the wire. The total encoded length including the terminator is
// bounded by a per-field maximum. The zero value is the empty string,
// which encodes as a lone zero byte.
type COctetString struct {
	value string
}

// NewCOctetString validates value as the contents of a C-octet string whose
// encoded form may occupy at most maxLen bytes including the terminator.
func NewCOctetString(value string, maxLen int) (COctetString, error) {
	for i := 0; i < len(value); i++ {
		// An embedded zero byte would terminate the encoded string early.
		if value[i] == 0 || value[i] > 0x7F {
			return COctetString{}, newParseError(StringIsNotASCII,
				"string value is not ASCII (valid up to byte %d)", i)
		}
	}
	if len(value)+1 > maxLen {
		return COctetString{}, newParseError(StringTooLong,
			"string value is too long, max length is %d, including final zero byte", maxLen)
	}
	return COctetString{value: value}, nil
}

// readCOctetString reads byte-by-byte until a zero terminator, giving up
// after maxLen bytes. The terminator is consumed but not part of the value.
func readCOctetString(r io.Reader, maxLen int) (COctetString, error) {
	buf := make([]byte, 0, maxLen)
	var b [1]byte
	for i := 0; i < maxLen; i++ {
		_, err := io.ReadFull(r, b[:])
		switch {
		case err == io.EOF || err == io.ErrUnexpectedEOF:
			return COctetString{}, newParseError(StringDoesNotEndWithZeroByte,
				"string value did not end with a zero byte")
		case err != nil:
			return COctetString{}, err
		}
		if b[0] == 0 {
			return COctetString{value: string(buf)}, nil
		}
		if b[0] > 0x7F {
			return COctetString{}, newParseError(StringIsNotASCII,
				"string value is not ASCII (valid up to byte %d)", i)
		}
		buf = append(buf, b[0])
	}
	return COctetString{}, newParseError(StringTooLong,
		"string value is too long, max length is %d, including final zero byte", maxLen)
}

// writeTo emits the string bytes followed by the zero terminator.
func (s COctetString) writeTo(w io.Writer) error {
	if len(s.value) > 0 {
		if _, err := io.WriteString(w, s.value); err != nil {
			return err
		}
	}
	return writeUint8(w, 0)
}

// String returns the string value without the terminator.
func (s COctetString) String() string {
	return s.value
}

// EncodedLen returns the on-wire size including the terminator.
func (s COctetString) EncodedLen() int {
	return len(s.value) + 1
}

// readOctetString reads exactly n raw bytes. Octet strings carry no
// terminator and no ASCII restriction; the content is opaque.
func readOctetString(r io.Reader, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, notEnoughBytes(err)
	}
	return buf, nil
}

func writeOctetString(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}
