package pdu

import (
	"bufio"
	"encoding/binary"
	"io"
)

// CheckOutcome is the answer to "is a complete PDU buffered yet?".
type CheckOutcome int

const (
	// Incomplete means fewer bytes are buffered than the PDU declares,
	// including the case where the length field itself is still partial.
	Incomplete CheckOutcome = iota

	// Ready means at least command_length bytes are available and Parse can
	// run without blocking mid-structure.
	Ready
)

func (o CheckOutcome) String() string {
	if o == Ready {
		return "Ready"
	}
	return "Incomplete"
}

// NewReader wraps r in a bufio.Reader large enough to buffer any PDU the
// codec accepts, which is what Check needs to peek a whole record.
func NewReader(r io.Reader) *bufio.Reader {
	return bufio.NewReaderSize(r, MaxCommandLength)
}

// Check reports whether src holds a complete PDU. It peeks the 4-byte
// command_length and then asks for that many bytes without consuming any of
// them, so the caller keeps accumulating from the stream until Ready and
// only then hands src to Parse. Contents are never validated here, only
// byte count.
//
// On a source that blocks (a live connection), Check blocks until the full
// PDU is buffered or the stream ends; Incomplete then means the stream
// ended mid-PDU.
func Check(src *bufio.Reader) (CheckOutcome, error) {
	head, err := src.Peek(4)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Incomplete, nil
		}
		return Incomplete, err
	}

	length := int64(binary.BigEndian.Uint32(head))
	if length <= 4 {
		// The record claims to end inside its own length field. Report Ready
		// and let Parse reject the length.
		return Ready, nil
	}
	if length > int64(src.Size()) {
		// The declared length can never fit in src's buffer. Waiting would
		// stall forever, so report Ready and let Parse reject the length.
		return Ready, nil
	}

	if _, err := src.Peek(int(length)); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF || err == bufio.ErrBufferFull {
			return Incomplete, nil
		}
		return Incomplete, err
	}
	return Ready, nil
}
