package pdu

import "io"

const (
	// HeaderLen is the fixed header size: command_length, command_id,
	// command_status and sequence_number, four bytes each.
	HeaderLen = 16

	// MinCommandLength is the smallest declared length accepted. Anything
	// below HeaderLen would truncate the header itself.
	MinCommandLength = HeaderLen

	// MaxCommandLength caps the declared length so a hostile peer cannot
	// demand an unbounded allocation.
	MaxCommandLength = 70000
)

// Header is the fixed four-field PDU header (SMPP 3.4 Section 4.1).
// CommandLength covers the whole PDU, header included.
type Header struct {
	CommandLength  uint32
	CommandID      uint32
	CommandStatus  uint32
	SequenceNumber uint32
}

func validateCommandLength(length uint32) *ParseError {
	if length < MinCommandLength {
		return newParseError(LengthTooShort,
			"PDU too short: command_length %d, min allowed %d", length, MinCommandLength)
	}
	if length > MaxCommandLength {
		return newParseError(LengthTooLong,
			"PDU too long: command_length %d, max allowed %d", length, MaxCommandLength)
	}
	return nil
}

// readHeader decodes the four header fields and returns a reader bounded to
// exactly the declared body length. Bounding starts right after
// command_length, so a body codec that over-reads sees end-of-input instead
// of silently consuming the next PDU on the stream.
//
// Length bounds are validated once all three remaining integers are read,
// with full header context available. If one of those reads fails and the
// declared length is itself out of bounds, the length violation is reported
// instead: an invalid length is the more actionable root cause of the short
// read it provokes.
func readHeader(r io.Reader) (Header, *io.LimitedReader, error) {
	var h Header
	var err error

	if h.CommandLength, err = readUint32(r); err != nil {
		// Nothing decoded yet; no context to attach.
		return h, nil, err
	}

	remaining := int64(h.CommandLength) - 4
	if remaining < 0 {
		remaining = 0
	}
	body := &io.LimitedReader{R: r, N: remaining}

	if h.CommandID, err = readUint32(body); err != nil {
		return h, nil, h.reportFieldError(err, "command_id")
	}
	if h.CommandStatus, err = readUint32(body); err != nil {
		return h, nil, withCommandID(h.reportFieldError(err, "command_status"), h.CommandID)
	}
	if h.SequenceNumber, err = readUint32(body); err != nil {
		err = h.reportFieldError(err, "sequence_number")
		return h, nil, withCommandStatus(withCommandID(err, h.CommandID), h.CommandStatus)
	}

	if lenErr := validateCommandLength(h.CommandLength); lenErr != nil {
		return h, nil, lenErr.WithHeader(h)
	}
	return h, body, nil
}

func (h Header) reportFieldError(err error, field string) error {
	if lenErr := validateCommandLength(h.CommandLength); lenErr != nil {
		return lenErr
	}
	return fld(field, err)
}

// writeTo emits the four header integers in wire order. CommandLength must
// already hold the final encoded size, computed by the assembler after the
// body was serialized.
func (h Header) writeTo(w io.Writer) error {
	for _, v := range [4]uint32{h.CommandLength, h.CommandID, h.CommandStatus, h.SequenceNumber} {
		if err := writeUint32(w, v); err != nil {
			return err
		}
	}
	return nil
}
