package pdu

import (
	"errors"
	"fmt"
	"io"
)

// ErrorKind classifies a parse failure. The set is closed: every way a byte
// stream can fail to be a valid PDU maps to exactly one kind.
type ErrorKind uint8

const (
	// LengthTooShort means the declared command_length is below the minimum.
	LengthTooShort ErrorKind = iota + 1

	// LengthTooLong means the declared command_length exceeds the maximum.
	LengthTooLong

	// UnknownCommandID means the command_id is not in the supported set.
	UnknownCommandID

	// NotEnoughBytes means the input (or the region bounded by
	// command_length) ended before all declared fields were read.
	NotEnoughBytes

	// StringTooLong means a C-octet string had no terminator within its
	// per-field maximum length.
	StringTooLong

	// StringDoesNotEndWithZeroByte means the readable region ended inside a
	// C-octet string, before its terminator.
	StringDoesNotEndWithZeroByte

	// StringIsNotASCII means a C-octet string contained a non-ASCII byte.
	StringIsNotASCII

	// StatusIsNotZero means a request PDU carried a nonzero command_status.
	StatusIsNotZero

	// BodyNotAllowedWhenStatusIsNotZero means an error response carried body
	// bytes it must not have.
	BodyNotAllowedWhenStatusIsNotZero

	// LengthLongerThanPdu means the body codec finished before the declared
	// command_length was exhausted.
	LengthLongerThanPdu
)

var errorKindNames = map[ErrorKind]string{
	LengthTooShort:                    "LengthTooShort",
	LengthTooLong:                     "LengthTooLong",
	UnknownCommandID:                  "UnknownCommandID",
	NotEnoughBytes:                    "NotEnoughBytes",
	StringTooLong:                     "StringTooLong",
	StringDoesNotEndWithZeroByte:      "StringDoesNotEndWithZeroByte",
	StringIsNotASCII:                  "StringIsNotASCII",
	StatusIsNotZero:                   "StatusIsNotZero",
	BodyNotAllowedWhenStatusIsNotZero: "BodyNotAllowedWhenStatusIsNotZero",
	LengthLongerThanPdu:               "LengthLongerThanPdu",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// ParseError describes why a byte stream failed to parse as a PDU. Context
// fields start unknown and are filled in by enclosing layers as the error
// propagates outward: an inner layer names the offending field, outer layers
// add whatever header identity was recovered before the failure point. The
// With* transforms return an annotated copy and never overwrite context an
// inner layer already supplied.
type ParseError struct {
	Kind    ErrorKind
	Message string

	// Header context, nil until the corresponding field was decoded.
	CommandID      *uint32
	CommandStatus  *uint32
	SequenceNumber *uint32

	// FieldName identifies the field being read at the failure point,
	// empty when unknown.
	FieldName string

	// IOCause records the underlying end-of-input error for NotEnoughBytes
	// and friends, nil otherwise.
	IOCause error
}

func newParseError(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// notEnoughBytes converts an end-of-input error into a NotEnoughBytes parse
// error. Any other I/O failure is not a protocol matter and passes through
// untouched.
func notEnoughBytes(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &ParseError{
			Kind:    NotEnoughBytes,
			Message: "reached end of PDU length (or end of input) before finding all fields of the PDU",
			IOCause: err,
		}
	}
	return err
}

// Error renders one line with every context field known at failure time,
// hexadecimal where known and UNKNOWN otherwise.
func (e *ParseError) Error() string {
	field := e.FieldName
	if field == "" {
		field = "UNKNOWN"
	}
	return fmt.Sprintf("pdu: %s: %s (command_id=%s, command_status=%s, sequence_number=%s, field=%s)",
		e.Kind, e.Message,
		hexOrUnknown(e.CommandID), hexOrUnknown(e.CommandStatus), hexOrUnknown(e.SequenceNumber),
		field)
}

func hexOrUnknown(v *uint32) string {
	if v == nil {
		return "UNKNOWN"
	}
	return fmt.Sprintf("0x%08X", *v)
}

// Unwrap exposes the underlying I/O cause, if any.
func (e *ParseError) Unwrap() error {
	return e.IOCause
}

// WithField returns a copy naming the field being read, unless an inner
// layer already named one.
func (e *ParseError) WithField(name string) *ParseError {
	if e.FieldName != "" {
		return e
	}
	c := *e
	c.FieldName = name
	return &c
}

// WithCommandID returns a copy carrying the command_id, unless known.
func (e *ParseError) WithCommandID(id uint32) *ParseError {
	if e.CommandID != nil {
		return e
	}
	c := *e
	c.CommandID = &id
	return &c
}

// WithCommandStatus returns a copy carrying the command_status, unless known.
func (e *ParseError) WithCommandStatus(status uint32) *ParseError {
	if e.CommandStatus != nil {
		return e
	}
	c := *e
	c.CommandStatus = &status
	return &c
}

// WithSequenceNumber returns a copy carrying the sequence_number, unless known.
func (e *ParseError) WithSequenceNumber(seq uint32) *ParseError {
	if e.SequenceNumber != nil {
		return e
	}
	c := *e
	c.SequenceNumber = &seq
	return &c
}

// WithHeader fills in all three header context fields where absent.
func (e *ParseError) WithHeader(h Header) *ParseError {
	return e.WithCommandID(h.CommandID).
		WithCommandStatus(h.CommandStatus).
		WithSequenceNumber(h.SequenceNumber)
}

// fld names the field being read when err is a parse error that carries no
// more specific location. Other errors pass through untouched.
func fld(name string, err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.WithField(name)
	}
	return err
}

func withCommandID(err error, id uint32) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.WithCommandID(id)
	}
	return err
}

func withCommandStatus(err error, status uint32) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.WithCommandStatus(status)
	}
	return err
}

func withHeader(err error, h Header) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.WithHeader(h)
	}
	return err
}
