package pdu

import (
	"bytes"
	"io"
)

// Pdu is one complete protocol message: header identity plus an
// operation-specific body. The command_id lives on the body (the variant
// tag and the ID cannot disagree), and command_length is derived at write
// time rather than stored.
type Pdu struct {
	CommandStatus  uint32
	SequenceNumber uint32
	Body           Body
}

// CommandID reports the operation of this PDU.
func (p *Pdu) CommandID() uint32 {
	return p.Body.CommandID()
}

// Parse decodes one complete PDU from r. The caller must already know a
// full PDU is buffered (see Check); Parse never waits for more input, it
// only fails when the bytes contradict the declared structure. Parse
// failures are *ParseError values carrying whatever header context was
// recovered; any other error is an I/O failure of r itself.
func Parse(r io.Reader) (*Pdu, error) {
	h, body, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	b, err := readBody(body, h.CommandID, h.CommandStatus)
	if err != nil {
		return nil, withHeader(err, h)
	}

	// The declared length must be consumed exactly. body is bounded to it,
	// so a single probe byte distinguishes "spent" from "leftover" without
	// ever touching a following PDU on the stream.
	var probe [1]byte
	switch _, err := io.ReadFull(body, probe[:]); err {
	case io.EOF:
	case nil:
		e := newParseError(LengthLongerThanPdu,
			"finished parsing %s but command_length says the PDU is longer", CommandName(h.CommandID))
		return nil, e.WithHeader(h)
	default:
		return nil, err
	}

	return &Pdu{
		CommandStatus:  h.CommandStatus,
		SequenceNumber: h.SequenceNumber,
		Body:           b,
	}, nil
}

// Write serializes the PDU to w. The body goes through a scratch buffer
// first because command_length must be known before the header can be
// emitted, and the sink may not support seeking back to patch it.
func (p *Pdu) Write(w io.Writer) error {
	var body bytes.Buffer
	if err := p.Body.writeTo(&body); err != nil {
		return err
	}

	h := Header{
		CommandLength:  uint32(body.Len() + HeaderLen),
		CommandID:      p.Body.CommandID(),
		CommandStatus:  p.CommandStatus,
		SequenceNumber: p.SequenceNumber,
	}
	if err := h.writeTo(w); err != nil {
		return err
	}
	_, err := w.Write(body.Bytes())
	return err
}

// NewGenericNack builds the response for a PDU that could not be understood
// at all. seq should echo the offending sequence number when it was
// recovered, zero otherwise.
func NewGenericNack(status, seq uint32) *Pdu {
	return &Pdu{
		CommandStatus:  status,
		SequenceNumber: seq,
		Body:           &GenericNack{},
	}
}

// NackFor builds the generic_nack answering a PDU that failed to parse,
// echoing the recovered sequence number when the header got that far.
func NackFor(e *ParseError) *Pdu {
	var seq uint32
	if e.SequenceNumber != nil {
		seq = *e.SequenceNumber
	}
	return NewGenericNack(e.Status(), seq)
}

// NewEnquireLinkResp builds the liveness probe answer.
func NewEnquireLinkResp(seq uint32) *Pdu {
	return &Pdu{SequenceNumber: seq, Body: &EnquireLinkResp{}}
}

// NewUnbindResp builds the unbind answer.
func NewUnbindResp(status, seq uint32) *Pdu {
	return &Pdu{CommandStatus: status, SequenceNumber: seq, Body: &UnbindResp{}}
}
