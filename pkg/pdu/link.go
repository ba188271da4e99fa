package pdu

import "io"

// Session-management operations with empty bodies. Stray bytes inside the
// declared length are rejected by the assembler's trailing-byte check.

// EnquireLink is the liveness probe either peer may send.
type EnquireLink struct{}

func (*EnquireLink) CommandID() uint32	{ return CommandEnquireLink }
func (*EnquireLink) writeTo(io.Writer) error	{ return nil }

func readEnquireLink(_ io.Reader, commandStatus uint32) (*EnquireLink, error) {
	if err := requireZeroStatus(commandStatus); err != nil {
		return nil, err
	}
	return &EnquireLink{}, nil
}

// EnquireLinkResp answers an enquire_link.
type EnquireLinkResp struct{}

func (*EnquireLinkResp) CommandID() uint32	{ return CommandEnquireLinkResp }
func (*EnquireLinkResp) writeTo(io.Writer) error	{ return nil }

func readEnquireLinkResp(_ io.Reader, _ uint32) (*EnquireLinkResp, error) {
	return &EnquireLinkResp{}, nil
}

// Unbind requests an orderly end to the session.
type Unbind struct{}

func (*Unbind) CommandID() uint32	{ return CommandUnbind }
func (*Unbind) writeTo(io.Writer) error	{ return nil }

func readUnbind(_ io.Reader, commandStatus uint32) (*Unbind, error) {
	if err := requireZeroStatus(commandStatus); err != nil {
		return nil, err
	}
	return &Unbind{}, nil
}

// UnbindResp answers an unbind.
type UnbindResp struct{}

func (*UnbindResp) CommandID() uint32	{ return CommandUnbindResp }
func (*UnbindResp) writeTo(io.Writer) error	{ return nil }

func readUnbindResp(_ io.Reader, _ uint32) (*UnbindResp, error) {
	return &UnbindResp{}, nil
}

// GenericNack reports that an incoming PDU could not be understood or
// processed at all. The command_status carries the reason, so a nonzero
// status is expected here.
type GenericNack struct{}

func (*GenericNack) CommandID() uint32	{ return CommandGenericNack }
func (*GenericNack) writeTo(io.Writer) error	{ return nil }

func readGenericNack(_ io.Reader, _ uint32) (*GenericNack, error) {
	return &GenericNack{}, nil
}
