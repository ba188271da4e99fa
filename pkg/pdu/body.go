package pdu

import "io"

// Body is the operation-specific payload of a PDU. The set of
// implementations is closed: one per supported command ID.
type Body interface {
	// CommandID reports which operation this body belongs to.
	CommandID() uint32

	// writeTo serializes the body fields in wire order, header excluded.
	writeTo(w io.Writer) error
}

// readBody dispatches to the codec for the given command ID. Several
// operations change their required fields based on commandStatus, so it is
// passed through. r must already be bounded to the declared body length.
func readBody(r io.Reader, commandID, commandStatus uint32) (Body, error) {
	switch commandID {
	case CommandBindReceiver:
		return readBindReceiver(r, commandStatus)
	case CommandBindReceiverResp:
		return readBindReceiverResp(r, commandStatus)
	case CommandBindTransmitter:
		return readBindTransmitter(r, commandStatus)
	case CommandBindTransmitterResp:
		return readBindTransmitterResp(r, commandStatus)
	case CommandBindTransceiver:
		return readBindTransceiver(r, commandStatus)
	case CommandBindTransceiverResp:
		return readBindTransceiverResp(r, commandStatus)
	case CommandSubmitSm:
		return readSubmitSm(r, commandStatus)
	case CommandSubmitSmResp:
		return readSubmitSmResp(r, commandStatus)
	case CommandDeliverSm:
		return readDeliverSm(r, commandStatus)
	case CommandDeliverSmResp:
		return readDeliverSmResp(r, commandStatus)
	case CommandUnbind:
		return readUnbind(r, commandStatus)
	case CommandUnbindResp:
		return readUnbindResp(r, commandStatus)
	case CommandEnquireLink:
		return readEnquireLink(r, commandStatus)
	case CommandEnquireLinkResp:
		return readEnquireLinkResp(r, commandStatus)
	case CommandGenericNack:
		return readGenericNack(r, commandStatus)
	default:
		return nil, newParseError(UnknownCommandID,
			"unknown command_id %d", commandID)
	}
}

// requireZeroStatus enforces the request-side rule that command_status must
// be zero. Callers invoke it only after all body fields parsed structurally,
// so a malformed body still reports its most specific error first.
func requireZeroStatus(commandStatus uint32) error {
	if commandStatus != 0 {
		e := newParseError(StatusIsNotZero,
			"command_status must be 0, but was %d", commandStatus)
		return e.WithField("command_status")
	}
	return nil
}

// readConditionalString implements the status-conditional single-string body
// shared by the bind responses, submit_sm_resp and deliver_sm_resp. With a
// zero status the string must be present. With a nonzero status no body
// bytes are permitted at all, which is verified by attempting to read one
// byte past the expected end; r being bounded to the declared body length is
// what keeps that probe from touching a following PDU.
func readConditionalString(r io.Reader, commandStatus uint32, name string, maxLen int) (*COctetString, error) {
	if commandStatus == 0 {
		s, err := readCOctetString(r, maxLen)
		if err != nil {
			return nil, fld(name, err)
		}
		return &s, nil
	}

	var probe [1]byte
	switch _, err := io.ReadFull(r, probe[:]); err {
	case io.EOF:
		return nil, nil
	case nil:
		e := newParseError(BodyNotAllowedWhenStatusIsNotZero,
			"%s must not be present when command_status is not 0", name)
		return nil, e.WithField(name)
	default:
		return nil, err
	}
}
