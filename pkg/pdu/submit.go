package pdu

import "io"

// Maximum encoded lengths, terminator included (SMPP 3.4 Section 4.4).
const (
	maxServiceTypeLen  = 6
	maxAddrLen         = 21
	maxScheduleTimeLen = 17
	maxValidityLen     = 17

	// Section 4.4.2 settled on 65 for message_id after revising 9 and 33.
	maxMessageIDLen = 65

	// maxShortMessageLen bounds the opaque payload; sm_length is one byte.
	maxShortMessageLen = 254
)

// smFields is the field layout shared by submit_sm and deliver_sm.
// ShortMessage is opaque: its encoding is whatever DataCoding declares, and
// its wire length is carried by the immediately preceding sm_length byte.
type smFields struct {
	ServiceType          COctetString
	SourceAddrTON        uint8
	SourceAddrNPI        uint8
	SourceAddr           COctetString
	DestAddrTON          uint8
	DestAddrNPI          uint8
	DestinationAddr      COctetString
	EsmClass             uint8
	ProtocolID           uint8
	PriorityFlag         uint8
	ScheduleDeliveryTime COctetString
	ValidityPeriod       COctetString
	RegisteredDelivery   uint8
	ReplaceIfPresentFlag uint8
	DataCoding           uint8
	SmDefaultMsgID       uint8
	ShortMessage         []byte
}

func readSmFields(r io.Reader, commandStatus uint32) (smFields, error) {
	var f smFields
	var err error
	if f.ServiceType, err = readCOctetString(r, maxServiceTypeLen); err != nil {
		return f, fld("service_type", err)
	}
	if f.SourceAddrTON, err = readUint8(r); err != nil {
		return f, fld("source_addr_ton", err)
	}
	if f.SourceAddrNPI, err = readUint8(r); err != nil {
		return f, fld("source_addr_npi", err)
	}
	if f.SourceAddr, err = readCOctetString(r, maxAddrLen); err != nil {
		return f, fld("source_addr", err)
	}
	if f.DestAddrTON, err = readUint8(r); err != nil {
		return f, fld("dest_addr_ton", err)
	}
	if f.DestAddrNPI, err = readUint8(r); err != nil {
		return f, fld("dest_addr_npi", err)
	}
	if f.DestinationAddr, err = readCOctetString(r, maxAddrLen); err != nil {
		return f, fld("destination_addr", err)
	}
	if f.EsmClass, err = readUint8(r); err != nil {
		return f, fld("esm_class", err)
	}
	if f.ProtocolID, err = readUint8(r); err != nil {
		return f, fld("protocol_id", err)
	}
	if f.PriorityFlag, err = readUint8(r); err != nil {
		return f, fld("priority_flag", err)
	}
	if f.ScheduleDeliveryTime, err = readCOctetString(r, maxScheduleTimeLen); err != nil {
		return f, fld("schedule_delivery_time", err)
	}
	if f.ValidityPeriod, err = readCOctetString(r, maxValidityLen); err != nil {
		return f, fld("validity_period", err)
	}
	if f.RegisteredDelivery, err = readUint8(r); err != nil {
		return f, fld("registered_delivery", err)
	}
	if f.ReplaceIfPresentFlag, err = readUint8(r); err != nil {
		return f, fld("replace_if_present_flag", err)
	}
	if f.DataCoding, err = readUint8(r); err != nil {
		return f, fld("data_coding", err)
	}
	if f.SmDefaultMsgID, err = readUint8(r); err != nil {
		return f, fld("sm_default_msg_id", err)
	}
	smLength, err := readUint8(r)
	if err != nil {
		return f, fld("sm_length", err)
	}
	if f.ShortMessage, err = readOctetString(r, int(smLength)); err != nil {
		return f, fld("short_message", err)
	}
	return f, requireZeroStatus(commandStatus)
}

func (f *smFields) writeTo(w io.Writer) error {
	if err := f.ServiceType.writeTo(w); err != nil {
		return err
	}
	if err := writeUint8(w, f.SourceAddrTON); err != nil {
		return err
	}
	if err := writeUint8(w, f.SourceAddrNPI); err != nil {
		return err
	}
	if err := f.SourceAddr.writeTo(w); err != nil {
		return err
	}
	if err := writeUint8(w, f.DestAddrTON); err != nil {
		return err
	}
	if err := writeUint8(w, f.DestAddrNPI); err != nil {
		return err
	}
	if err := f.DestinationAddr.writeTo(w); err != nil {
		return err
	}
	if err := writeUint8(w, f.EsmClass); err != nil {
		return err
	}
	if err := writeUint8(w, f.ProtocolID); err != nil {
		return err
	}
	if err := writeUint8(w, f.PriorityFlag); err != nil {
		return err
	}
	if err := f.ScheduleDeliveryTime.writeTo(w); err != nil {
		return err
	}
	if err := f.ValidityPeriod.writeTo(w); err != nil {
		return err
	}
	if err := writeUint8(w, f.RegisteredDelivery); err != nil {
		return err
	}
	if err := writeUint8(w, f.ReplaceIfPresentFlag); err != nil {
		return err
	}
	if err := writeUint8(w, f.DataCoding); err != nil {
		return err
	}
	if err := writeUint8(w, f.SmDefaultMsgID); err != nil {
		return err
	}
	if err := writeUint8(w, uint8(len(f.ShortMessage))); err != nil {
		return err
	}
	return writeOctetString(w, f.ShortMessage)
}

// SmParams collects the caller-supplied values for a submit_sm or
// deliver_sm body. Zero values are valid for every field.
type SmParams struct {
	ServiceType          string
	SourceAddrTON        uint8
	SourceAddrNPI        uint8
	SourceAddr           string
	DestAddrTON          uint8
	DestAddrNPI          uint8
	DestinationAddr      string
	EsmClass             uint8
	ProtocolID           uint8
	PriorityFlag         uint8
	ScheduleDeliveryTime string
	ValidityPeriod       string
	RegisteredDelivery   uint8
	ReplaceIfPresentFlag uint8
	DataCoding           uint8
	SmDefaultMsgID       uint8
	ShortMessage         []byte
}

func newSmFields(p SmParams) (smFields, error) {
	var f smFields
	var err error
	if f.ServiceType, err = NewCOctetString(p.ServiceType, maxServiceTypeLen); err != nil {
		return f, fld("service_type", err)
	}
	if f.SourceAddr, err = NewCOctetString(p.SourceAddr, maxAddrLen); err != nil {
		return f, fld("source_addr", err)
	}
	if f.DestinationAddr, err = NewCOctetString(p.DestinationAddr, maxAddrLen); err != nil {
		return f, fld("destination_addr", err)
	}
	if f.ScheduleDeliveryTime, err = NewCOctetString(p.ScheduleDeliveryTime, maxScheduleTimeLen); err != nil {
		return f, fld("schedule_delivery_time", err)
	}
	if f.ValidityPeriod, err = NewCOctetString(p.ValidityPeriod, maxValidityLen); err != nil {
		return f, fld("validity_period", err)
	}
	if len(p.ShortMessage) > maxShortMessageLen {
		e := newParseError(StringTooLong,
			"short_message is too long, max length is %d", maxShortMessageLen)
		return f, e.WithField("short_message")
	}
	f.SourceAddrTON = p.SourceAddrTON
	f.SourceAddrNPI = p.SourceAddrNPI
	f.DestAddrTON = p.DestAddrTON
	f.DestAddrNPI = p.DestAddrNPI
	f.EsmClass = p.EsmClass
	f.ProtocolID = p.ProtocolID
	f.PriorityFlag = p.PriorityFlag
	f.RegisteredDelivery = p.RegisteredDelivery
	f.ReplaceIfPresentFlag = p.ReplaceIfPresentFlag
	f.DataCoding = p.DataCoding
	f.SmDefaultMsgID = p.SmDefaultMsgID
	f.ShortMessage = p.ShortMessage
	return f, nil
}

// SubmitSm carries a short message toward the server (SMPP 3.4 Section 4.4.1).
type SubmitSm struct {
	smFields
}

// NewSubmitSm validates the field values and builds the body.
func NewSubmitSm(p SmParams) (*SubmitSm, error) {
	f, err := newSmFields(p)
	if err != nil {
		return nil, err
	}
	return &SubmitSm{smFields: f}, nil
}

func (*SubmitSm) CommandID() uint32 { return CommandSubmitSm }

func readSubmitSm(r io.Reader, commandStatus uint32) (*SubmitSm, error) {
	f, err := readSmFields(r, commandStatus)
	if err != nil {
		return nil, err
	}
	return &SubmitSm{smFields: f}, nil
}

// DeliverSm carries a short message toward the client. Same layout as
// SubmitSm (SMPP 3.4 Section 4.6.1).
type DeliverSm struct {
	smFields
}

// NewDeliverSm validates the field values and builds the body.
func NewDeliverSm(p SmParams) (*DeliverSm, error) {
	f, err := newSmFields(p)
	if err != nil {
		return nil, err
	}
	return &DeliverSm{smFields: f}, nil
}

func (*DeliverSm) CommandID() uint32 { return CommandDeliverSm }

func readDeliverSm(r io.Reader, commandStatus uint32) (*DeliverSm, error) {
	f, err := readSmFields(r, commandStatus)
	if err != nil {
		return nil, err
	}
	return &DeliverSm{smFields: f}, nil
}

// SubmitSmResp answers a submit_sm. MessageID is present exactly when the
// command_status is zero; an error response carries no body at all.
type SubmitSmResp struct {
	MessageID *COctetString
}

// NewSubmitSmResp builds the success response carrying the assigned
// message_id.
func NewSubmitSmResp(messageID string) (*SubmitSmResp, error) {
	s, err := NewCOctetString(messageID, maxMessageIDLen)
	if err != nil {
		return nil, fld("message_id", err)
	}
	return &SubmitSmResp{MessageID: &s}, nil
}

// NewSubmitSmRespError builds the bodyless error response.
func NewSubmitSmRespError() *SubmitSmResp {
	return &SubmitSmResp{}
}

func (*SubmitSmResp) CommandID() uint32 { return CommandSubmitSmResp }

func (b *SubmitSmResp) writeTo(w io.Writer) error {
	if b.MessageID == nil {
		return nil
	}
	return b.MessageID.writeTo(w)
}

func readSubmitSmResp(r io.Reader, commandStatus uint32) (*SubmitSmResp, error) {
	s, err := readConditionalString(r, commandStatus, "message_id", maxMessageIDLen)
	if err != nil {
		return nil, err
	}
	return &SubmitSmResp{MessageID: s}, nil
}

// DeliverSmResp answers a deliver_sm. Same conditional message_id rule as
// SubmitSmResp.
type DeliverSmResp struct {
	MessageID *COctetString
}

// NewDeliverSmResp builds the success response. The message_id is unused in
// deliver_sm_resp and normally empty.
func NewDeliverSmResp(messageID string) (*DeliverSmResp, error) {
	s, err := NewCOctetString(messageID, maxMessageIDLen)
	if err != nil {
		return nil, fld("message_id", err)
	}
	return &DeliverSmResp{MessageID: &s}, nil
}

// NewDeliverSmRespError builds the bodyless error response.
func NewDeliverSmRespError() *DeliverSmResp {
	return &DeliverSmResp{}
}

func (*DeliverSmResp) CommandID() uint32 { return CommandDeliverSmResp }

func (b *DeliverSmResp) writeTo(w io.Writer) error {
	if b.MessageID == nil {
		return nil
	}
	return b.MessageID.writeTo(w)
}

func readDeliverSmResp(r io.Reader, commandStatus uint32) (*DeliverSmResp, error) {
	s, err := readConditionalString(r, commandStatus, "message_id", maxMessageIDLen)
	if err != nil {
		return nil, err
	}
	return &DeliverSmResp{MessageID: s}, nil
}
