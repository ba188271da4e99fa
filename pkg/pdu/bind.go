package pdu

import "io"

// Maximum encoded lengths, terminator included (SMPP 3.4 Section 4.1.1).
const (
	maxSystemIDLen     = 16
	maxPasswordLen     = 9
	maxSystemTypeLen   = 13
	maxAddressRangeLen = 41
)

// bindFields is the request layout shared by bind_transmitter, bind_receiver
// and bind_transceiver. All fields are always present.
type bindFields struct {
	SystemID         COctetString
	Password         COctetString
	SystemType       COctetString
	InterfaceVersion uint8
	AddrTON          uint8
	AddrNPI          uint8
	AddressRange     COctetString
}

func newBindFields(systemID, password, systemType string, interfaceVersion, addrTON, addrNPI uint8, addressRange string) (bindFields, error) {
	var f bindFields
	var err error
	if f.SystemID, err = NewCOctetString(systemID, maxSystemIDLen); err != nil {
		return f, fld("system_id", err)
	}
	if f.Password, err = NewCOctetString(password, maxPasswordLen); err != nil {
		return f, fld("password", err)
	}
	if f.SystemType, err = NewCOctetString(systemType, maxSystemTypeLen); err != nil {
		return f, fld("system_type", err)
	}
	f.InterfaceVersion = interfaceVersion
	f.AddrTON = addrTON
	f.AddrNPI = addrNPI
	if f.AddressRange, err = NewCOctetString(addressRange, maxAddressRangeLen); err != nil {
		return f, fld("address_range", err)
	}
	return f, nil
}

func readBindFields(r io.Reader, commandStatus uint32) (bindFields, error) {
	var f bindFields
	var err error
	if f.SystemID, err = readCOctetString(r, maxSystemIDLen); err != nil {
		return f, fld("system_id", err)
	}
	if f.Password, err = readCOctetString(r, maxPasswordLen); err != nil {
		return f, fld("password", err)
	}
	if f.SystemType, err = readCOctetString(r, maxSystemTypeLen); err != nil {
		return f, fld("system_type", err)
	}
	if f.InterfaceVersion, err = readUint8(r); err != nil {
		return f, fld("interface_version", err)
	}
	if f.AddrTON, err = readUint8(r); err != nil {
		return f, fld("addr_ton", err)
	}
	if f.AddrNPI, err = readUint8(r); err != nil {
		return f, fld("addr_npi", err)
	}
	if f.AddressRange, err = readCOctetString(r, maxAddressRangeLen); err != nil {
		return f, fld("address_range", err)
	}
	return f, requireZeroStatus(commandStatus)
}

func (f *bindFields) writeTo(w io.Writer) error {
	if err := f.SystemID.writeTo(w); err != nil {
		return err
	}
	if err := f.Password.writeTo(w); err != nil {
		return err
	}
	if err := f.SystemType.writeTo(w); err != nil {
		return err
	}
	if err := writeUint8(w, f.InterfaceVersion); err != nil {
		return err
	}
	if err := writeUint8(w, f.AddrTON); err != nil {
		return err
	}
	if err := writeUint8(w, f.AddrNPI); err != nil {
		return err
	}
	return f.AddressRange.writeTo(w)
}

// BindTransmitter requests a transmitter session (SMPP 3.4 Section 4.1.1).
type BindTransmitter struct {
	bindFields
}

// NewBindTransmitter validates the field values and builds the body.
func NewBindTransmitter(systemID, password, systemType string, interfaceVersion, addrTON, addrNPI uint8, addressRange string) (*BindTransmitter, error) {
	f, err := newBindFields(systemID, password, systemType, interfaceVersion, addrTON, addrNPI, addressRange)
	if err != nil {
		return nil, err
	}
	return &BindTransmitter{bindFields: f}, nil
}

func (*BindTransmitter) CommandID() uint32 { return CommandBindTransmitter }

func readBindTransmitter(r io.Reader, commandStatus uint32) (*BindTransmitter, error) {
	f, err := readBindFields(r, commandStatus)
	if err != nil {
		return nil, err
	}
	return &BindTransmitter{bindFields: f}, nil
}

// BindReceiver requests a receiver session. Same layout as BindTransmitter.
type BindReceiver struct {
	bindFields
}

// NewBindReceiver validates the field values and builds the body.
func NewBindReceiver(systemID, password, systemType string, interfaceVersion, addrTON, addrNPI uint8, addressRange string) (*BindReceiver, error) {
	f, err := newBindFields(systemID, password, systemType, interfaceVersion, addrTON, addrNPI, addressRange)
	if err != nil {
		return nil, err
	}
	return &BindReceiver{bindFields: f}, nil
}

func (*BindReceiver) CommandID() uint32 { return CommandBindReceiver }

func readBindReceiver(r io.Reader, commandStatus uint32) (*BindReceiver, error) {
	f, err := readBindFields(r, commandStatus)
	if err != nil {
		return nil, err
	}
	return &BindReceiver{bindFields: f}, nil
}

// BindTransceiver requests a combined session. Same layout as BindTransmitter.
type BindTransceiver struct {
	bindFields
}

// NewBindTransceiver validates the field values and builds the body.
func NewBindTransceiver(systemID, password, systemType string, interfaceVersion, addrTON, addrNPI uint8, addressRange string) (*BindTransceiver, error) {
	f, err := newBindFields(systemID, password, systemType, interfaceVersion, addrTON, addrNPI, addressRange)
	if err != nil {
		return nil, err
	}
	return &BindTransceiver{bindFields: f}, nil
}

func (*BindTransceiver) CommandID() uint32 { return CommandBindTransceiver }

func readBindTransceiver(r io.Reader, commandStatus uint32) (*BindTransceiver, error) {
	f, err := readBindFields(r, commandStatus)
	if err != nil {
		return nil, err
	}
	return &BindTransceiver{bindFields: f}, nil
}

// bindRespFields is the response layout shared by the three bind responses:
// the server's system_id when the bind succeeded, no body bytes at all when
// it did not.
type bindRespFields struct {
	SystemID *COctetString
}

func newBindRespFields(systemID string) (bindRespFields, error) {
	s, err := NewCOctetString(systemID, maxSystemIDLen)
	if err != nil {
		return bindRespFields{}, fld("system_id", err)
	}
	return bindRespFields{SystemID: &s}, nil
}

func readBindRespFields(r io.Reader, commandStatus uint32) (bindRespFields, error) {
	s, err := readConditionalString(r, commandStatus, "system_id", maxSystemIDLen)
	if err != nil {
		return bindRespFields{}, err
	}
	return bindRespFields{SystemID: s}, nil
}

func (f *bindRespFields) writeTo(w io.Writer) error {
	if f.SystemID == nil {
		return nil
	}
	return f.SystemID.writeTo(w)
}

// BindTransmitterResp answers a bind_transmitter.
type BindTransmitterResp struct {
	bindRespFields
}

// NewBindTransmitterResp builds the success response carrying the server's
// system_id.
func NewBindTransmitterResp(systemID string) (*BindTransmitterResp, error) {
	f, err := newBindRespFields(systemID)
	if err != nil {
		return nil, err
	}
	return &BindTransmitterResp{bindRespFields: f}, nil
}

func (*BindTransmitterResp) CommandID() uint32 { return CommandBindTransmitterResp }

func readBindTransmitterResp(r io.Reader, commandStatus uint32) (*BindTransmitterResp, error) {
	f, err := readBindRespFields(r, commandStatus)
	if err != nil {
		return nil, err
	}
	return &BindTransmitterResp{bindRespFields: f}, nil
}

// BindReceiverResp answers a bind_receiver.
type BindReceiverResp struct {
	bindRespFields
}

// NewBindReceiverResp builds the success response carrying the server's
// system_id.
func NewBindReceiverResp(systemID string) (*BindReceiverResp, error) {
	f, err := newBindRespFields(systemID)
	if err != nil {
		return nil, err
	}
	return &BindReceiverResp{bindRespFields: f}, nil
}

func (*BindReceiverResp) CommandID() uint32 { return CommandBindReceiverResp }

func readBindReceiverResp(r io.Reader, commandStatus uint32) (*BindReceiverResp, error) {
	f, err := readBindRespFields(r, commandStatus)
	if err != nil {
		return nil, err
	}
	return &BindReceiverResp{bindRespFields: f}, nil
}

// BindTransceiverResp answers a bind_transceiver.
type BindTransceiverResp struct {
	bindRespFields
}

// NewBindTransceiverResp builds the success response carrying the server's
// system_id.
func NewBindTransceiverResp(systemID string) (*BindTransceiverResp, error) {
	f, err := newBindRespFields(systemID)
	if err != nil {
		return nil, err
	}
	return &BindTransceiverResp{bindRespFields: f}, nil
}

func (*BindTransceiverResp) CommandID() uint32 { return CommandBindTransceiverResp }

func readBindTransceiverResp(r io.Reader, commandStatus uint32) (*BindTransceiverResp, error) {
	f, err := readBindRespFields(r, commandStatus)
	if err != nil {
		return nil, err
	}
	return &BindTransceiverResp{bindRespFields: f}, nil
}
