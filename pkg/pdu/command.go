package pdu

import "fmt"

// Command IDs (SMPP 3.4 Section 5.1.2.1). Requests use the low-order value;
// the matching response sets CommandRespBit.
const (
	CommandGenericNack         uint32 = 0x80000000
	CommandBindReceiver        uint32 = 0x00000001
	CommandBindReceiverResp    uint32 = 0x80000001
	CommandBindTransmitter     uint32 = 0x00000002
	CommandBindTransmitterResp uint32 = 0x80000002
	CommandSubmitSm            uint32 = 0x00000004
	CommandSubmitSmResp        uint32 = 0x80000004
	CommandDeliverSm           uint32 = 0x00000005
	CommandDeliverSmResp       uint32 = 0x80000005
	CommandUnbind              uint32 = 0x00000006
	CommandUnbindResp          uint32 = 0x80000006
	CommandBindTransceiver     uint32 = 0x00000009
	CommandBindTransceiverResp uint32 = 0x80000009
	CommandEnquireLink         uint32 = 0x00000015
	CommandEnquireLinkResp     uint32 = 0x80000015
)

// CommandRespBit marks a command ID as a response operation.
const CommandRespBit uint32 = 0x80000000

var commandNames = map[uint32]string{
	CommandGenericNack:         "generic_nack",
	CommandBindReceiver:        "bind_receiver",
	CommandBindReceiverResp:    "bind_receiver_resp",
	CommandBindTransmitter:     "bind_transmitter",
	CommandBindTransmitterResp: "bind_transmitter_resp",
	CommandSubmitSm:            "submit_sm",
	CommandSubmitSmResp:        "submit_sm_resp",
	CommandDeliverSm:           "deliver_sm",
	CommandDeliverSmResp:       "deliver_sm_resp",
	CommandUnbind:              "unbind",
	CommandUnbindResp:          "unbind_resp",
	CommandBindTransceiver:     "bind_transceiver",
	CommandBindTransceiverResp: "bind_transceiver_resp",
	CommandEnquireLink:         "enquire_link",
	CommandEnquireLinkResp:     "enquire_link_resp",
}

// CommandName returns the operation name for a command ID, or the hex value
// for IDs outside the supported set.
func CommandName(id uint32) string {
	if name, ok := commandNames[id]; ok {
		return name
	}
	return fmt.Sprintf("0x%08X", id)
}
