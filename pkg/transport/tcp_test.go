package transport

import (
	"net"
	"testing"
	"time"

	"github.com/pion/logging"
	"github.com/pion/transport/v3/test"

	"github.com/backkem/smpp/pkg/pdu"
)

func TestNewTCP(t *testing.T) {
	t.Run("with handler", func(t *testing.T) {
		handler := func(conn *Conn, p *pdu.Pdu) {}
		tcp, err := NewTCP(TCPConfig{
			ListenAddr: "127.0.0.1:0",
			Handler:    handler,
		})
		if err != nil {
			t.Fatalf("NewTCP() error = %v", err)
		}
		defer tcp.Stop()

		if tcp.listener == nil {
			t.Error("NewTCP() listener is nil")
		}
	})

	t.Run("without handler", func(t *testing.T) {
		_, err := NewTCP(TCPConfig{
			ListenAddr: "127.0.0.1:0",
		})
		if err != ErrNoHandler {
			t.Errorf("NewTCP() error = %v, want %v", err, ErrNoHandler)
		}
	})

	t.Run("with injected listener", func(t *testing.T) {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("Listen() error = %v", err)
		}

		handler := func(conn *Conn, p *pdu.Pdu) {}
		tcp, err := NewTCP(TCPConfig{
			Listener: listener,
			Handler:  handler,
		})
		if err != nil {
			t.Fatalf("NewTCP() error = %v", err)
		}
		defer tcp.Stop()

		if tcp.listener != listener {
			t.Error("NewTCP() did not use injected listener")
		}
	})
}

func TestTCPStartStop(t *testing.T) {
	report := test.CheckRoutines(t)
	defer report()

	handler := func(conn *Conn, p *pdu.Pdu) {}
	tcp, err := NewTCP(TCPConfig{
		ListenAddr: "127.0.0.1:0",
		Handler:    handler,
	})
	if err != nil {
		t.Fatalf("NewTCP() error = %v", err)
	}

	if err := tcp.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := tcp.Start(); err != ErrAlreadyStarted {
		t.Errorf("second Start() error = %v, want %v", err, ErrAlreadyStarted)
	}

	if err := tcp.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := tcp.Stop(); err != ErrClosed {
		t.Errorf("second Stop() error = %v, want %v", err, ErrClosed)
	}
}

// dialServer connects a raw client socket to the transport under test and
// wraps its inbound side for framed reads.
func dialServer(t *testing.T, tcp *TCP) (net.Conn, func() (*pdu.Pdu, error)) {
	t.Helper()

	nc, err := net.Dial("tcp", tcp.LocalAddr().String())
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { nc.Close() })
	nc.SetDeadline(time.Now().Add(5 * time.Second))

	r := pdu.NewReader(nc)
	readPdu := func() (*pdu.Pdu, error) {
		if _, err := pdu.Check(r); err != nil {
			return nil, err
		}
		return pdu.Parse(r)
	}
	return nc, readPdu
}

func TestTCPBindExchange(t *testing.T) {
	report := test.CheckRoutines(t)
	defer report()

	handler := func(conn *Conn, p *pdu.Pdu) {
		switch p.Body.(type) {
		case *pdu.BindTransmitter:
			body, err := pdu.NewBindTransmitterResp("TestServer")
			if err != nil {
				t.Errorf("NewBindTransmitterResp() error = %v", err)
				return
			}
			conn.Send(&pdu.Pdu{SequenceNumber: p.SequenceNumber, Body: body})
		case *pdu.EnquireLink:
			conn.Send(pdu.NewEnquireLinkResp(p.SequenceNumber))
		}
	}

	tcp, err := NewTCP(TCPConfig{
		ListenAddr:    "127.0.0.1:0",
		Handler:       handler,
		LoggerFactory: logging.NewDefaultLoggerFactory(),
	})
	if err != nil {
		t.Fatalf("NewTCP() error = %v", err)
	}
	defer tcp.Stop()
	if err := tcp.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	nc, readPdu := dialServer(t, tcp)

	bindBody, err := pdu.NewBindTransmitter("client1", "secret", "", 0x34, 0, 0, "")
	if err != nil {
		t.Fatalf("NewBindTransmitter() error = %v", err)
	}
	bind := &pdu.Pdu{SequenceNumber: 1, Body: bindBody}
	if err := bind.Write(nc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	resp, err := readPdu()
	if err != nil {
		t.Fatalf("read response error = %v", err)
	}
	if resp.CommandID() != pdu.CommandBindTransmitterResp {
		t.Fatalf("response CommandID() = 0x%08X, want bind_transmitter_resp", resp.CommandID())
	}
	if resp.SequenceNumber != 1 {
		t.Errorf("response SequenceNumber = %d, want 1", resp.SequenceNumber)
	}
	body := resp.Body.(*pdu.BindTransmitterResp)
	if body.SystemID == nil || body.SystemID.String() != "TestServer" {
		t.Errorf("response SystemID = %v, want TestServer", body.SystemID)
	}

	// The same connection keeps serving subsequent PDUs.
	enquire := &pdu.Pdu{SequenceNumber: 2, Body: &pdu.EnquireLink{}}
	if err := enquire.Write(nc); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	resp, err = readPdu()
	if err != nil {
		t.Fatalf("read enquire_link_resp error = %v", err)
	}
	if resp.CommandID() != pdu.CommandEnquireLinkResp {
		t.Errorf("response CommandID() = 0x%08X, want enquire_link_resp", resp.CommandID())
	}
	if resp.SequenceNumber != 2 {
		t.Errorf("response SequenceNumber = %d, want 2", resp.SequenceNumber)
	}
}

func TestTCPMalformedPduGetsNack(t *testing.T) {
	report := test.CheckRoutines(t)
	defer report()

	handler := func(conn *Conn, p *pdu.Pdu) {
		t.Errorf("handler called for malformed PDU %T", p.Body)
	}

	tcp, err := NewTCP(TCPConfig{
		ListenAddr: "127.0.0.1:0",
		Handler:    handler,
	})
	if err != nil {
		t.Fatalf("NewTCP() error = %v", err)
	}
	defer tcp.Stop()
	if err := tcp.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	nc, readPdu := dialServer(t, tcp)

	// Well-formed header, unsupported command_id 0x33, sequence_number 9.
	garbage := []byte("\x00\x00\x00\x10\x00\x00\x00\x33\x00\x00\x00\x00\x00\x00\x00\x09")
	if _, err := nc.Write(garbage); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	nack, err := readPdu()
	if err != nil {
		t.Fatalf("read nack error = %v", err)
	}
	if nack.CommandID() != pdu.CommandGenericNack {
		t.Fatalf("CommandID() = 0x%08X, want generic_nack", nack.CommandID())
	}
	if nack.CommandStatus != pdu.StatusInvCmdID {
		t.Errorf("CommandStatus = 0x%08X, want ESME_RINVCMDID", nack.CommandStatus)
	}
	if nack.SequenceNumber != 9 {
		t.Errorf("SequenceNumber = %d, want 9", nack.SequenceNumber)
	}

	// The transport drops the connection after a malformed record.
	if _, err := readPdu(); err == nil {
		t.Error("connection still open after malformed PDU, want close")
	}
}
