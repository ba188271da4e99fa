package transport

import (
	"errors"
	"net"
	"sync"

	"github.com/pion/logging"

	"github.com/backkem/smpp/pkg/pdu"
)

// Handler is called for each PDU decoded off a connection. Implementations
// should process quickly or dispatch to a goroutine to avoid blocking the
// connection's read loop. Replies go back through conn.Send.
type Handler func(conn *Conn, p *pdu.Pdu)

// TCPConfig configures the TCP transport.
type TCPConfig struct {
	// Listener is an optional pre-existing listener to use.
	// If nil, a new listener will be created using ListenAddr.
	Listener net.Listener

	// ListenAddr is the address to listen on (e.g., ":2775").
	// Ignored if Listener is provided.
	ListenAddr string

	// Handler is called for each decoded PDU. Required.
	Handler Handler

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// TCP accepts SMPP connections and runs the framed read loop on each one:
// accumulate bytes, pdu.Check until a complete record is buffered, then
// pdu.Parse and hand the result to the handler. A record that fails to
// parse is answered with a generic_nack carrying whatever sequence number
// was recovered, after which the connection is dropped — the stream offset
// cannot be trusted past a malformed record.
//
// Which operations are legal in the current bind state is the caller's
// concern; the transport only guarantees structural validity.
type TCP struct {
	listener net.Listener
	handler  Handler
	closeCh  chan struct{}
	wg       sync.WaitGroup
	log      logging.LeveledLogger

	// Connection tracking
	connsMu sync.RWMutex
	conns   map[string]*Conn // Key: remote address string

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewTCP creates a new TCP transport with the given configuration.
func NewTCP(config TCPConfig) (*TCP, error) {
	if config.Handler == nil {
		return nil, ErrNoHandler
	}

	t := &TCP{
		listener: config.Listener,
		handler:  config.Handler,
		closeCh:  make(chan struct{}),
		conns:    make(map[string]*Conn),
	}

	if config.LoggerFactory != nil {
		t.log = config.LoggerFactory.NewLogger("transport-tcp")
	}

	if t.listener == nil {
		addr := config.ListenAddr
		if addr == "" {
			addr = ":0" // Use ephemeral port
		}

		listener, err := net.Listen("tcp", addr)
		if err != nil {
			return nil, err
		}
		t.listener = listener
	}

	return t, nil
}

// Start begins accepting connections and decoding PDUs.
func (t *TCP) Start() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrClosed
	}
	if t.started {
		t.mu.Unlock()
		return ErrAlreadyStarted
	}
	t.started = true
	t.mu.Unlock()

	if t.log != nil {
		t.log.Infof("starting SMPP transport on %s", t.listener.Addr())
	}

	t.wg.Add(1)
	go t.acceptLoop()

	return nil
}

// Stop closes all connections and the listener.
func (t *TCP) Stop() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return ErrClosed
	}
	t.closed = true
	t.mu.Unlock()

	if t.log != nil {
		t.log.Info("stopping SMPP transport")
	}

	close(t.closeCh)
	t.listener.Close()

	t.connsMu.Lock()
	for _, c := range t.conns {
		c.conn.Close()
	}
	t.conns = make(map[string]*Conn)
	t.connsMu.Unlock()

	t.wg.Wait()
	return nil
}

// Connect dials a peer and starts the read loop on the new connection.
// Used on the client side to reach a server before binding.
func (t *TCP) Connect(addr string) (*Conn, error) {
	t.mu.RLock()
	if t.closed {
		t.mu.RUnlock()
		return nil, ErrClosed
	}
	t.mu.RUnlock()

	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return t.AddConnection(nc), nil
}

// AddConnection adopts an existing connection into the transport and starts
// its read loop. This is also useful for testing with net.Pipe().
func (t *TCP) AddConnection(nc net.Conn) *Conn {
	c := newConn(nc)

	remoteAddr := nc.RemoteAddr().String()
	t.connsMu.Lock()
	t.conns[remoteAddr] = c
	t.connsMu.Unlock()

	t.wg.Add(1)
	go t.handleConn(c)

	return c
}

// LocalAddr returns the local address the transport is listening on.
func (t *TCP) LocalAddr() net.Addr {
	return t.listener.Addr()
}

// acceptLoop accepts incoming connections.
func (t *TCP) acceptLoop() {
	defer t.wg.Done()

	for {
		nc, err := t.listener.Accept()
		if err != nil {
			select {
			case <-t.closeCh:
				return
			default:
				continue
			}
		}

		t.wg.Add(1)
		go t.handleConn(newConnTracked(t, nc))
	}
}

func newConnTracked(t *TCP, nc net.Conn) *Conn {
	c := newConn(nc)
	t.connsMu.Lock()
	t.conns[nc.RemoteAddr().String()] = c
	t.connsMu.Unlock()
	return c
}

// handleConn runs the framed read loop for a single connection.
func (t *TCP) handleConn(c *Conn) {
	defer t.wg.Done()

	remoteAddr := c.conn.RemoteAddr().String()
	defer func() {
		c.conn.Close()
		t.connsMu.Lock()
		delete(t.conns, remoteAddr)
		t.connsMu.Unlock()
	}()

	for {
		select {
		case <-t.closeCh:
			return
		default:
		}

		// On a live connection Check blocks until a full record is
		// buffered. Incomplete means the stream ended mid-PDU.
		outcome, err := pdu.Check(c.r)
		if err != nil {
			return
		}
		if outcome == pdu.Incomplete {
			return
		}

		p, err := pdu.Parse(c.r)
		if err != nil {
			var pe *pdu.ParseError
			if errors.As(err, &pe) {
				if t.log != nil {
					t.log.Warnf("dropping %s after malformed PDU: %v", remoteAddr, pe)
				}
				// Best-effort nack; the offset past a malformed record
				// cannot be trusted, so the connection goes down either way.
				_ = c.Send(pdu.NackFor(pe))
			}
			return
		}

		t.handler(c, p)
	}
}
