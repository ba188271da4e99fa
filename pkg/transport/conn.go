package transport

import (
	"bufio"
	"net"
	"sync"

	"github.com/backkem/smpp/pkg/pdu"
)

// Conn is one SMPP connection. The transport's read loop owns the inbound
// side; Send may be called from any goroutine and is serialized here, since
// interleaving two half-written PDUs would corrupt the stream.
type Conn struct {
	conn net.Conn
	r    *bufio.Reader

	writeMu sync.Mutex
}

func newConn(nc net.Conn) *Conn {
	return &Conn{
		conn: nc,
		// The reader must be able to buffer a whole PDU for pdu.Check.
		r: pdu.NewReader(nc),
	}
}

// Send serializes p onto the connection.
func (c *Conn) Send(p *pdu.Pdu) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return p.Write(c.conn)
}

// RemoteAddr returns the peer's network address.
func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

// Close tears the connection down. The read loop exits on its own once the
// underlying socket reports the close.
func (c *Conn) Close() error {
	return c.conn.Close()
}
