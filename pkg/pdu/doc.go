// Package pdu encodes and decodes SMPP 3.4 Protocol Data Units.
//
// The codec is stateless and reentrant: Parse and Write hold no shared
// state, so concurrent calls on independent sources and sinks never
// interact. A transport layer feeding a PDU stream should call Check on its
// buffered reader first and hand the reader to Parse only once a complete
// record is buffered; Parse itself never waits for more input.
//
// Parse failures are *ParseError values. They carry whatever header context
// was recovered before the failure point, so a server can answer with an
// error response that echoes the peer's sequence number, or with a
// generic_nack when not even that much was readable.
package pdu
