package wire

import (
	"github.com/protocolhq/quill/internal/protocol"
	"github.com/protocolhq/quill/quicvarint"
)

// A CryptoFrame covers a span of crypto handshake data.
type CryptoFrame struct {
	Offset  protocol.ByteCount
	DataLen protocol.ByteCount
}

func (f *CryptoFrame) Length(_ protocol.Version) protocol.ByteCount {
	return protocol.ByteCount(1+quicvarint.Len(uint64(f.Offset))+quicvarint.Len(uint64(f.DataLen))) + f.DataLen
}
