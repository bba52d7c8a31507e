package wire

import (
	"github.com/protocolhq/quill/internal/protocol"
	"github.com/protocolhq/quill/quicvarint"
)

// A MaxDataFrame carries flow control information for the connection
type MaxDataFrame struct {
	MaximumData protocol.ByteCount
}

func (f *MaxDataFrame) Length(_ protocol.Version) protocol.ByteCount {
	return protocol.ByteCount(1 + quicvarint.Len(uint64(f.MaximumData)))
}
