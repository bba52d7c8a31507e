package wire

import (
	"github.com/protocolhq/quill/internal/protocol"
	"github.com/protocolhq/quill/quicvarint"
)

// A StreamFrame covers a span of data on a stream.
type StreamFrame struct {
	StreamID       protocol.StreamID
	Offset         protocol.ByteCount
	DataLen        protocol.ByteCount
	Fin            bool
	DataLenPresent bool
}

func (f *StreamFrame) Length(_ protocol.Version) protocol.ByteCount {
	length := 1 + quicvarint.Len(uint64(f.StreamID))
	if f.Offset != 0 {
		length += quicvarint.Len(uint64(f.Offset))
	}
	if f.DataLenPresent {
		length += quicvarint.Len(uint64(f.DataLen))
	}
	return protocol.ByteCount(length) + f.DataLen
}

// MaxOffset is the highest stream offset covered by this frame.
func (f *StreamFrame) MaxOffset() protocol.ByteCount {
	return f.Offset + f.DataLen
}
