package wire

import "github.com/protocolhq/quill/internal/protocol"

// A PingFrame is a PING frame
type PingFrame struct{}

func (f *PingFrame) Length(_ protocol.Version) protocol.ByteCount {
	return 1
}
