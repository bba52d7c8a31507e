package wire

import (
	"github.com/protocolhq/quill/internal/protocol"
)

// A Frame is the unit of retransmittable data carried by a packet.
// Frames here describe the data they cover; the payload bytes themselves are
// owned by the stream and crypto layers, and serialization happens elsewhere.
type Frame interface {
	// Length is the number of bytes the frame occupies on the wire.
	Length(version protocol.Version) protocol.ByteCount
}
