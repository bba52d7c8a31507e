package logging

import "github.com/protocolhq/quill/internal/protocol"

type (
	// A ByteCount is used to count bytes.
	ByteCount = protocol.ByteCount
	// A PacketNumber is the packet number of a packet.
	PacketNumber = protocol.PacketNumber
	// An EncryptionLevel is the encryption level of a packet.
	EncryptionLevel = protocol.EncryptionLevel
	// A PacketNumberSpace groups packets by encryption level.
	PacketNumberSpace = protocol.PacketNumberSpace
	// A StreamID identifies a stream.
	StreamID = protocol.StreamID
	// The Perspective is the role of a QUIC endpoint (client or server).
	Perspective = protocol.Perspective
)

const (
	// PerspectiveServer is used for a QUIC server
	PerspectiveServer = protocol.PerspectiveServer
	// PerspectiveClient is used for a QUIC client
	PerspectiveClient = protocol.PerspectiveClient
)
