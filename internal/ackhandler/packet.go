package ackhandler

import (
	"github.com/protocolhq/quill/internal/protocol"
	"github.com/protocolhq/quill/internal/wire"
)

// A Packet is handed over by the packetizer once it was sent.
// AddSentPacket moves the frames out of the Packet and into the record it
// creates; afterwards the Packet no longer owns any frames.
type Packet struct {
	PacketNumber    protocol.PacketNumber
	Frames          []wire.Frame
	Length          protocol.ByteCount
	EncryptionLevel protocol.EncryptionLevel
	// LargestAcked is the largest packet number acknowledged by the ACK frame
	// this packet carried, or protocol.InvalidPacketNumber if it didn't carry one.
	LargestAcked protocol.PacketNumber
}
