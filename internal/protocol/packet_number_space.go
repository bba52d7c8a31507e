package protocol

// A PacketNumberSpace is one of the independent packet number sequences a
// connection tracks acknowledgements in, one per group of encryption levels.
type PacketNumberSpace uint8

const (
	// PacketNumberSpaceInitial is the packet number space for Initial packets
	PacketNumberSpaceInitial PacketNumberSpace = iota
	// PacketNumberSpaceHandshake is the packet number space for Handshake packets
	PacketNumberSpaceHandshake
	// PacketNumberSpaceApplicationData is the packet number space for 0-RTT and 1-RTT packets
	PacketNumberSpaceApplicationData
	// NumPacketNumberSpaces is the number of packet number spaces
	NumPacketNumberSpaces
)

// PacketNumberSpaceFromEncryptionLevel returns the packet number space that
// packets sent at the given encryption level belong to.
func PacketNumberSpaceFromEncryptionLevel(encLevel EncryptionLevel) PacketNumberSpace {
	switch encLevel {
	case EncryptionInitial:
		return PacketNumberSpaceInitial
	case EncryptionHandshake:
		return PacketNumberSpaceHandshake
	default:
		return PacketNumberSpaceApplicationData
	}
}

func (s PacketNumberSpace) String() string {
	switch s {
	case PacketNumberSpaceInitial:
		return "Initial"
	case PacketNumberSpaceHandshake:
		return "Handshake"
	case PacketNumberSpaceApplicationData:
		return "Application Data"
	}
	return "unknown"
}
