package protocol

// Version is a QUIC version.
type Version uint32

const (
	// Version1 is RFC 9000
	Version1 Version = 0x1
	// Version2 is RFC 9369
	Version2 Version = 0x6b3343cf
)
