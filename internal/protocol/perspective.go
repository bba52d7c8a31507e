package protocol

// Perspective determines if we're acting as a server or a client
type Perspective int

const (
	// PerspectiveServer is used for a QUIC server
	PerspectiveServer Perspective = 1
	// PerspectiveClient is used for a QUIC client
	PerspectiveClient Perspective = 2
)

func (p Perspective) String() string {
	switch p {
	case PerspectiveServer:
		return "server"
	case PerspectiveClient:
		return "client"
	}
	return "invalid perspective"
}
