package protocol

// TransmissionType says why a packet was sent: as an original transmission,
// or as a retransmission of earlier data, and if so, for which reason.
type TransmissionType uint8

const (
	// TransmissionTypeNotRetransmission is a first transmission
	TransmissionTypeNotRetransmission TransmissionType = iota
	// TransmissionTypeHandshakeRetransmission is a retransmission of crypto handshake data
	TransmissionTypeHandshakeRetransmission
	// TransmissionTypeLossRetransmission is a retransmission of data declared lost
	TransmissionTypeLossRetransmission
	// TransmissionTypePTORetransmission is a retransmission triggered by a probe timeout
	TransmissionTypePTORetransmission
	// TransmissionTypeProbingRetransmission is a retransmission sent to probe the path
	TransmissionTypeProbingRetransmission
)

func (t TransmissionType) String() string {
	switch t {
	case TransmissionTypeNotRetransmission:
		return "not a retransmission"
	case TransmissionTypeHandshakeRetransmission:
		return "handshake retransmission"
	case TransmissionTypeLossRetransmission:
		return "loss retransmission"
	case TransmissionTypePTORetransmission:
		return "PTO retransmission"
	case TransmissionTypeProbingRetransmission:
		return "probing retransmission"
	}
	return "unknown"
}
