package logging

// A ConnectionTracer reports events on the sent-packet bookkeeping of one
// connection. All fields are optional.
type ConnectionTracer struct {
	SentPacket             func(encLevel EncryptionLevel, pn PacketNumber, size ByteCount, inFlight bool)
	UpdatedMetrics         func(bytesInFlight ByteCount, packetsInFlight int)
	NeuteredPackets        func(pns []PacketNumber)
	RemovedObsoletePackets func(count int)
}

// NewMultiplexedConnectionTracer creates a new connection tracer that multiplexes
// events to multiple tracers.
func NewMultiplexedConnectionTracer(tracers ...*ConnectionTracer) *ConnectionTracer {
	if len(tracers) == 0 {
		return nil
	}
	if len(tracers) == 1 {
		return tracers[0]
	}
	return &ConnectionTracer{
		SentPacket: func(encLevel EncryptionLevel, pn PacketNumber, size ByteCount, inFlight bool) {
			for _, t := range tracers {
				if t.SentPacket != nil {
					t.SentPacket(encLevel, pn, size, inFlight)
				}
			}
		},
		UpdatedMetrics: func(bytesInFlight ByteCount, packetsInFlight int) {
			for _, t := range tracers {
				if t.UpdatedMetrics != nil {
					t.UpdatedMetrics(bytesInFlight, packetsInFlight)
				}
			}
		},
		NeuteredPackets: func(pns []PacketNumber) {
			for _, t := range tracers {
				if t.NeuteredPackets != nil {
					t.NeuteredPackets(pns)
				}
			}
		},
		RemovedObsoletePackets: func(count int) {
			for _, t := range tracers {
				if t.RemovedObsoletePackets != nil {
					t.RemovedObsoletePackets(count)
				}
			}
		},
	}
}
