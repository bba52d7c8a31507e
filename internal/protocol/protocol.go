package protocol

// A PacketNumber in QUIC
type PacketNumber int64

// InvalidPacketNumber is a packet number that is never sent.
// In QUIC, 0 is a valid packet number.
const InvalidPacketNumber PacketNumber = -1

// A ByteCount in QUIC
type ByteCount int64

// MaxByteCount is the maximum value of a ByteCount
const MaxByteCount = ByteCount(1<<62 - 1)

// InvalidByteCount is an invalid byte count
const InvalidByteCount ByteCount = -1

// AckDelayExponent is the ack delay exponent used when sending ACKs.
const AckDelayExponent = 3

// A StreamID in QUIC
type StreamID int64

// InvalidStreamID is the null value of a stream ID.
// It is used for the pending acked-stream-data aggregate when no run is pending.
const InvalidStreamID StreamID = -1
