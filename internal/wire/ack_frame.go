package wire

import (
	"time"

	"github.com/protocolhq/quill/internal/protocol"
	"github.com/protocolhq/quill/quicvarint"
)

// An AckFrame is an ACK frame
type AckFrame struct {
	AckRanges []AckRange // has to be ordered. The largest ACK range goes first, the smallest ACK range goes last.
	DelayTime time.Duration
}

// LargestAcked is the largest acked packet number
func (f *AckFrame) LargestAcked() protocol.PacketNumber {
	return f.AckRanges[0].Largest
}

// LowestAcked is the lowest acked packet number
func (f *AckFrame) LowestAcked() protocol.PacketNumber {
	return f.AckRanges[len(f.AckRanges)-1].Smallest
}

// Length of a written frame
func (f *AckFrame) Length(_ protocol.Version) protocol.ByteCount {
	largestAcked := f.AckRanges[0].Largest
	numRanges := len(f.AckRanges) - 1
	length := 1 + quicvarint.Len(uint64(largestAcked)) + quicvarint.Len(encodeAckDelay(f.DelayTime))
	length += quicvarint.Len(uint64(numRanges))
	length += quicvarint.Len(uint64(f.AckRanges[0].Len() - 1))
	lowest := f.AckRanges[0].Smallest
	for _, r := range f.AckRanges[1:] {
		length += quicvarint.Len(uint64(lowest - r.Largest - 2))
		length += quicvarint.Len(uint64(r.Len() - 1))
		lowest = r.Smallest
	}
	return protocol.ByteCount(length)
}

func encodeAckDelay(delay time.Duration) uint64 {
	return uint64(delay.Nanoseconds() / (1000 * (1 << protocol.AckDelayExponent)))
}
