package ackhandler

import (
	"time"

	"github.com/protocolhq/quill/internal/protocol"
	"github.com/protocolhq/quill/internal/wire"
)

// A SessionNotifier is told about the fate of the frames the map owns.
// The map calls into it; the notifier must not call back into the map from
// within a callback.
type SessionNotifier interface {
	// OnFrameAcked is called when a frame is acked.
	// It returns true if the frame covered any data that had not been acked
	// through another transmission before.
	OnFrameAcked(f wire.Frame, ackDelay time.Duration, receiveTimestamp time.Time) bool
	// OnFrameLost is called when a frame is considered lost.
	OnFrameLost(f wire.Frame)
	// RetransmitFrame asks the session to retransmit the data covered by f.
	RetransmitFrame(f wire.Frame, transmissionType protocol.TransmissionType)
	// HasUnackedStreamData says if any non-crypto stream data is waiting to be acked.
	HasUnackedStreamData() bool
}
