package ackhandler

import (
	"time"

	"github.com/protocolhq/quill/internal/protocol"
	"github.com/protocolhq/quill/internal/wire"
)

// SentPacketState is the life-cycle state of a tracked transmission.
type SentPacketState uint8

const (
	// StateOutstanding: the transmission was sent and its fate is unknown.
	StateOutstanding SentPacketState = iota
	// StateNeverSent: a placeholder keeping the record sequence contiguous.
	StateNeverSent
	// StateAcked: the peer acknowledged the transmission.
	StateAcked
	// StateLost: loss detection declared the transmission lost.
	// A late ack may still arrive and produce an RTT sample.
	StateLost
	// StateUnackable: the transmission no longer counts for RTT sampling.
	StateUnackable
	// StateNotContributingRTT: the transmission was sent with RTT measurement disabled.
	StateNotContributingRTT
	// StateNeutered: a later encryption level made retransmission of this data moot.
	StateNeutered
)

// isAckable says if a transmission in this state may still be acked as the
// peer's largest observed packet, i.e. produce an RTT sample.
func (s SentPacketState) isAckable() bool {
	return s == StateOutstanding || s == StateLost
}

func (s SentPacketState) String() string {
	switch s {
	case StateOutstanding:
		return "outstanding"
	case StateNeverSent:
		return "never sent"
	case StateAcked:
		return "acked"
	case StateLost:
		return "lost"
	case StateUnackable:
		return "unackable"
	case StateNotContributingRTT:
		return "not contributing to RTT"
	case StateNeutered:
		return "neutered"
	}
	return "unknown"
}

// A TransmissionInfo is the record kept for a single transmission.
// A retransmission gets a record of its own, and takes over ownership of the
// retransmittable frames from the record of the transmission it replaces.
type TransmissionInfo struct {
	SentTime         time.Time
	BytesSent        protocol.ByteCount
	EncryptionLevel  protocol.EncryptionLevel
	TransmissionType protocol.TransmissionType
	State            SentPacketState
	// InFlight says if this transmission counts towards congestion control.
	InFlight bool
	// HasCryptoHandshake says if this transmission carries crypto handshake data.
	HasCryptoHandshake bool
	// RetransmittableFrames is the data that still needs to be delivered
	// through some transmission. Empty once the frames were acked, neutered,
	// or moved to a retransmission.
	RetransmittableFrames []wire.Frame
}

// HasRetransmittableFrames says if any retransmittable frames are still
// attached to this record.
func (info *TransmissionInfo) HasRetransmittableFrames() bool {
	return len(info.RetransmittableFrames) > 0
}
