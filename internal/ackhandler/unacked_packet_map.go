package ackhandler

import (
	"fmt"
	"time"

	"github.com/protocolhq/quill/internal/protocol"
	"github.com/protocolhq/quill/internal/utils"
	"github.com/protocolhq/quill/internal/utils/ringbuffer"
	"github.com/protocolhq/quill/internal/wire"
	"github.com/protocolhq/quill/logging"
)

// The UnackedPacketMap tracks sent packets for three purposes:
// 1) Track retransmittable data, including multiple transmissions of frames.
// 2) Track packets and bytes in flight for congestion control.
// 3) Track sent time of packets to provide RTT measurements from acks.
//
// Records are kept in strictly ascending packet number order with no gaps.
// The record for packet number GetLeastUnacked()+i sits at index i, so
// lookups are constant time. Eviction only ever happens at the front, see
// RemoveObsoletePackets.
//
// The map is not safe for concurrent use.
type UnackedPacketMap struct {
	packets      ringbuffer.RingBuffer[TransmissionInfo]
	leastUnacked protocol.PacketNumber

	largestSentPacket          protocol.PacketNumber
	largestSentPackets         [protocol.NumPacketNumberSpaces]protocol.PacketNumber
	largestSentRetransmittable [protocol.NumPacketNumberSpaces]protocol.PacketNumber
	largestSentLargestAcked    protocol.PacketNumber
	largestAcked               protocol.PacketNumber
	largestAckedPackets        [protocol.NumPacketNumberSpaces]protocol.PacketNumber

	bytesInFlight         protocol.ByteCount
	bytesInFlightPerSpace [protocol.NumPacketNumberSpaces]protocol.ByteCount
	packetsInFlight       int

	lastInFlightPacketSentTime   time.Time
	lastInFlightPacketsSentTimes [protocol.NumPacketNumberSpaces]time.Time
	lastCryptoPacketSentTime     time.Time

	// pending run of contiguous acked stream data, see maybeAggregateAckedStreamFrame.
	// StreamID is protocol.InvalidStreamID when no run is pending.
	aggregatedStreamFrame wire.StreamFrame
	aggregatedAckDelay    time.Duration
	aggregatedReceiveTime time.Time

	sessionNotifier                    SessionNotifier
	supportsMultiplePacketNumberSpaces bool

	logger utils.Logger
	tracer *logging.ConnectionTracer
}

// NewUnackedPacketMap creates a new UnackedPacketMap.
func NewUnackedPacketMap(logger utils.Logger, tracer *logging.ConnectionTracer) *UnackedPacketMap {
	m := &UnackedPacketMap{
		leastUnacked:            protocol.InvalidPacketNumber,
		largestSentPacket:       protocol.InvalidPacketNumber,
		largestSentLargestAcked: protocol.InvalidPacketNumber,
		largestAcked:            protocol.InvalidPacketNumber,
		aggregatedStreamFrame:   wire.StreamFrame{StreamID: protocol.InvalidStreamID},
		logger:                  logger,
		tracer:                  tracer,
	}
	for i := range m.largestSentPackets {
		m.largestSentPackets[i] = protocol.InvalidPacketNumber
		m.largestSentRetransmittable[i] = protocol.InvalidPacketNumber
		m.largestAckedPackets[i] = protocol.InvalidPacketNumber
	}
	return m
}

// ReserveInitialCapacity sizes the record store for an expected number of
// packets in flight, avoiding regrowth during slow start.
func (m *UnackedPacketMap) ReserveInitialCapacity(n int) {
	m.packets.Reserve(n)
}

// SetSessionNotifier sets the notifier that is told about the fate of frames.
func (m *UnackedPacketMap) SetSessionNotifier(n SessionNotifier) {
	m.sessionNotifier = n
}

// EnableMultiplePacketNumberSpacesSupport enables per-space tracking of
// Initial, Handshake and Application Data packets. It must be called before
// any packet is sent, and at most once.
func (m *UnackedPacketMap) EnableMultiplePacketNumberSpacesSupport() {
	if m.supportsMultiplePacketNumberSpaces {
		panic("multiple packet number spaces are already enabled")
	}
	if m.largestSentPacket != protocol.InvalidPacketNumber {
		panic("multiple packet number spaces can only be enabled before any packet is sent")
	}
	m.supportsMultiplePacketNumberSpaces = true
}

// SupportsMultiplePacketNumberSpaces says if per-space tracking is enabled.
func (m *UnackedPacketMap) SupportsMultiplePacketNumberSpaces() bool {
	return m.supportsMultiplePacketNumberSpaces
}

// GetPacketNumberSpaceFromEncryptionLevel returns the packet number space
// that packets sent at the given encryption level are tracked in. When
// multiple packet number spaces are disabled, everything is tracked in the
// Application Data space.
func (m *UnackedPacketMap) GetPacketNumberSpaceFromEncryptionLevel(encLevel protocol.EncryptionLevel) protocol.PacketNumberSpace {
	if !m.supportsMultiplePacketNumberSpaces {
		return protocol.PacketNumberSpaceApplicationData
	}
	return protocol.PacketNumberSpaceFromEncryptionLevel(encLevel)
}

// GetPacketNumberSpace returns the packet number space that the given unacked
// packet is tracked in.
func (m *UnackedPacketMap) GetPacketNumberSpace(pn protocol.PacketNumber) protocol.PacketNumberSpace {
	return m.GetPacketNumberSpaceFromEncryptionLevel(m.GetTransmissionInfo(pn).EncryptionLevel)
}

// AddSentPacket adds a packet to the map and marks it as sent at sentTime.
// The packet number has to be strictly greater than that of every packet sent
// before. Retransmittable frames are moved out of p and into the record, p no
// longer owns them afterwards.
// Packets sent with setInFlight count towards congestion control and are
// expected to be declared lost when they don't arrive.
func (m *UnackedPacketMap) AddSentPacket(p *Packet, transmissionType protocol.TransmissionType, sentTime time.Time, setInFlight, measureRTT bool) {
	pn := p.PacketNumber
	if m.largestSentPacket != protocol.InvalidPacketNumber && pn <= m.largestSentPacket {
		panic(fmt.Sprintf("non-sequential packet number use: %d after %d", pn, m.largestSentPacket))
	}
	if m.packets.Empty() {
		m.leastUnacked = pn
	}
	// fill the gap to the new packet number with placeholder records
	for next := m.leastUnacked + protocol.PacketNumber(m.packets.Len()); next < pn; next++ {
		m.packets.PushBack(TransmissionInfo{State: StateNeverSent})
	}

	space := m.GetPacketNumberSpaceFromEncryptionLevel(p.EncryptionLevel)
	info := TransmissionInfo{
		SentTime:         sentTime,
		BytesSent:        p.Length,
		EncryptionLevel:  p.EncryptionLevel,
		TransmissionType: transmissionType,
		State:            StateOutstanding,
	}
	if !measureRTT {
		if setInFlight {
			panic("an in-flight packet has to contribute to RTT measurement")
		}
		info.State = StateNotContributingRTT
	}

	m.largestSentPacket = pn
	m.largestSentPackets[space] = pn
	if p.LargestAcked != protocol.InvalidPacketNumber && p.LargestAcked > m.largestSentLargestAcked {
		m.largestSentLargestAcked = p.LargestAcked
	}

	for _, f := range p.Frames {
		switch f.(type) {
		case *wire.AckFrame:
			// ack frames don't need to be delivered reliably
		case *wire.CryptoFrame:
			info.HasCryptoHandshake = true
			info.RetransmittableFrames = append(info.RetransmittableFrames, f)
		default:
			info.RetransmittableFrames = append(info.RetransmittableFrames, f)
		}
	}
	p.Frames = nil
	if len(info.RetransmittableFrames) > 0 {
		m.largestSentRetransmittable[space] = pn
	}
	if info.HasCryptoHandshake {
		m.lastCryptoPacketSentTime = sentTime
	}

	if setInFlight {
		info.InFlight = true
		m.bytesInFlight += info.BytesSent
		m.bytesInFlightPerSpace[space] += info.BytesSent
		m.packetsInFlight++
		m.lastInFlightPacketSentTime = sentTime
		m.lastInFlightPacketsSentTimes[space] = sentTime
	}
	m.packets.PushBack(info)

	if m.logger.Debug() {
		m.logger.Debugf("Sent packet %d (%d bytes, %s), in flight: %t", pn, p.Length, p.EncryptionLevel, setInFlight)
	}
	if m.tracer != nil {
		if m.tracer.SentPacket != nil {
			m.tracer.SentPacket(p.EncryptionLevel, pn, p.Length, setInFlight)
		}
		if setInFlight && m.tracer.UpdatedMetrics != nil {
			m.tracer.UpdatedMetrics(m.bytesInFlight, m.packetsInFlight)
		}
	}
}

func (m *UnackedPacketMap) index(pn protocol.PacketNumber) int {
	if m.packets.Empty() || pn < m.leastUnacked {
		return -1
	}
	i := int(pn - m.leastUnacked)
	if i >= m.packets.Len() {
		return -1
	}
	return i
}

// IsUnacked says if a record for the given packet number is still tracked.
func (m *UnackedPacketMap) IsUnacked(pn protocol.PacketNumber) bool {
	return m.index(pn) >= 0
}

// GetTransmissionInfo returns the record for the given packet number, which
// must be unacked. The returned pointer stays valid until the next call that
// adds or evicts records.
func (m *UnackedPacketMap) GetTransmissionInfo(pn protocol.PacketNumber) *TransmissionInfo {
	i := m.index(pn)
	if i < 0 {
		panic(fmt.Sprintf("packet %d is not unacked", pn))
	}
	return m.packets.At(i)
}

// Len returns the number of tracked records, including placeholders.
func (m *UnackedPacketMap) Len() int {
	return m.packets.Len()
}

// Empty says if no records are tracked anymore.
func (m *UnackedPacketMap) Empty() bool {
	return m.packets.Empty()
}

// GetLeastUnacked returns the smallest tracked packet number, or
// protocol.InvalidPacketNumber if the map is empty.
func (m *UnackedPacketMap) GetLeastUnacked() protocol.PacketNumber {
	if m.packets.Empty() {
		return protocol.InvalidPacketNumber
	}
	return m.leastUnacked
}

// GetLargestSentPacket returns the largest packet number sent so far, or
// protocol.InvalidPacketNumber if nothing was sent.
func (m *UnackedPacketMap) GetLargestSentPacket() protocol.PacketNumber {
	return m.largestSentPacket
}

// GetLargestSentPacketOfPacketNumberSpace returns the largest packet number
// sent at the given encryption level.
func (m *UnackedPacketMap) GetLargestSentPacketOfPacketNumberSpace(encLevel protocol.EncryptionLevel) protocol.PacketNumber {
	return m.largestSentPackets[m.GetPacketNumberSpaceFromEncryptionLevel(encLevel)]
}

// GetLargestSentRetransmittableOfPacketNumberSpace returns the largest packet
// number of the given space that carried retransmittable frames when sent.
func (m *UnackedPacketMap) GetLargestSentRetransmittableOfPacketNumberSpace(space protocol.PacketNumberSpace) protocol.PacketNumber {
	return m.largestSentRetransmittable[space]
}

// GetLargestAckedPacket returns the largest packet number acked by the peer.
func (m *UnackedPacketMap) GetLargestAckedPacket() protocol.PacketNumber {
	return m.largestAcked
}

// GetLargestAckedOfPacketNumberSpace returns the largest packet number of the
// given space acked by the peer.
func (m *UnackedPacketMap) GetLargestAckedOfPacketNumberSpace(space protocol.PacketNumberSpace) protocol.PacketNumber {
	return m.largestAckedPackets[space]
}

// GetLargestSentLargestAcked returns the highest largest-acked value this
// endpoint has advertised to the peer in an ACK frame it sent.
func (m *UnackedPacketMap) GetLargestSentLargestAcked() protocol.PacketNumber {
	return m.largestSentLargestAcked
}

// BytesInFlight returns the sum of bytes of all packets in flight.
func (m *UnackedPacketMap) BytesInFlight() protocol.ByteCount {
	return m.bytesInFlight
}

// BytesInFlightOfSpace returns the sum of bytes in flight in the given space.
func (m *UnackedPacketMap) BytesInFlightOfSpace(space protocol.PacketNumberSpace) protocol.ByteCount {
	return m.bytesInFlightPerSpace[space]
}

// PacketsInFlight returns the number of packets in flight.
func (m *UnackedPacketMap) PacketsInFlight() int {
	return m.packetsInFlight
}

// GetLastInFlightPacketSentTime returns the time the last in-flight packet
// was sent, or the zero time if no packets are in flight.
func (m *UnackedPacketMap) GetLastInFlightPacketSentTime() time.Time {
	return m.lastInFlightPacketSentTime
}

// GetLastInFlightPacketSentTimeOfSpace returns the time the last in-flight
// packet of the given space was sent, or the zero time if that space has no
// bytes in flight.
func (m *UnackedPacketMap) GetLastInFlightPacketSentTimeOfSpace(space protocol.PacketNumberSpace) time.Time {
	return m.lastInFlightPacketsSentTimes[space]
}

// GetLastCryptoPacketSentTime returns the time the last packet carrying
// crypto handshake data was sent.
func (m *UnackedPacketMap) GetLastCryptoPacketSentTime() time.Time {
	return m.lastCryptoPacketSentTime
}

// HasInFlightPackets says if any tracked packet is in flight.
func (m *UnackedPacketMap) HasInFlightPackets() bool {
	return m.packetsInFlight > 0
}

// HasMultipleInFlightPackets says if more than one packet is in flight.
func (m *UnackedPacketMap) HasMultipleInFlightPackets() bool {
	return m.packetsInFlight > 1
}

// HasPendingCryptoPackets says if any tracked packet still carries
// unacknowledged crypto handshake data.
func (m *UnackedPacketMap) HasPendingCryptoPackets() bool {
	for i := 0; i < m.packets.Len(); i++ {
		info := m.packets.At(i)
		if info.HasCryptoHandshake && info.HasRetransmittableFrames() {
			return true
		}
	}
	return false
}

// HasUnackedStreamData says if any non-crypto stream data is waiting to be acked.
func (m *UnackedPacketMap) HasUnackedStreamData() bool {
	return m.sessionNotifier != nil && m.sessionNotifier.HasUnackedStreamData()
}

// HasUnackedRetransmittableFrames says if any tracked packet still has
// retransmittable frames attached.
func (m *UnackedPacketMap) HasUnackedRetransmittableFrames() bool {
	for i := 0; i < m.packets.Len(); i++ {
		if m.packets.At(i).HasRetransmittableFrames() {
			return true
		}
	}
	return false
}

// HasRetransmittableFrames says if the given unacked packet still has
// retransmittable frames attached. It returns false if all frames of the
// packet were acked, neutered, or moved to a retransmission.
func (m *UnackedPacketMap) HasRetransmittableFrames(pn protocol.PacketNumber) bool {
	return m.GetTransmissionInfo(pn).HasRetransmittableFrames()
}

// GetFirstInFlightTransmissionInfo returns the record of the first packet in
// flight, or nil if no packets are in flight.
func (m *UnackedPacketMap) GetFirstInFlightTransmissionInfo() *TransmissionInfo {
	for i := 0; i < m.packets.Len(); i++ {
		if info := m.packets.At(i); info.InFlight {
			return info
		}
	}
	return nil
}

// GetFirstInFlightTransmissionInfoOfSpace returns the record of the first
// packet in flight in the given space, or nil if that space has none.
func (m *UnackedPacketMap) GetFirstInFlightTransmissionInfoOfSpace(space protocol.PacketNumberSpace) *TransmissionInfo {
	for i := 0; i < m.packets.Len(); i++ {
		info := m.packets.At(i)
		if info.InFlight && m.GetPacketNumberSpaceFromEncryptionLevel(info.EncryptionLevel) == space {
			return info
		}
	}
	return nil
}

// RemoveFromInFlight marks a record as no longer counting towards congestion
// control. Calling it on a record that is already out of flight is a no-op.
func (m *UnackedPacketMap) RemoveFromInFlight(info *TransmissionInfo) {
	if !info.InFlight {
		return
	}
	if m.bytesInFlight < info.BytesSent {
		panic("bytes in flight underflow")
	}
	if m.packetsInFlight == 0 {
		panic("packets in flight underflow")
	}
	space := m.GetPacketNumberSpaceFromEncryptionLevel(info.EncryptionLevel)
	if m.bytesInFlightPerSpace[space] < info.BytesSent {
		panic("bytes in flight underflow in packet number space")
	}
	info.InFlight = false
	m.bytesInFlight -= info.BytesSent
	m.bytesInFlightPerSpace[space] -= info.BytesSent
	m.packetsInFlight--
	if m.bytesInFlightPerSpace[space] == 0 {
		m.lastInFlightPacketsSentTimes[space] = time.Time{}
	}
	if m.packetsInFlight == 0 {
		m.lastInFlightPacketSentTime = time.Time{}
	}
	if m.tracer != nil && m.tracer.UpdatedMetrics != nil {
		m.tracer.UpdatedMetrics(m.bytesInFlight, m.packetsInFlight)
	}
}

// RemovePacketFromInFlight marks the given unacked packet as no longer in flight.
func (m *UnackedPacketMap) RemovePacketFromInFlight(pn protocol.PacketNumber) {
	m.RemoveFromInFlight(m.GetTransmissionInfo(pn))
}

// RemoveRetransmittability detaches all retransmittable frames from a record.
// The frames are neither acked nor lost, nobody is notified.
func (m *UnackedPacketMap) RemoveRetransmittability(info *TransmissionInfo) {
	info.RetransmittableFrames = nil
	info.HasCryptoHandshake = false
}

// RemovePacketRetransmittability detaches all retransmittable frames from the
// record of the given unacked packet.
func (m *UnackedPacketMap) RemovePacketRetransmittability(pn protocol.PacketNumber) {
	m.RemoveRetransmittability(m.GetTransmissionInfo(pn))
}

// NotifyFramesAcked reports every retransmittable frame attached to the
// record as acked to the session notifier. Stream frames are run through the
// aggregator, control frames flush any pending run and are reported right
// away. It returns true if any frame covered data that had not been acked
// through another transmission before.
func (m *UnackedPacketMap) NotifyFramesAcked(info *TransmissionInfo, ackDelay time.Duration, receiveTimestamp time.Time) bool {
	if m.sessionNotifier == nil {
		return false
	}
	var newDataAcked bool
	for _, f := range info.RetransmittableFrames {
		if sf, ok := f.(*wire.StreamFrame); ok {
			if m.maybeAggregateAckedStreamFrame(sf, ackDelay, receiveTimestamp) {
				newDataAcked = true
			}
			continue
		}
		m.notifyAggregatedStreamFrameAcked(ackDelay)
		if m.sessionNotifier.OnFrameAcked(f, ackDelay, receiveTimestamp) {
			newDataAcked = true
		}
	}
	return newDataAcked
}

// NotifyFramesLost reports every retransmittable frame attached to the record
// as lost to the session notifier.
func (m *UnackedPacketMap) NotifyFramesLost(info *TransmissionInfo, transmissionType protocol.TransmissionType) {
	if m.sessionNotifier == nil {
		return
	}
	if len(info.RetransmittableFrames) > 0 && m.logger.Debug() {
		m.logger.Debugf("Lost %d frames (%s)", len(info.RetransmittableFrames), transmissionType)
	}
	for _, f := range info.RetransmittableFrames {
		m.sessionNotifier.OnFrameLost(f)
	}
}

// RetransmitFrames asks the session to retransmit the data covered by the
// frames attached to the record, and detaches them. The transmission created
// for the retransmitted data owns the frames from then on, the old record
// must not ack or lose them a second time.
func (m *UnackedPacketMap) RetransmitFrames(info *TransmissionInfo, transmissionType protocol.TransmissionType) {
	if m.sessionNotifier == nil {
		return
	}
	for _, f := range info.RetransmittableFrames {
		m.sessionNotifier.RetransmitFrame(f, transmissionType)
	}
	m.RemoveRetransmittability(info)
}

// maybeAggregateAckedStreamFrame coalesces contiguous acked stream data into
// a single pending run. The run is extended as long as frames for the same
// stream arrive back to back, and flushed when the run is broken or finished.
// It returns true if the frame covered new data.
func (m *UnackedPacketMap) maybeAggregateAckedStreamFrame(f *wire.StreamFrame, ackDelay time.Duration, receiveTimestamp time.Time) bool {
	agg := &m.aggregatedStreamFrame
	if agg.StreamID == f.StreamID && f.Offset == agg.Offset+agg.DataLen {
		agg.DataLen += f.DataLen
		agg.Fin = f.Fin
		m.aggregatedAckDelay = utils.Max(m.aggregatedAckDelay, ackDelay)
		m.aggregatedReceiveTime = utils.MaxTime(m.aggregatedReceiveTime, receiveTimestamp)
		if f.Fin {
			// nothing can extend the run past a FIN
			return m.notifyAggregatedStreamFrameAcked(ackDelay)
		}
		return true
	}
	m.notifyAggregatedStreamFrameAcked(ackDelay)
	if f.Fin {
		return m.sessionNotifier.OnFrameAcked(f, ackDelay, receiveTimestamp)
	}
	*agg = wire.StreamFrame{StreamID: f.StreamID, Offset: f.Offset, DataLen: f.DataLen}
	m.aggregatedAckDelay = ackDelay
	m.aggregatedReceiveTime = receiveTimestamp
	return true
}

// NotifyAggregatedStreamFrameAcked flushes the pending run of acked stream
// data, if any, reporting it to the session notifier in a single call. It
// returns true if the run covered new data.
func (m *UnackedPacketMap) NotifyAggregatedStreamFrameAcked(ackDelay time.Duration) bool {
	return m.notifyAggregatedStreamFrameAcked(ackDelay)
}

func (m *UnackedPacketMap) notifyAggregatedStreamFrameAcked(ackDelay time.Duration) bool {
	if m.aggregatedStreamFrame.StreamID == protocol.InvalidStreamID || m.sessionNotifier == nil {
		return false
	}
	f := m.aggregatedStreamFrame
	newDataAcked := m.sessionNotifier.OnFrameAcked(&f, utils.Max(m.aggregatedAckDelay, ackDelay), m.aggregatedReceiveTime)
	m.aggregatedStreamFrame = wire.StreamFrame{StreamID: protocol.InvalidStreamID}
	m.aggregatedAckDelay = 0
	m.aggregatedReceiveTime = time.Time{}
	return newDataAcked
}

// IncreaseLargestAcked raises the largest packet number acked by the peer.
// Values not exceeding the current largest acked are ignored, the peer may
// deliver acks out of order. Raising the largest acked makes records below it
// eligible for eviction, so the obsolescence sweep runs afterwards.
func (m *UnackedPacketMap) IncreaseLargestAcked(largestAcked protocol.PacketNumber) {
	if m.largestAcked != protocol.InvalidPacketNumber && largestAcked <= m.largestAcked {
		return
	}
	m.largestAcked = largestAcked
	m.RemoveObsoletePackets()
}

// MaybeUpdateLargestAckedOfPacketNumberSpace raises the largest acked packet
// number of the given space. Values not exceeding the current value are ignored.
func (m *UnackedPacketMap) MaybeUpdateLargestAckedOfPacketNumberSpace(space protocol.PacketNumberSpace, pn protocol.PacketNumber) {
	if pn > m.largestAckedPackets[space] {
		m.largestAckedPackets[space] = pn
	}
}

// usefulForMeasuringRTT says if the packet could still produce an RTT sample,
// i.e. it may yet become the peer's largest observed packet.
func (m *UnackedPacketMap) usefulForMeasuringRTT(pn protocol.PacketNumber, info *TransmissionInfo) bool {
	return info.State.isAckable() &&
		(m.largestAcked == protocol.InvalidPacketNumber || pn > m.largestAcked)
}

// usefulForCongestionControl says if the packet still counts towards the
// congestion window.
func (m *UnackedPacketMap) usefulForCongestionControl(info *TransmissionInfo) bool {
	return info.InFlight
}

// usefulForRetransmittableData says if the packet still owns data that needs
// delivery through some transmission.
func (m *UnackedPacketMap) usefulForRetransmittableData(info *TransmissionInfo) bool {
	return info.HasRetransmittableFrames()
}

func (m *UnackedPacketMap) isPacketUseless(pn protocol.PacketNumber, info *TransmissionInfo) bool {
	return !m.usefulForMeasuringRTT(pn, info) &&
		!m.usefulForCongestionControl(info) &&
		!m.usefulForRetransmittableData(info)
}

// RemoveObsoletePackets evicts front records that serve no purpose anymore,
// neither for RTT measurement, congestion control, nor retransmittable data.
// Eviction stops at the first record that is still useful, so the store stays
// contiguous.
func (m *UnackedPacketMap) RemoveObsoletePackets() {
	var removed int
	for !m.packets.Empty() {
		if !m.isPacketUseless(m.leastUnacked, m.packets.Front()) {
			break
		}
		m.packets.PopFront()
		m.leastUnacked++
		removed++
	}
	if removed > 0 {
		if m.logger.Debug() {
			m.logger.Debugf("Removed %d obsolete packets, least unacked: %d", removed, m.leastUnacked)
		}
		if m.tracer != nil && m.tracer.RemovedObsoletePackets != nil {
			m.tracer.RemovedObsoletePackets(removed)
		}
	}
}

// NeuterUnencryptedPackets releases the retransmittable frames of all Initial
// packets, so they can never be retransmitted. The frames are neither acked
// nor lost. It returns the packet numbers of all neutered packets.
// Used once the handshake keys are available, at which point unencrypted data
// must not be sent again.
func (m *UnackedPacketMap) NeuterUnencryptedPackets() []protocol.PacketNumber {
	return m.neuterPackets(func(encLevel protocol.EncryptionLevel) bool {
		return encLevel == protocol.EncryptionInitial
	})
}

// NeuterHandshakePackets releases the retransmittable frames of all Initial
// and Handshake packets. It returns the packet numbers of all neutered
// packets. Used when the handshake is confirmed.
func (m *UnackedPacketMap) NeuterHandshakePackets() []protocol.PacketNumber {
	return m.neuterPackets(func(encLevel protocol.EncryptionLevel) bool {
		return encLevel == protocol.EncryptionInitial || encLevel == protocol.EncryptionHandshake
	})
}

func (m *UnackedPacketMap) neuterPackets(levelMatches func(protocol.EncryptionLevel) bool) []protocol.PacketNumber {
	var neutered []protocol.PacketNumber
	for i := 0; i < m.packets.Len(); i++ {
		info := m.packets.At(i)
		if !info.HasRetransmittableFrames() || !levelMatches(info.EncryptionLevel) {
			continue
		}
		neutered = append(neutered, m.leastUnacked+protocol.PacketNumber(i))
		m.RemoveRetransmittability(info)
		info.State = StateNeutered
	}
	if len(neutered) > 0 {
		if m.logger.Debug() {
			m.logger.Debugf("Neutered %d packets: %v", len(neutered), neutered)
		}
		if m.tracer != nil && m.tracer.NeuteredPackets != nil {
			m.tracer.NeuteredPackets(neutered)
		}
	}
	return neutered
}

// Iterate calls cb for every tracked record in ascending packet number order,
// including placeholders for packet numbers that were never sent. It stops
// early if cb returns false. cb must not add or evict records.
func (m *UnackedPacketMap) Iterate(cb func(protocol.PacketNumber, *TransmissionInfo) bool) {
	for i := 0; i < m.packets.Len(); i++ {
		if !cb(m.leastUnacked+protocol.PacketNumber(i), m.packets.At(i)) {
			return
		}
	}
}
