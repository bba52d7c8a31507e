package ackhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/protocolhq/quill/internal/wire"
)

func TestAckElicitingFrames(t *testing.T) {
	testCases := map[wire.Frame]bool{
		&wire.AckFrame{}:     false,
		&wire.PingFrame{}:    true,
		&wire.StreamFrame{}:  true,
		&wire.CryptoFrame{}:  true,
		&wire.MaxDataFrame{}: true,
	}
	for f, expected := range testCases {
		require.Equal(t, expected, IsFrameAckEliciting(f))
		require.Equal(t, expected, HasAckElicitingFrames([]wire.Frame{f}))
	}
	require.False(t, HasAckElicitingFrames(nil))
	require.True(t, HasAckElicitingFrames([]wire.Frame{&wire.AckFrame{}, &wire.PingFrame{}}))
}
