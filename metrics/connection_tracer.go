package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/protocolhq/quill/logging"
)

const metricNamespace = "quill"

var (
	packetsSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_sent_total",
			Help:      "Packets Sent",
		},
		[]string{"perspective", "encryption_level"},
	)
	bytesSent = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "bytes_sent_total",
			Help:      "Bytes Sent",
		},
		[]string{"perspective", "encryption_level"},
	)
	bytesInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "bytes_in_flight",
			Help:      "Bytes currently in flight",
		},
		[]string{"perspective"},
	)
	packetsInFlight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Name:      "packets_in_flight",
			Help:      "Packets currently in flight",
		},
		[]string{"perspective"},
	)
	packetsNeutered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_neutered_total",
			Help:      "Packets whose retransmittable frames were released by a key upgrade",
		},
		[]string{"perspective"},
	)
	packetsObsolete = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricNamespace,
			Name:      "packets_removed_obsolete_total",
			Help:      "Tracked packets evicted because they no longer serve any purpose",
		},
		[]string{"perspective"},
	)
)

// NewConnectionTracer creates a new connection tracer reporting to the
// default Prometheus registerer. It can be combined with other tracers using
// logging.NewMultiplexedConnectionTracer.
func NewConnectionTracer(p logging.Perspective) *logging.ConnectionTracer {
	return NewConnectionTracerWithRegisterer(prometheus.DefaultRegisterer, p)
}

// NewConnectionTracerWithRegisterer creates a new connection tracer using a
// given Prometheus registerer.
func NewConnectionTracerWithRegisterer(registerer prometheus.Registerer, p logging.Perspective) *logging.ConnectionTracer {
	for _, c := range [...]prometheus.Collector{
		packetsSent,
		bytesSent,
		bytesInFlight,
		packetsInFlight,
		packetsNeutered,
		packetsObsolete,
	} {
		if err := registerer.Register(c); err != nil {
			if ok := errors.As(err, &prometheus.AlreadyRegisteredError{}); !ok {
				panic(err)
			}
		}
	}

	perspective := p.String()

	return &logging.ConnectionTracer{
		SentPacket: func(encLevel logging.EncryptionLevel, _ logging.PacketNumber, size logging.ByteCount, _ bool) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, perspective, encLevel.String())
			packetsSent.WithLabelValues(*tags...).Inc()
			bytesSent.WithLabelValues(*tags...).Add(float64(size))
		},
		UpdatedMetrics: func(bytes logging.ByteCount, packets int) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, perspective)
			bytesInFlight.WithLabelValues(*tags...).Set(float64(bytes))
			packetsInFlight.WithLabelValues(*tags...).Set(float64(packets))
		},
		NeuteredPackets: func(pns []logging.PacketNumber) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, perspective)
			packetsNeutered.WithLabelValues(*tags...).Add(float64(len(pns)))
		},
		RemovedObsoletePackets: func(count int) {
			tags := getStringSlice()
			defer putStringSlice(tags)

			*tags = append(*tags, perspective)
			packetsObsolete.WithLabelValues(*tags...).Add(float64(count))
		},
	}
}
