// Package kmetrics is an optional Prometheus instrumentation layer for
// kmsg's encode/decode and frame I/O paths. It plays the same role
// franz-go's plugin/kprom fills for that project's client: a
// Registerer is handed in once, metrics get registered against it, and
// the resulting Hooks value is passed to kmsg.WithHooks to attach it to
// kmsg.AppendRequest, kmsg.AppendRequestFor, kmsg.ReadFrame, and
// kmsg.ReadResponseHeader. A nil *Hooks is always safe to call methods
// on -- every method is a no-op when h is nil, so instrumentation stays
// fully optional and kmsg.WithHooks(nil) is equivalent to omitting it.
package kmetrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Hooks observes bytes moved and errors encountered by the codec. Build
// one with NewHooks and register it against a prometheus.Registerer of
// your choosing (the default registry, or a scoped one per franz-go's
// kprom convention).
type Hooks struct {
	bytesEncoded  prometheus.Counter
	bytesDecoded  prometheus.Counter
	decodeErrors  *prometheus.CounterVec
	requestsTotal *prometheus.CounterVec
}

// NewHooks creates the metric collectors and registers them against
// reg. namespace/subsystem follow the usual prometheus/client_golang
// convention, e.g. namespace="kafka_protocol", subsystem="codec".
func NewHooks(reg prometheus.Registerer, namespace, subsystem string) *Hooks {
	h := &Hooks{
		bytesEncoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_encoded_total",
			Help:      "Total request frame bytes (excluding the length prefix) written by kmsg.AppendRequest.",
		}),
		bytesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bytes_decoded_total",
			Help:      "Total frame bytes (excluding the length prefix) read by kmsg.ReadFrame.",
		}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "decode_errors_total",
			Help:      "Decode failures, labeled by kmsg.DecodeError.Kind.",
		}, []string{"kind"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests_total",
			Help:      "Requests framed for the wire, labeled by API key name.",
		}, []string{"api"}),
	}
	reg.MustRegister(h.bytesEncoded, h.bytesDecoded, h.decodeErrors, h.requestsTotal)
	return h
}

// ObserveEncoded records n bytes written for a request named api.
func (h *Hooks) ObserveEncoded(api string, n int) {
	if h == nil {
		return
	}
	h.bytesEncoded.Add(float64(n))
	h.requestsTotal.WithLabelValues(api).Inc()
}

// ObserveDecoded records n bytes read for one frame.
func (h *Hooks) ObserveDecoded(n int) {
	if h == nil {
		return
	}
	h.bytesDecoded.Add(float64(n))
}

// ObserveDecodeError records a decode failure of the given kind (the
// string form of a kmsg.DecodeError.Kind).
func (h *Hooks) ObserveDecodeError(kind string) {
	if h == nil {
		return
	}
	h.decodeErrors.WithLabelValues(kind).Inc()
}
