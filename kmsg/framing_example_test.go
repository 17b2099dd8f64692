package kmsg_test

import (
	"net"
	"testing"
	"time"

	"github.com/ivanyu/kafka-protocol/klog"
	"github.com/ivanyu/kafka-protocol/kmsg"
	"github.com/stretchr/testify/require"
)

// TestFramingOverPipe substitutes for a live-broker integration test:
// it drives the same encode/frame/decode path an ApiVersions exchange
// with a real broker would, but over an in-process net.Pipe, with a
// klog.Logger observing each step instead of a TCP dial.
func TestFramingOverPipe(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	var lines []string
	logger := klog.BasicFunc{
		MaxLevel: klog.LogLevelDebug,
		Fn: func(level klog.LogLevel, msg string, kv ...any) {
			lines = append(lines, klog.Sprint(msg, kv...))
		},
	}

	clientID := "test_client"
	req := &kmsg.ApiVersionsRequestV0{}

	done := make(chan error, 1)
	go func() {
		dst := kmsg.AppendRequestFor(nil, 1, &clientID, req, kmsg.WithLogger(logger))
		_, err := clientConn.Write(dst)
		done <- err
	}()

	frame, err := kmsg.ReadFrame(serverConn, kmsg.WithLogger(logger))
	require.NoError(t, err)
	require.NoError(t, <-done)

	var hdr kmsg.RequestHeaderV1
	require.NoError(t, hdr.ReadFrom(frame[:10+len(clientID)]))
	require.Equal(t, kmsg.APIKeyApiVersions, hdr.APIKey)
	require.Equal(t, int32(1), hdr.CorrelationID)

	respHdr := &kmsg.ResponseHeaderV0{CorrelationID: hdr.CorrelationID}
	resp := &kmsg.ApiVersionsResponseV0{ErrorCode: 0}
	respDst := kmsg.AppendRequest(nil, respHdr, responseAsRequest{resp}, kmsg.WithLogger(logger))

	go func() {
		_, _ = serverConn.Write(respDst)
	}()

	clientConn.SetReadDeadline(time.Now().Add(time.Second))
	respFrame, err := kmsg.ReadFrame(clientConn, kmsg.WithLogger(logger))
	require.NoError(t, err)

	correlationID, _, rest, err := kmsg.ReadResponseHeader(respFrame, 0, kmsg.WithLogger(logger))
	require.NoError(t, err)
	require.Equal(t, int32(1), correlationID)

	var got kmsg.ApiVersionsResponseV0
	require.NoError(t, got.ReadFrom(rest))
	require.Equal(t, int16(0), got.ErrorCode)

	require.NotEmpty(t, lines)
}

// responseAsRequest lets AppendRequest's Request-shaped signature frame
// a Response body too, since framing itself doesn't care which
// direction a message travels -- only that it can AppendTo/ReadFrom.
type responseAsRequest struct {
	r interface {
		AppendTo([]byte) []byte
		ReadFrom([]byte) error
	}
}

func (r responseAsRequest) AppendTo(dst []byte) []byte { return r.r.AppendTo(dst) }
func (r responseAsRequest) ReadFrom(src []byte) error  { return r.r.ReadFrom(src) }
func (r responseAsRequest) Key() int16                 { return kmsg.APIKeyApiVersions }
func (r responseAsRequest) Version() int16             { return 0 }
func (r responseAsRequest) IsFlexible() bool           { return false }
