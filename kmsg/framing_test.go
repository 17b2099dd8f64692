package kmsg

import (
	"bytes"
	"testing"

	"github.com/ivanyu/kafka-protocol/internal/kbin"
	"github.com/stretchr/testify/require"
)

func TestApiVersionsV0RoundTrip(t *testing.T) {
	req := &ApiVersionsRequestV0{}
	dst := req.AppendTo(nil)
	require.Len(t, dst, 0)

	var got ApiVersionsRequestV0
	require.NoError(t, got.ReadFrom(dst))

	respHdr := &ResponseHeaderV0{CorrelationID: 7}
	hdst := respHdr.AppendTo(nil)
	require.Equal(t, []byte{0, 0, 0, 7}, hdst)
}

func TestFrameLengthPatching(t *testing.T) {
	hdr := &RequestHeaderV0{APIKey: APIKeyApiVersions, APIVersion: 0, CorrelationID: 1}
	req := &ApiVersionsRequestV0{}
	dst := AppendRequest(nil, hdr, req)

	require.Len(t, dst, 4+8)
	require.Equal(t, []byte{0, 0, 0, 8}, dst[:4])
}

func TestAppendRequestForUsesRegistryHeaderVersion(t *testing.T) {
	clientID := "test_client"
	req := &MetadataRequestV9{
		Topics:                           nil,
		AllowAutoTopicCreation:           true,
		IncludeTopicAuthorizedOperations: false,
	}
	require.Equal(t, int16(2), RequestHeaderVersion(req.Key(), req.Version()))

	dst := AppendRequestFor(nil, 5, &clientID, req)
	require.True(t, len(dst) > 4)

	frame, err := ReadFrame(bytes.NewReader(dst))
	require.NoError(t, err)

	b := kbin.NewReader(frame)
	var hdr RequestHeaderV2
	hdr.readFrom(b)
	require.NoError(t, b.Err())
	require.Equal(t, req.Key(), hdr.APIKey)
	require.Equal(t, req.Version(), hdr.APIVersion)
	require.Equal(t, int32(5), hdr.CorrelationID)
	require.Equal(t, clientID, *hdr.ClientID)
}

func TestReadFrameRoundTrip(t *testing.T) {
	hdr := &RequestHeaderV1{APIKey: APIKeySaslHandshake, APIVersion: 0, CorrelationID: 3, ClientID: nil}
	req := &SaslHandshakeRequestV0{Mechanism: "PLAIN"}
	dst := AppendRequest(nil, hdr, req)

	frame, err := ReadFrame(bytes.NewReader(dst))
	require.NoError(t, err)
	require.Equal(t, dst[4:], frame)
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var lenBuf [4]byte
	lenBuf[0] = 0x7f
	_, err := ReadFrame(bytes.NewReader(lenBuf[:]))
	require.Error(t, err)
}

func TestResponseHeaderVersionPinsApiVersionsToV0(t *testing.T) {
	require.Equal(t, int16(0), ResponseHeaderVersion(APIKeyApiVersions, 3))
	require.Equal(t, int16(1), ResponseHeaderVersion(APIKeyMetadata, 9))
}

func TestRequestHeaderVersionSaslHandshakeNeverFlexible(t *testing.T) {
	require.Equal(t, int16(1), RequestHeaderVersion(APIKeySaslHandshake, 0))
	require.Equal(t, int16(1), RequestHeaderVersion(APIKeySaslHandshake, 1))
}
