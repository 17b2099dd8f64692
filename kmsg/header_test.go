package kmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RequestHeaderV1 with client id "test_client" and correlation id 0:
// 2 (api key) + 2 (api version) + 4 (correlation id) + 2 (client id
// length) + 11 (client id bytes) = 21 bytes.
func TestRequestHeaderV1Encoding(t *testing.T) {
	clientID := "test_client"
	hdr := &RequestHeaderV1{
		APIKey:        APIKeyApiVersions,
		APIVersion:    0,
		CorrelationID: 0,
		ClientID:      &clientID,
	}
	dst := hdr.AppendTo(nil)
	require.Len(t, dst, 21)

	var got RequestHeaderV1
	require.NoError(t, got.ReadFrom(dst))
	require.Equal(t, hdr.APIKey, got.APIKey)
	require.Equal(t, hdr.APIVersion, got.APIVersion)
	require.Equal(t, hdr.CorrelationID, got.CorrelationID)
	require.Equal(t, *hdr.ClientID, *got.ClientID)
}

func TestRequestHeaderV2RoundTripWithTags(t *testing.T) {
	clientID := "flex-client"
	hdr := &RequestHeaderV2{
		APIKey:        APIKeyMetadata,
		APIVersion:    9,
		CorrelationID: 42,
		ClientID:      &clientID,
	}
	dst := hdr.AppendTo(nil)

	var got RequestHeaderV2
	require.NoError(t, got.ReadFrom(dst))
	require.Equal(t, hdr.APIKey, got.APIKey)
	require.Equal(t, hdr.APIVersion, got.APIVersion)
	require.Equal(t, hdr.CorrelationID, got.CorrelationID)
	require.Equal(t, *hdr.ClientID, *got.ClientID)
	require.Equal(t, 0, got.UnknownTags.Len())
}

func TestResponseHeaderV0RoundTrip(t *testing.T) {
	hdr := &ResponseHeaderV0{CorrelationID: 7}
	dst := hdr.AppendTo(nil)
	require.Len(t, dst, 4)

	var got ResponseHeaderV0
	require.NoError(t, got.ReadFrom(dst))
	require.Equal(t, int32(7), got.CorrelationID)
}
