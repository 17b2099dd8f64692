package kmsg

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/ivanyu/kafka-protocol/internal/kbin"
	"github.com/stretchr/testify/require"
)

// genShortString produces a short, bounded ASCII string, mirroring the
// "[0-9a-zA-Z]{0,10}" bounded-size generator original_source/'s
// proptest strategies used.
func genShortString(r *rand.Rand) string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	n := r.Intn(11)
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}

func genShortBytes(r *rand.Rand) []byte {
	n := r.Intn(11)
	out := make([]byte, n)
	r.Read(out)
	return out
}

type quickHeartbeatRequestV0 HeartbeatRequestV0

func (quickHeartbeatRequestV0) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(quickHeartbeatRequestV0{
		GroupID:      genShortString(r),
		GenerationID: r.Int31(),
		MemberID:     genShortString(r),
	})
}

func TestHeartbeatRequestV0RoundTripProperty(t *testing.T) {
	f := func(want quickHeartbeatRequestV0) bool {
		v := HeartbeatRequestV0(want)
		dst := v.AppendTo(nil)
		var got HeartbeatRequestV0
		if err := got.ReadFrom(dst); err != nil {
			return false
		}
		return got == v
	}
	require.NoError(t, quick.Check(f, nil))
}

type quickFindCoordinatorRequestV0 FindCoordinatorRequestV0

func (quickFindCoordinatorRequestV0) Generate(r *rand.Rand, size int) reflect.Value {
	return reflect.ValueOf(quickFindCoordinatorRequestV0{CoordinatorKey: genShortString(r)})
}

func TestFindCoordinatorRequestV0RoundTripProperty(t *testing.T) {
	f := func(want quickFindCoordinatorRequestV0) bool {
		v := FindCoordinatorRequestV0(want)
		dst := v.AppendTo(nil)
		var got FindCoordinatorRequestV0
		if err := got.ReadFrom(dst); err != nil {
			return false
		}
		return got == v
	}
	require.NoError(t, quick.Check(f, nil))
}

// TestUnknownTagsRoundTripProperty exercises the carried-unknown-tag
// shape the original suite reserved tag 999 for: an UnknownTags value
// built from random short-byte payloads under a handful of distinct
// tags must survive a write/read cycle unchanged.
func TestUnknownTagsRoundTripProperty(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		n := r.Intn(4)
		tags := make([]uint32, 0, n)
		seen := map[uint32]bool{}
		for len(tags) < n {
			tag := uint32(r.Intn(1000))
			if seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
		fields := make([]RawTaggedField, len(tags))
		for i, tag := range tags {
			fields[i] = RawTaggedField{Tag: tag, Data: genShortBytes(r)}
		}
		sortTaggedFields(fields)
		unknown := UnknownTags{fields: fields}

		dst := mustAppendTagSection(nil, nil, unknown)
		b := kbin.NewReader(dst)
		got := readUnknownTags(b)
		require.NoError(t, b.Err())
		require.True(t, unknown.Equal(got))
	}
}
