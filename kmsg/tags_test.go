package kmsg

import (
	"testing"

	"github.com/ivanyu/kafka-protocol/internal/kbin"
	"github.com/stretchr/testify/require"
)

func TestTagSectionEmpty(t *testing.T) {
	dst := mustAppendTagSection(nil, nil, UnknownTags{})
	require.Equal(t, []byte{0}, dst)

	b := kbin.NewReader(dst)
	tags := readUnknownTags(b)
	require.NoError(t, b.Err())
	require.Equal(t, 0, tags.Len())
}

func TestTagSectionOrderedRoundTrip(t *testing.T) {
	unknown := UnknownTags{fields: []RawTaggedField{
		{Tag: 1, Data: []byte("b")},
		{Tag: 4, Data: []byte("d")},
	}}
	known := []RawTaggedField{{Tag: 0, Data: []byte("a")}}

	dst, err := appendTagSection(nil, known, unknown)
	require.NoError(t, err)

	b := kbin.NewReader(dst)
	got := readUnknownTags(b)
	require.NoError(t, b.Err())
	require.Equal(t, 3, got.Len())

	data, ok := got.Get(0)
	require.True(t, ok)
	require.Equal(t, "a", string(data))
	data, ok = got.Get(1)
	require.True(t, ok)
	require.Equal(t, "b", string(data))
	data, ok = got.Get(4)
	require.True(t, ok)
	require.Equal(t, "d", string(data))
}

func TestTagSectionRejectsNonIncreasing(t *testing.T) {
	fields := []RawTaggedField{
		{Tag: 4, Data: nil},
		{Tag: 1, Data: nil},
	}
	_, err := WriteRawTaggedFields(nil, fields)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid raw tag field list: tag 1 comes after tag 4, but is not higher than it.")
}

func TestTagSectionRejectsDuplicateTagOnRead(t *testing.T) {
	// Hand-build a section with two entries sharing tag 0, since
	// WriteRawTaggedFields enforces strict increase and can't produce
	// this on its own.
	var dst []byte
	dst = kbin.AppendUvarint(dst, 2)
	dst = kbin.AppendUvarint(dst, 0)
	dst = kbin.AppendUvarint(dst, 1)
	dst = append(dst, 'x')
	dst = kbin.AppendUvarint(dst, 0)
	dst = kbin.AppendUvarint(dst, 1)
	dst = append(dst, 'y')

	b := kbin.NewReader(dst)
	readUnknownTags(b)
	require.Error(t, b.Err())
}

func TestWriteReadRawTaggedFieldsRoundTrip(t *testing.T) {
	fields := []RawTaggedField{
		{Tag: 0, Data: []byte("alpha")},
		{Tag: 2, Data: []byte("beta")},
		{Tag: 999, Data: []byte("reserved")},
	}
	dst, err := WriteRawTaggedFields(nil, fields)
	require.NoError(t, err)

	got, n, err := ReadRawTaggedFields(dst)
	require.NoError(t, err)
	require.Equal(t, len(dst), n)
	require.Equal(t, fields, got)
}
