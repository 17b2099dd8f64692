package kmsg

import (
	"fmt"

	"github.com/ivanyu/kafka-protocol/internal/kbin"
)

// maxTagCount bounds the number of tagged fields a single section may
// declare, preventing a hostile length prefix from driving an
// unbounded read loop.
const maxTagCount = 1 << 20

// RawTaggedField is one entry of a flexible struct's trailing
// tagged-fields section: an opaque (tag, bytes) pair. Grounded on
// RawTaggedField in _examples/original_source/rust/src/tagged_fields.rs,
// translated from its serde struct into a plain Go value type.
type RawTaggedField struct {
	Tag  uint32
	Data []byte
}

// UnknownTags carries tagged fields a flexible struct's schema does not
// declare — typically fields a newer broker added after this package
// was written. Round-tripping a struct that carries an UnknownTags field
// reproduces these bytes unchanged, so UnknownTags is part of that
// struct's value identity for equality (spec §9). The nested records
// shared between classic and flexible versions (for example
// JoinGroupRequestProtocolV0, OffsetCommitRequestPartitionV0,
// DescribeConfigsResponseEntryV0) have no UnknownTags field: in flexible
// versions they read their tagged-fields section and discard it, and
// write an empty one.
type UnknownTags struct {
	fields []RawTaggedField
}

// Len returns the number of unknown tagged fields carried.
func (t UnknownTags) Len() int { return len(t.fields) }

// Each calls fn once per unknown tagged field, in the order they are
// held: wire order for a decoded value (the reader does not sort).
func (t UnknownTags) Each(fn func(tag uint32, data []byte)) {
	for _, f := range t.fields {
		fn(f.Tag, f.Data)
	}
}

// Get returns the raw bytes for tag, if present.
func (t UnknownTags) Get(tag uint32) ([]byte, bool) {
	for _, f := range t.fields {
		if f.Tag == tag {
			return f.Data, true
		}
	}
	return nil, false
}

// Equal reports whether two UnknownTags carry the same (tag, data)
// pairs, independent of slice capacity/aliasing.
func (t UnknownTags) Equal(o UnknownTags) bool {
	if len(t.fields) != len(o.fields) {
		return false
	}
	for i := range t.fields {
		if t.fields[i].Tag != o.fields[i].Tag {
			return false
		}
		if string(t.fields[i].Data) != string(o.fields[i].Data) {
			return false
		}
	}
	return true
}

// readUnknownTags reads a tagged-fields section via readTagSection with
// no known-tag consumer, i.e. this is used by structs with no declared
// tagged fields of their own: everything found is unknown. Rejects duplicate tags with malformed, per spec §9's Open
// Question (reject on read as well as write).
func readUnknownTags(b *kbin.Reader) UnknownTags {
	return readTagSection(b, nil)
}

// readTagSection reads a flexible struct's trailing tagged-fields
// section. Known tags are dispatched to consume(tag, data) (returning
// true if they recognized and applied the tag); everything else is
// collected into the returned UnknownTags. consume may be nil, meaning
// every tag is unknown.
func readTagSection(b *kbin.Reader, consume func(tag uint32, data []byte) bool) UnknownTags {
	n := b.Uvarint()
	if b.Err() != nil || n == 0 {
		return UnknownTags{}
	}
	if n > maxTagCount {
		b.Fail("tagged field count exceeds sanity bound")
		return UnknownTags{}
	}
	seen := make(map[uint32]struct{}, n)
	var unknown []RawTaggedField
	for i := uint32(0); i < n; i++ {
		tag := b.Uvarint()
		size := b.Uvarint()
		data := b.Span(int(size))
		if b.Err() != nil {
			return UnknownTags{}
		}
		if _, dup := seen[tag]; dup {
			b.Fail(fmt.Sprintf("duplicate tagged field tag %d", tag))
			return UnknownTags{}
		}
		seen[tag] = struct{}{}
		if consume == nil || !consume(tag, data) {
			cp := append([]byte(nil), data...)
			unknown = append(unknown, RawTaggedField{Tag: tag, Data: cp})
		}
	}
	return UnknownTags{fields: unknown}
}

// appendTagSection merges known (schema-declared, already-encoded)
// tagged fields with the carried-over unknown ones, sorts the merged
// set by tag, and writes the section. It returns an error (and writes
// nothing) if the known and unknown sets collide on a tag or are not
// already distinct, matching the writer-side strict-increase contract of
// spec §4.4 (duplicate tags across known/unknown are a caller error,
// same as a non-increasing sequence).
func appendTagSection(dst []byte, known []RawTaggedField, unknown UnknownTags) ([]byte, error) {
	all := make([]RawTaggedField, 0, len(known)+len(unknown.fields))
	all = append(all, known...)
	all = append(all, unknown.fields...)
	sortTaggedFields(all)
	if err := checkStrictlyIncreasing(all); err != nil {
		return nil, err
	}
	dst = kbin.AppendUvarint(dst, uint32(len(all)))
	for _, f := range all {
		dst = kbin.AppendUvarint(dst, f.Tag)
		dst = kbin.AppendUvarint(dst, uint32(len(f.Data)))
		dst = append(dst, f.Data...)
	}
	return dst, nil
}

// mustAppendTagSection is appendTagSection for the exported AppendTo
// methods on schema structs, whose signature (per the ApiMessage
// capability) has no error return. A failure here can only be a
// genuine programming mistake — the caller hand-built an UnknownTags
// whose tag collides with, or is out of order against, a
// schema-declared tag — so it panics with the exact diagnostic
// WriteRawTaggedFields would have returned, rather than silently
// emitting a corrupt frame.
func mustAppendTagSection(dst []byte, known []RawTaggedField, unknown UnknownTags) []byte {
	dst, err := appendTagSection(dst, known, unknown)
	if err != nil {
		panic(err)
	}
	return dst
}

func sortTaggedFields(fs []RawTaggedField) {
	for i := 1; i < len(fs); i++ {
		for j := i; j > 0 && fs[j-1].Tag > fs[j].Tag; j-- {
			fs[j-1], fs[j] = fs[j], fs[j-1]
		}
	}
}

// checkStrictlyIncreasing validates the exact writer contract of
// spec §4.4/§8: every tag must be strictly greater than the one before
// it. On failure it returns the exact message format spec demands,
// sourced verbatim (translated from Rust's format! call) from
// _examples/original_source/rust/src/tagged_fields.rs.
func checkStrictlyIncreasing(fs []RawTaggedField) error {
	for i := 1; i < len(fs); i++ {
		t0, t1 := fs[i-1].Tag, fs[i].Tag
		if t0 >= t1 {
			return &EncodeError{
				Kind:      KindInvalidTagOrder,
				FieldPath: "tagged_fields",
				Err: fmt.Errorf(
					"Invalid raw tag field list: tag %d comes after tag %d, but is not higher than it.",
					t1, t0,
				),
			}
		}
	}
	return nil
}

// WriteRawTaggedFields is the public entry point spec §4.4/§8 describes
// directly: encode an ordered list of raw tagged fields with no known
// fields merged in, failing on non-increasing input.
func WriteRawTaggedFields(dst []byte, fields []RawTaggedField) ([]byte, error) {
	if err := checkStrictlyIncreasing(fields); err != nil {
		return nil, err
	}
	dst = kbin.AppendUvarint(dst, uint32(len(fields)))
	for _, f := range fields {
		dst = kbin.AppendUvarint(dst, f.Tag)
		dst = kbin.AppendUvarint(dst, uint32(len(f.Data)))
		dst = append(dst, f.Data...)
	}
	return dst, nil
}

// ReadRawTaggedFields is the public entry point matching
// WriteRawTaggedFields: reads back whatever length-prefixed (tag,data)
// sequence is at the front of src, returning the fields in wire order
// and the number of bytes consumed. Per spec §4.4 this does NOT enforce
// strict increase on read (robustness for future extensions), but DOES
// reject a repeated tag.
func ReadRawTaggedFields(src []byte) ([]RawTaggedField, int, error) {
	b := kbin.NewReader(src)
	n := b.Uvarint()
	if err := b.Err(); err != nil {
		return nil, 0, err
	}
	seen := make(map[uint32]struct{}, n)
	fields := make([]RawTaggedField, 0, n)
	for i := uint32(0); i < n; i++ {
		tag := b.Uvarint()
		size := b.Uvarint()
		data := b.Span(int(size))
		if err := b.Err(); err != nil {
			return nil, 0, err
		}
		if _, dup := seen[tag]; dup {
			return nil, 0, fmt.Errorf("duplicate tagged field tag %d", tag)
		}
		seen[tag] = struct{}{}
		fields = append(fields, RawTaggedField{Tag: tag, Data: append([]byte(nil), data...)})
	}
	return fields, b.Offset(), nil
}
