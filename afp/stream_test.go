package afp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ebcdic encodes an upper-case ASCII string as cp037 bytes, padding or
// truncating to width.
func ebcdic(s string, width int) []byte {
	const upper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	const codes = "\xC1\xC2\xC3\xC4\xC5\xC6\xC7\xC8\xC9\xD1\xD2\xD3\xD4\xD5\xD6\xD7\xD8\xD9\xE2\xE3\xE4\xE5\xE6\xE7\xE8\xE9"
	b := make([]byte, width)
	for i := 0; i < width; i++ {
		if i < len(s) {
			b[i] = codes[bytes.IndexByte([]byte(upper), s[i])]
		} else {
			b[i] = 0x40 // EBCDIC space
		}
	}
	return b
}

func sf(sfType uint32, flagByte byte, fieldData []byte) []byte {
	body := []byte{byte(sfType >> 16), byte(sfType >> 8), byte(sfType), flagByte, 0x00, 0x00}
	body = append(body, fieldData...)
	sfLength := len(body) + 2
	out := []byte{0x5A, byte(sfLength >> 8), byte(sfLength)}
	return append(out, body...)
}

func TestMinimalBDT(t *testing.T) {
	fieldData := append(ebcdic("DOCNAME", 8), 0x00, 0x00) // DocName + BDT's own Reserved
	fieldData = append(fieldData, 0x02, 0x00)              // one raw triplet, Tlength=2 Tid=0x00
	wire := sf(SFBDT, 0x00, fieldData)

	cfg := DefaultConfig()
	cfg.AllowUnknownTriplets = true
	records, err := Load(bytes.NewReader(wire), cfg)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	id, ok := rec.Uint(pnameSFTypeID)
	require.True(t, ok)
	assert.Equal(t, uint64(SFBDT), id)

	length, _ := rec.Uint(pnameSFLength)
	assert.Equal(t, uint64(len(wire)-1), length)

	name, ok := rec.Text("DocName")
	require.True(t, ok)
	assert.Equal(t, "DOCNAME", name)

	triplets, ok := rec.Records(pnameTriplets)
	require.True(t, ok)
	require.Len(t, triplets, 1)
	tid, _ := triplets[0].Uint(pnameTID)
	assert.Equal(t, uint64(0x00), tid)
}

func TestUnknownStructuredFieldFatal(t *testing.T) {
	wire := sf(0xD3FFFF, 0x00, []byte{0x00})

	_, err := Load(bytes.NewReader(wire), DefaultConfig())
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, KindUnrecognizedStructuredField, pe.Kind)
	assert.Equal(t, byte(0x10), pe.Code)
	assert.Equal(t, 1, pe.FieldNo)
	assert.Equal(t, int64(0), pe.Offset)
}

func TestUnknownStructuredFieldAllowed(t *testing.T) {
	wire := sf(0xD3FFFF, 0x00, []byte{0x00})

	cfg := DefaultConfig()
	cfg.AllowUnknownFields = true
	records, err := Load(bytes.NewReader(wire), cfg)
	require.NoError(t, err)
	require.Len(t, records, 1)

	data, ok := records[0].Bytes("Data")
	require.True(t, ok)
	assert.Equal(t, []byte{0x00}, data)
	assert.Empty(t, records[0].Exceptions)
}

func TestLenientTruncationRecordsException(t *testing.T) {
	// DocName needs 8 bytes but only 2 are present.
	wire := sf(SFBDT, 0x00, []byte{0xC1, 0xC2})

	records, err := Load(bytes.NewReader(wire), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	_, hasName := rec.Text("DocName")
	assert.False(t, hasName)
	require.Len(t, rec.Exceptions, 1)
	assert.Equal(t, byte(0x04), rec.Exceptions[0].Code)
}

func TestStrictTruncationIsFatal(t *testing.T) {
	wire := sf(SFBDT, 0x00, []byte{0xC1, 0xC2})

	cfg := DefaultConfig()
	cfg.Strict = true
	_, err := Load(bytes.NewReader(wire), cfg)
	require.Error(t, err)

	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, KindRequiredParameterMissing, pe.Kind)
	assert.Equal(t, 1, pe.FieldNo)
}

func TestStreamMatchesLoad(t *testing.T) {
	wire := sf(SFNOP, 0x00, []byte{0x01, 0x02, 0x03})

	loaded, err := Load(bytes.NewReader(wire), DefaultConfig())
	require.NoError(t, err)

	stream := NewStream(bytes.NewReader(wire), DefaultConfig())
	var pulled []*Record
	for {
		rec, err := stream.Next()
		require.NoError(t, err)
		if rec == nil {
			break
		}
		pulled = append(pulled, rec)
	}

	require.Len(t, pulled, len(loaded))
	for i := range loaded {
		assert.Equal(t, loaded[i].Keys(), pulled[i].Keys())
	}
}

func TestSFIOnlyBody(t *testing.T) {
	wire := sf(SFNOP, 0x00, nil)

	records, err := Load(bytes.NewReader(wire), DefaultConfig())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{pnameSFTypeID, pnameFlagByte, "Reserved", pnameSFLength}, records[0].Keys())
}
