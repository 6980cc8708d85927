package afp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSbinBoundaries(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want int64
	}{
		{"minus-two", []byte{0xFF, 0xFF, 0xFE}, -2},
		{"min-3-byte", []byte{0x80, 0x00, 0x00}, -8388608},
		{"max-3-byte", []byte{0x7F, 0xFF, 0xFF}, 8388607},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok, err := parseSbin(tc.data, 3, 0)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestParseTripletsStream(t *testing.T) {
	// Fully Qualified Name (0x02): FQNType=0x00, FQNFmt=0x01, FQName="A".
	// Resource Local Identifier (0x24): ResType=0x02, ResLID=0x05.
	data := []byte{
		0x05, 0x02, 0x00, 0x01, 0xC1,
		0x04, 0x24, 0x02, 0x05,
	}

	records, err := parseTriplets(data, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, records, 2)

	fqn := records[0]
	tlen, _ := fqn.Uint(pnameTLength)
	tid, _ := fqn.Uint(pnameTID)
	assert.Equal(t, uint64(5), tlen)
	assert.Equal(t, uint64(0x02), tid)
	fqnType, _ := fqn.Uint("FQNType")
	assert.Equal(t, uint64(0x00), fqnType)
	fqnFmt, _ := fqn.Uint("FQNFmt")
	assert.Equal(t, uint64(0x01), fqnFmt)
	fqName, _ := fqn.Text("FQName")
	assert.Equal(t, "A", fqName)

	resID := records[1]
	tlen, _ = resID.Uint(pnameTLength)
	tid, _ = resID.Uint(pnameTID)
	assert.Equal(t, uint64(4), tlen)
	assert.Equal(t, uint64(0x24), tid)
	resType, _ := resID.Uint("ResType")
	assert.Equal(t, uint64(0x02), resType)
	resLID, _ := resID.Uint("ResLID")
	assert.Equal(t, uint64(0x05), resLID)
}

func TestParseTripletsUnknownFatal(t *testing.T) {
	data := []byte{0x03, 0x7E, 0x00}
	_, err := parseTriplets(data, DefaultConfig())
	require.Error(t, err)
	assert.True(t, isKind(err, KindUnrecognizedTriplet))
}

func TestParseTripletsInvalidLength(t *testing.T) {
	data := []byte{0x01, 0x02}
	_, err := parseTriplets(data, DefaultConfig())
	require.Error(t, err)
	assert.True(t, isKind(err, KindInvalidTriplet))
}

func TestParsePtocaChain(t *testing.T) {
	// Escape + chained TRN("ABC") + unchained TRN("D"), no second escape.
	data := []byte{
		0x2B, 0xD3,
		0x05, FnChainedTRN, 0xC1, 0xC2, 0xC3,
		0x03, FnUnchainedTRN, 0xC4,
	}

	records, err := parsePtoca(data, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	text, _ := first.Text("TRNDATA")
	assert.Equal(t, "ABC", text)
	length, _ := first.Uint(pnameCSLength)
	assert.Equal(t, uint64(5), length)

	second := records[1]
	text, _ = second.Text("TRNDATA")
	assert.Equal(t, "D", text)
}

func TestParsePtocaEndsChainedIsFatal(t *testing.T) {
	data := []byte{0x2B, 0xD3, 0x05, FnChainedTRN, 0xC1, 0xC2, 0xC3}

	_, err := parsePtoca(data, DefaultConfig())
	require.Error(t, err)
	assert.True(t, isKind(err, KindInvalidControlSequence))
}

func TestParsePtocaMissingEscapeFatal(t *testing.T) {
	data := []byte{0x05, FnUnchainedTRN, 0xC1, 0xC2, 0xC3}

	_, err := parsePtoca(data, DefaultConfig())
	require.Error(t, err)
	assert.True(t, isKind(err, KindInvalidControlSequence))
}

func TestRecordSetUniquifiesNames(t *testing.T) {
	r := newRecord()
	r.set("Reserved", byte(1))
	r.set("Reserved", byte(2))
	used := r.set("Reserved", byte(3))

	assert.Equal(t, "Reserved-3", used)
	assert.Equal(t, []string{"Reserved", "Reserved-2", "Reserved-3"}, r.Keys())

	v1, _ := r.Byte("Reserved")
	v2, _ := r.Byte("Reserved-2")
	v3, _ := r.Byte("Reserved-3")
	assert.Equal(t, byte(1), v1)
	assert.Equal(t, byte(2), v2)
	assert.Equal(t, byte(3), v3)
}
