package conformance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorsInTestdataAllPass(t *testing.T) {
	files, err := LoadDir("testdata")
	require.NoError(t, err)
	require.NotEmpty(t, files, "expected at least one vector file in testdata")

	for name, cases := range files {
		for _, tc := range cases {
			mismatches := Run(tc)
			assert.Empty(t, mismatches, "%s/%s: %v", name, tc.Name, mismatches)
		}
	}
}

func TestRAMEntryAcceptsCorpusArrayEncoding(t *testing.T) {
	var e RAMEntry
	require.NoError(t, e.UnmarshalJSON([]byte("[49152, 105]")))
	assert.Equal(t, uint16(49152), e.Address)
	assert.Equal(t, uint8(105), e.Value)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile("testdata/does_not_exist.json")
	assert.Error(t, err)
}
