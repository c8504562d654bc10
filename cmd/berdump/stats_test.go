package main

import (
	"testing"

	"github.com/usnistgov/berdecode/ber/bertestvector"
	"github.com/usnistgov/berdecode/core/testenv"
)

func TestStatsText(t *testing.T) {
	assert, require := makeAR(t)

	out, e := runApp(t, []byte("3006 0202 0100 0400"), "stats")
	require.NoError(e)
	assert.Equal(`documents 1
elements 3
max-depth 2
primitive-length count 2 min 0 max 2 mean 1.0 stdev 1.4
type Integer 1
type OctetString 1
type Sequence 1
`, out)
}

func TestStatsJSON(t *testing.T) {
	assert, require := makeAR(t)

	cert := writeTemp(t, "cert.pem", bertestvector.RsaSelfSignedCertificatePEM)
	out, e := runApp(t, nil, "stats", "--extended", "--format", "json", cert, cert)
	require.NoError(e)

	var stats elementStats
	testenv.FromJSON(out, &stats)
	assert.Equal(2, stats.Documents)
	assert.Equal(114, stats.Elements)
	assert.Equal(6, stats.MaxDepth)
	assert.Equal(6, stats.Types["Null"])
	assert.Equal(2, stats.Types["ContextSpecific 0"])
	assert.Equal(2, stats.Types["ContextSpecific 3"])
	require.NotNil(stats.Payload.Max)
	assert.EqualValues(271, *stats.Payload.Max)
	assert.EqualValues(60, stats.Payload.Count)
}
