package main

import (
	"testing"

	"github.com/usnistgov/berdecode/ber/bertestvector"
)

func TestReadAuto(t *testing.T) {
	assert, require := makeAR(t)

	docs, e := readAuto(bertestvector.RsaSelfSignedCertificatePEM)
	require.NoError(e)
	require.Len(docs, 1)
	assert.Equal("CERTIFICATE", docs[0].Label)
	assert.Equal(bertestvector.RsaSelfSignedCertificate, docs[0].Wire)

	docs, e = readAuto(bertestvector.RsaSelfSignedCertificate)
	require.NoError(e)
	require.Len(docs, 1)
	assert.Equal("", docs[0].Label)
	assert.Equal(bertestvector.RsaSelfSignedCertificate, docs[0].Wire)

	docs, e = readAuto([]byte("30:03:02:01:05\n"))
	require.NoError(e)
	require.Len(docs, 1)
	assert.Equal([]byte{0x30, 0x03, 0x02, 0x01, 0x05}, docs[0].Wire)

	docs, e = readAuto(nil)
	require.NoError(e)
	require.Len(docs, 1)
	assert.Len(docs[0].Wire, 0)
}

func TestReadExplicit(t *testing.T) {
	assert, _ := makeAR(t)

	_, e := readPEM([]byte("3003020105"))
	assert.ErrorIs(e, errNoPEM)

	_, e = readHex([]byte("30 0"))
	assert.Error(e)

	docs, e := readHex([]byte(" 04 02\n AB cd "))
	assert.NoError(e)
	assert.Equal([]byte{0x04, 0x02, 0xAB, 0xCD}, docs[0].Wire)

	pair := append(append([]byte{}, bertestvector.RsaSelfSignedCertificatePEM...), bertestvector.RsaSelfSignedCertificatePEM...)
	docs, e = readPEM(pair)
	assert.NoError(e)
	assert.Len(docs, 2)
}
