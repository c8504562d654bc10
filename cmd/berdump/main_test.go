package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/urfave/cli/v2"
	"github.com/usnistgov/berdecode/core/testenv"
	"go4.org/must"
)

var makeAR = testenv.MakeAR

// runApp runs the command line application with stdin input, and returns its output.
func runApp(t testing.TB, stdin []byte, args ...string) (stdout string, e error) {
	var buf bytes.Buffer
	app := makeApp()
	app.Writer = &buf
	app.Reader = bytes.NewReader(stdin)
	app.ExitErrHandler = func(*cli.Context, error) {} // keep urfave/cli from calling os.Exit in tests
	e = app.Run(append([]string{"berdump"}, args...))
	return buf.String(), e
}

// writeTemp writes a temporary file.
func writeTemp(t testing.TB, name string, body []byte) (filename string) {
	_, require := makeAR(t)
	filename = testenv.TempName(t, name)
	f, e := os.Create(filename)
	require.NoError(e)
	defer must.Close(f)
	_, e = f.Write(body)
	require.NoError(e)
	return filename
}

func TestPrependEnvOpts(t *testing.T) {
	assert, require := makeAR(t)

	args, e := prependEnvOpts([]string{"berdump", "decode", "a.der"})
	require.NoError(e)
	assert.Equal([]string{"berdump", "decode", "a.der"}, args)

	t.Setenv(envOpts, `--log-level D`)
	args, e = prependEnvOpts([]string{"berdump", "decode", "a.der"})
	require.NoError(e)
	assert.Equal([]string{"berdump", "--log-level", "D", "decode", "a.der"}, args)

	t.Setenv(envOpts, `--log-level 'unterminated`)
	_, e = prependEnvOpts([]string{"berdump"})
	assert.Error(e)
}

func TestOIDCommand(t *testing.T) {
	assert, _ := makeAR(t)

	out, e := runApp(t, nil, "oid", "2A864886F70D", "550403", "2B0601")
	assert.NoError(e)
	assert.Equal("1.2.840.113549 (rsadsi)\n2.5.4.3 (commonName)\n1.3.6.1\n", out)

	_, e = runApp(t, nil, "oid", "2A86")
	assert.Error(e)
	_, e = runApp(t, nil, "oid")
	assert.Error(e)
}
