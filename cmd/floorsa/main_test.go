package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAL = `
MODULE cella;
  TYPE STANDARD;
  DIMENSIONS 0 0 0 4 2 4 2 0;
  IOLIST;
  ENDIOLIST;
ENDMODULE;
MODULE cellb;
  TYPE STANDARD;
  DIMENSIONS 0 0 0 5 3 5 3 0;
  IOLIST;
  ENDIOLIST;
ENDMODULE;
MODULE top;
  TYPE PARENT;
  DIMENSIONS 0 0 0 1 1 1 1 0;
  IOLIST;
  ENDIOLIST;
  NETWORK;
    u1 cella net1;
    u2 cellb net1;
  ENDNETWORK;
ENDMODULE;
`

func TestRun_HelpExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--help"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Usage: floorsa")
}

func TestRun_UnknownMethodFails(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--method", "bogus"}, &stdout, &stderr)
	assert.NotEqual(t, 0, code)
}

func TestRun_FromFile_ProducesOneLinePerInstance(t *testing.T) {
	dir := t.TempDir()
	inPath := dir + "/in.yal"
	outPath := dir + "/out.txt"
	require.NoError(t, os.WriteFile(inPath, []byte(sampleYAL), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--input", inPath, "--output", outPath, "--method", "dag", "--seed", "3"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
}
