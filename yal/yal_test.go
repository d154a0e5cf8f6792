package yal_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floorsa/floorsa/module"
	"github.com/floorsa/floorsa/yal"
)

const sample = `
MODULE cella;
  TYPE STANDARD;
  DIMENSIONS 0 0 0 4 2 4 2 0;
  IOLIST;
    in1 PI 0 2 1 METAL1;
    out1 PO 2 2 1 METAL1;
  ENDIOLIST;
ENDMODULE;
MODULE cellb;
  TYPE STANDARD;
  DIMENSIONS 0 0 0 5 3 5 3 0;
  IOLIST;
    in1 PI 0 1 1 METAL1;
  ENDIOLIST;
ENDMODULE;
MODULE top;
  TYPE PARENT;
  DIMENSIONS 0 0 0 10 10 10 10 0;
  IOLIST;
  ENDIOLIST;
  NETWORK;
    u1 cella net1 net2;
    u2 cellb net2;
  ENDNETWORK;
ENDMODULE;
`

func TestParse_BuildsInstancesAndNets(t *testing.T) {
	modules, nets, err := yal.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, modules, 2)

	assert.Equal(t, "u1", modules[0].Name)
	assert.Equal(t, int32(2), modules[0].Width)
	assert.Equal(t, int32(4), modules[0].Height)
	assert.Equal(t, "u2", modules[1].Name)
	assert.Equal(t, int32(3), modules[1].Width)
	assert.Equal(t, int32(5), modules[1].Height)

	require.Len(t, nets, 1)
	assert.Equal(t, module.Net{A: 0, B: 1, Weight: 1}, nets[0])
}

func TestParse_RejectsUndefinedModuleReference(t *testing.T) {
	bad := strings.Replace(sample, "u2 cellb net2;", "u2 missing net2;", 1)
	_, _, err := yal.Parse(strings.NewReader(bad))
	assert.Error(t, err)
}

func TestParse_RejectsMissingParent(t *testing.T) {
	onlyLeaf := `
MODULE cella;
  TYPE STANDARD;
  DIMENSIONS 0 0 0 4 2 4 2 0;
  IOLIST;
  ENDIOLIST;
ENDMODULE;
`
	_, _, err := yal.Parse(strings.NewReader(onlyLeaf))
	assert.Error(t, err)
}

func TestParse_RejectsEmptyParentNetwork(t *testing.T) {
	empty := `
MODULE top;
  TYPE PARENT;
  DIMENSIONS 0 0 0 1 1 1 1 0;
  IOLIST;
  ENDIOLIST;
  NETWORK;
  ENDNETWORK;
ENDMODULE;
`
	_, _, err := yal.Parse(strings.NewReader(empty))
	assert.Error(t, err)
}
