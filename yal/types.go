package yal

import "fmt"

// These unexported sentinels are returned as-is; token-level errors are
// built by parseErrorf with the offending line number. Callers treat any
// non-nil error as an input error (§7: "lexical or syntactic error in
// YAL").
var (
	errUnexpectedEOF      = fmt.Errorf("yal: unexpected end of input")
	errEmptyParentNetwork = fmt.Errorf("yal: parent module has no NETWORK instances")
	errNoParentModule     = fmt.Errorf("yal: input has no TYPE PARENT module")
)

// moduleTemplate is one MODULE block's parsed shape: its bounding box
// (§6: "computed as (max x - min x, max y - min y) of its DIMENSIONS
// vertices") and its IOLIST pins, indexed by name so PARENT is looked up
// like any other module.
type moduleTemplate struct {
	name   string
	parent bool
	width  int32
	height int32
	pins   []pin
}

type pin struct {
	name string
	x, y int32
}

// networkEntry is one NETWORK line inside the PARENT module: an instance
// name, the module it instantiates, and its ordered signal connections.
type networkEntry struct {
	instanceName string
	moduleName   string
	signals      []string
}

func parseErrorf(line int, format string, args ...any) error {
	return fmt.Errorf("yal: line %d: "+format, append([]any{line}, args...)...)
}
