package module

import "errors"

// Sentinel errors for module and net construction.
var (
	// ErrEmptyName indicates a Module with an empty name.
	ErrEmptyName = errors.New("module: name is empty")

	// ErrNegativeDimension indicates a negative width or height.
	ErrNegativeDimension = errors.New("module: width/height must be non-negative")

	// ErrDuplicateName indicates two modules in the same set share a name.
	ErrDuplicateName = errors.New("module: duplicate module name")

	// ErrNetIndexOutOfRange indicates a Net references a module index outside [0, n).
	ErrNetIndexOutOfRange = errors.New("module: net index out of range")

	// ErrNetSelfLoop indicates a Net connects a module to itself.
	ErrNetSelfLoop = errors.New("module: net connects a module to itself")
)

// Pin is a fixed offset within a Module's own coordinate frame.
type Pin struct {
	X int32
	Y int32
}

// Module is an immutable rectangular macro-cell. Width and Height are the
// cell's unrotated dimensions; a representation tracks rotation separately
// (the orientation bit, §3) rather than mutating Module.
//
// Shapes, when non-empty, lists the discrete set of admissible (width,
// height) pairs for this module beyond plain 0/90-degree rotation — see
// SPEC_FULL.md §4.7 (Open Question O3). Most modules leave Shapes nil and
// are handled by the default rotatable-or-square rule in curve.LeafCurve.
type Module struct {
	Name   string
	Width  int32
	Height int32
	Pins   []Pin
	Shapes []Shape
}

// Shape is one admissible (width, height) pair for a module with a discrete
// set of aspect ratios (SPEC_FULL.md §4.7).
type Shape struct {
	Width  int32
	Height int32
}

// Square reports whether m is unrotatable for cost purposes (width == height).
func (m Module) Square() bool { return m.Width == m.Height }

// Net is an undirected connection between two modules by index into the
// enclosing []Module slice. Weight multiplies the net's wirelength
// contribution (default 1; see SPEC_FULL.md §4.7's net-weighted wirelength).
type Net struct {
	A, B   int
	Weight float64
}

// Validate checks a module set and netlist for the invariants in §3:
// non-empty distinct names, non-negative dimensions, and net indices in range
// referencing two distinct modules. On any error the inputs are reported
// unchanged (no partial validation state is retained by the caller).
func Validate(modules []Module, nets []Net) error {
	seen := make(map[string]struct{}, len(modules))
	for _, m := range modules {
		if m.Name == "" {
			return ErrEmptyName
		}
		if m.Width < 0 || m.Height < 0 {
			return ErrNegativeDimension
		}
		if _, dup := seen[m.Name]; dup {
			return ErrDuplicateName
		}
		seen[m.Name] = struct{}{}
	}
	n := len(modules)
	for _, net := range nets {
		if net.A < 0 || net.A >= n || net.B < 0 || net.B >= n {
			return ErrNetIndexOutOfRange
		}
		if net.A == net.B {
			return ErrNetSelfLoop
		}
	}
	return nil
}

// EffectiveWeight returns net.Weight, defaulting to 1 when unset (zero value).
func (n Net) EffectiveWeight() float64 {
	if n.Weight == 0 {
		return 1
	}
	return n.Weight
}
