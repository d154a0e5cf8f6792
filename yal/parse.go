package yal

import (
	"fmt"
	"io"
	"sort"

	"github.com/floorsa/floorsa/module"
)

// Parse reads a full YAL document from r and returns one placeable module
// per NETWORK instance of the PARENT module (§6), plus the netlist
// inferred from instances sharing a signal name: every signal referenced
// by two or more instances becomes a star of Net edges centered on the
// first instance to reference it.
//
// Parse errors are input errors (§7): a non-nil error always means the
// document was rejected outright, never partially applied.
func Parse(r io.Reader) ([]module.Module, []module.Net, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("yal: read: %w", err)
	}

	p := newParser(lex(string(data)))
	templates, network, err := p.parseModules()
	if err != nil {
		return nil, nil, err
	}
	if len(network) == 0 {
		return nil, nil, errEmptyParentNetwork
	}

	byName := make(map[string]moduleTemplate, len(templates))
	for _, t := range templates {
		if _, dup := byName[t.name]; dup {
			return nil, nil, fmt.Errorf("yal: duplicate module name %q", t.name)
		}
		byName[t.name] = t
	}

	modules := make([]module.Module, len(network))
	instanceIndex := make(map[string]int, len(network))
	for i, entry := range network {
		tmpl, ok := byName[entry.moduleName]
		if !ok {
			return nil, nil, fmt.Errorf("yal: instance %q references undefined module %q", entry.instanceName, entry.moduleName)
		}
		pins := make([]module.Pin, len(tmpl.pins))
		for j, pn := range tmpl.pins {
			pins[j] = module.Pin{X: pn.x, Y: pn.y}
		}
		modules[i] = module.Module{Name: entry.instanceName, Width: tmpl.width, Height: tmpl.height, Pins: pins}
		instanceIndex[entry.instanceName] = i
	}

	nets := netsFromNetwork(network, instanceIndex)
	return modules, nets, nil
}

// netsFromNetwork groups NETWORK signal references by name and connects
// every instance sharing one in a star centered on the first instance
// that used it, each edge weight 1 (§4.7's net-weighted wirelength
// defaults to 1 when unspecified — YAL itself carries no per-net weight).
func netsFromNetwork(network []networkEntry, instanceIndex map[string]int) []module.Net {
	bySignal := make(map[string][]int)
	order := make([]string, 0)
	for _, entry := range network {
		idx := instanceIndex[entry.instanceName]
		for _, sig := range entry.signals {
			if _, seen := bySignal[sig]; !seen {
				order = append(order, sig)
			}
			bySignal[sig] = append(bySignal[sig], idx)
		}
	}
	sort.Strings(order)

	var nets []module.Net
	for _, sig := range order {
		members := bySignal[sig]
		if len(members) < 2 {
			continue
		}
		center := members[0]
		for _, other := range members[1:] {
			if other == center {
				continue
			}
			nets = append(nets, module.Net{A: center, B: other, Weight: 1})
		}
	}
	return nets
}
