package seqpair

// edge is one arc of a DAG evaluator constraint graph.
type edge struct {
	to int
	w  int32
}

// EvaluateDAG computes module coordinates and the bounding box by building
// two DAGs over {source, 0..n-1, sink} — H for pairs ordered the same way
// in both permutations, V for pairs that invert — and running a longest-
// path DP over each (§4.2). Node ids are offset by one (module m is node
// m+1) so source=0 and sink=n+1 fit the same node-id space.
//
// The topological order needed for the DP falls out of γ₋ directly: every
// H/V edge between two modules goes from the one earlier in γ₋ to the one
// later, so [source, γ₋..., sink] is already topologically sorted.
func EvaluateDAG(gammaPlus, gammaMinus []int, widths, heights []int32) (xs, ys []int32, w, h int32) {
	n := len(gammaPlus)
	posPlus := make([]int, n)
	for idx, m := range gammaPlus {
		posPlus[m] = idx
	}

	hAdj := make([][]edge, n+2)
	vAdj := make([][]edge, n+2)
	for a := 0; a < n; a++ {
		i := gammaMinus[a]
		for b := a + 1; b < n; b++ {
			j := gammaMinus[b]
			if posPlus[i] < posPlus[j] {
				hAdj[i+1] = append(hAdj[i+1], edge{to: j + 1, w: widths[i]})
			} else {
				vAdj[i+1] = append(vAdj[i+1], edge{to: j + 1, w: heights[i]})
			}
		}
	}
	for m := 0; m < n; m++ {
		hAdj[0] = append(hAdj[0], edge{to: m + 1, w: 0})
		hAdj[m+1] = append(hAdj[m+1], edge{to: n + 1, w: widths[m]})
		vAdj[0] = append(vAdj[0], edge{to: m + 1, w: 0})
		vAdj[m+1] = append(vAdj[m+1], edge{to: n + 1, w: heights[m]})
	}

	topo := make([]int, 0, n+2)
	topo = append(topo, 0)
	for _, m := range gammaMinus {
		topo = append(topo, m+1)
	}
	topo = append(topo, n+1)

	distH := longestPathDP(n+2, hAdj, topo)
	distV := longestPathDP(n+2, vAdj, topo)

	xs = make([]int32, n)
	ys = make([]int32, n)
	for m := 0; m < n; m++ {
		xs[m] = int32(distH[m+1])
		ys[m] = int32(distV[m+1])
	}
	return xs, ys, int32(distH[n+1]), int32(distV[n+1])
}

func longestPathDP(numNodes int, adj [][]edge, topo []int) []int64 {
	dist := make([]int64, numNodes)
	for _, u := range topo {
		for _, e := range adj[u] {
			if cand := dist[u] + int64(e.w); cand > dist[e.to] {
				dist[e.to] = cand
			}
		}
	}
	return dist
}
