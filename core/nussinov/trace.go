// core/nussinov/trace.go
package nussinov

// Pair is one base pair, I < J.
type Pair struct {
	I, J int
}

// PairingSet is a non-crossing set of pairs in traceback order.
type PairingSet []Pair

// Trace reconstructs one optimal pairing over the closed interval [i, j].
//
// Rules are tried in a fixed order and the first match wins: i unpaired,
// j unpaired, (i, j) paired, then the leftmost bifurcation. Many optimal
// structures usually exist; this order picks one of them deterministically.
func Trace(m *Matrix, seq string, i, j int, opts Options) PairingSet {
	var out PairingSet
	trace(m, seq, i, j, opts, &out)
	return out
}

func trace(m *Matrix, seq string, i, j int, opts Options, out *PairingSet) {
	if i >= j {
		return
	}
	v := m.At(i, j)
	switch {
	case v == m.At(i+1, j):
		trace(m, seq, i+1, j, opts, out)
	case v == m.At(i, j-1):
		trace(m, seq, i, j-1, opts, out)
	case v == m.At(i+1, j-1)+opts.pair(seq[i], seq[j]):
		*out = append(*out, Pair{I: i, J: j})
		trace(m, seq, i+1, j-1, opts, out)
	default:
		for k := i + 1; k <= j-2; k++ {
			if v == m.At(i, k)+m.At(k+1, j) {
				trace(m, seq, i, k, opts, out)
				trace(m, seq, k+1, j, opts, out)
				return
			}
		}
		panic(ErrInconsistentMatrix)
	}
}
