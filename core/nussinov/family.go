// core/nussinov/family.go
package nussinov

import "sync"

// Fold is the full-length result for one sequence.
type Fold struct {
	Seq       string
	Matrix    *Matrix
	Pairs     PairingSet
	Structure string
}

// Score is the number of pairs in the optimal structure.
func (f Fold) Score() int { return len(f.Pairs) }

// FoldSequence fills the matrix and traces the full-length structure.
func FoldSequence(seq string, opts Options) Fold {
	m := Fill(seq, opts)
	pairs := Trace(m, seq, 0, len(seq)-1, opts)
	return Fold{Seq: seq, Matrix: m, Pairs: pairs, Structure: Encode(pairs, len(seq))}
}

// Family returns the structure of every prefix of seq: entry x is the
// dot-bracket string of seq[:x], so the result has len(seq)+1 entries.
func Family(seq string, opts Options) []string {
	return FamilyFrom(Fill(seq, opts), seq, opts)
}

// FamilyFrom is Family over an already filled matrix for seq.
func FamilyFrom(m *Matrix, seq string, opts Options) []string {
	n := len(seq)
	out := make([]string, n+1)
	prefix := func(x int) {
		pairs := Trace(m.Prefix(x), seq[:x], 0, x-1, opts)
		out[x] = Encode(pairs, x)
	}

	workers := opts.Workers
	if workers <= 1 || n < 2 {
		for x := 0; x <= n; x++ {
			prefix(x)
		}
		return out
	}
	if workers > n+1 {
		workers = n + 1
	}

	// Each x writes only out[x]; no further coordination is needed.
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for x := range jobs {
				prefix(x)
			}
		}()
	}
	for x := n; x >= 0; x-- { // longest (slowest) prefixes first
		jobs <- x
	}
	close(jobs)
	wg.Wait()
	return out
}
