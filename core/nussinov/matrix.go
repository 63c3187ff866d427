// core/nussinov/matrix.go
package nussinov

import (
	"errors"
	"fmt"
)

// Undefined marks cells below the sub-diagonal that Fill never writes.
const Undefined = -1

var (
	ErrIndexOutOfRange    = errors.New("matrix index out of range")
	ErrInconsistentMatrix = errors.New("matrix has no valid traceback")
)

// IndexError is the panic value for accesses outside [0, N).
type IndexError struct {
	I, J, N int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: (%d,%d) with N=%d", ErrIndexOutOfRange, e.I, e.J, e.N)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Matrix is the Nussinov score table. Cell (i, j) with j >= i holds the
// maximum number of pairs in seq[i..j].
//
// A Matrix returned by Prefix shares cells with its parent; treat both as
// read-only once Fill has returned.
type Matrix struct {
	n      int
	stride int
	cells  []int
}

func newMatrix(n int) *Matrix {
	m := &Matrix{n: n, stride: n, cells: make([]int, n*n)}
	for k := range m.cells {
		m.cells[k] = Undefined
	}
	for i := 0; i < n; i++ {
		m.cells[i*n+i] = 0
		if i+1 < n {
			m.cells[(i+1)*n+i] = 0
		}
	}
	return m
}

// Len returns N.
func (m *Matrix) Len() int { return m.n }

// At returns M[i][j]. It panics with *IndexError outside [0, N).
func (m *Matrix) At(i, j int) int {
	if i < 0 || j < 0 || i >= m.n || j >= m.n {
		panic(&IndexError{I: i, J: j, N: m.n})
	}
	return m.cells[i*m.stride+j]
}

func (m *Matrix) set(i, j, v int) { m.cells[i*m.stride+j] = v }

// Score is the optimum over the whole sequence (0 when N < 2).
func (m *Matrix) Score() int {
	if m.n < 2 {
		return 0
	}
	return m.At(0, m.n-1)
}

// Prefix restricts the view to indices [0, x). Scores of a span depend only
// on the symbols inside it, so the view is exactly the matrix of seq[:x].
func (m *Matrix) Prefix(x int) *Matrix {
	if x < 0 || x > m.n {
		panic(&IndexError{I: 0, J: x, N: m.n})
	}
	return &Matrix{n: x, stride: m.stride, cells: m.cells}
}

// Rows copies the view into a dense N×N slice, Undefined cells included.
func (m *Matrix) Rows() [][]int {
	out := make([][]int, m.n)
	for i := range out {
		out[i] = make([]int, m.n)
		copy(out[i], m.cells[i*m.stride:i*m.stride+m.n])
	}
	return out
}

// Fill builds the score matrix for seq. An empty seq yields a 0×0 matrix.
func Fill(seq string, opts Options) *Matrix {
	n := len(seq)
	m := newMatrix(n)

	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			j := i + k
			if j-i < opts.MinLoopLength {
				m.set(i, j, 0)
				continue
			}
			best := m.At(i+1, j)
			if left := m.At(i, j-1); left > best {
				best = left
			}
			if diag := m.At(i+1, j-1) + opts.pair(seq[i], seq[j]); diag > best {
				best = diag
			}
			for t := i; t < j; t++ {
				if split := m.At(i, t) + m.At(t+1, j); split > best {
					best = split
				}
			}
			m.set(i, j, best)
		}
	}
	return m
}
