package ops

import "math/cmplx"

// Tolerances for approximate matrix equality, matching the conventions of
// the numeric stack the commutation rules were validated against.
const (
	AbsTol = 1e-8
	RelTol = 1e-5
)

// Matrix is a dense complex matrix. Gate matrices are square with
// dimension 2^n for an n-wire operation.
type Matrix [][]complex128

// NewMatrix returns a zeroed n x n matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]complex128, n)
	}
	return m
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

// Dim returns the number of rows.
func (m Matrix) Dim() int { return len(m) }

// Mul returns the matrix product m * other.
// Both matrices must be square with the same dimension.
func (m Matrix) Mul(other Matrix) Matrix {
	n := len(m)
	out := NewMatrix(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			a := m[i][k]
			if a == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i][j] += a * other[k][j]
			}
		}
	}
	return out
}

// Dagger returns the conjugate transpose of m.
func (m Matrix) Dagger() Matrix {
	n := len(m)
	out := NewMatrix(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[j][i] = cmplx.Conj(m[i][j])
		}
	}
	return out
}

// Kron returns the Kronecker product m ⊗ other.
func (m Matrix) Kron(other Matrix) Matrix {
	n, p := len(m), len(other)
	out := NewMatrix(n * p)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m[i][j] == 0 {
				continue
			}
			for k := 0; k < p; k++ {
				for l := 0; l < p; l++ {
					out[i*p+k][j*p+l] = m[i][j] * other[k][l]
				}
			}
		}
	}
	return out
}

// BlockDiag assembles a block-diagonal matrix from the given blocks.
// Zero-dimension blocks are skipped.
func BlockDiag(blocks ...Matrix) Matrix {
	total := 0
	for _, b := range blocks {
		total += len(b)
	}
	out := NewMatrix(total)
	off := 0
	for _, b := range blocks {
		for i := range b {
			copy(out[off+i][off:], b[i])
		}
		off += len(b)
	}
	return out
}

// EqualApprox reports whether m and other agree elementwise within the
// package tolerances. A difference just outside tolerance counts as not
// equal; callers relying on this for commutation decisions therefore fail
// closed.
func (m Matrix) EqualApprox(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		for j := range m[i] {
			diff := cmplx.Abs(m[i][j] - other[i][j])
			if diff > AbsTol+RelTol*cmplx.Abs(other[i][j]) {
				return false
			}
		}
	}
	return true
}

// Embed expands a gate matrix acting on the given wire positions into the
// full 2^n matrix over an n-wire register, with identity on the remaining
// wires. Wire 0 is the most significant bit of the basis-state index.
// The matrix dimension must be 2^len(pos) and every position in [0, n).
func Embed(m Matrix, pos []int, n int) Matrix {
	dim := 1 << n
	out := NewMatrix(dim)
	sub := func(idx int) int {
		s := 0
		for _, p := range pos {
			s = s<<1 | (idx >> (n - 1 - p) & 1)
		}
		return s
	}
	rest := func(idx int) int {
		r := 0
		for q := 0; q < n; q++ {
			onOp := false
			for _, p := range pos {
				if p == q {
					onOp = true
					break
				}
			}
			if !onOp {
				r = r<<1 | (idx >> (n - 1 - q) & 1)
			}
		}
		return r
	}
	for i := 0; i < dim; i++ {
		ri := rest(i)
		si := sub(i)
		for j := 0; j < dim; j++ {
			if rest(j) != ri {
				continue
			}
			out[i][j] = m[si][sub(j)]
		}
	}
	return out
}

// Commute reports whether a*b equals b*a within tolerance.
func Commute(a, b Matrix) bool {
	return a.Mul(b).EqualApprox(b.Mul(a))
}
