// Package gf2 provides arbitrary-precision polynomial arithmetic over
// GF(2), the binary field. A polynomial is a bit pattern: bit i is the
// coefficient of x^i. Coefficients exchange with the bitvec view layer
// only through word slices, never through the big-integer internals.
package gf2

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/hupe1980/bitvec"
)

// ErrDivisionByZero is returned by Mod and GCD for a zero divisor.
var ErrDivisionByZero = errors.New("gf2: division by zero polynomial")

// Poly is a polynomial over GF(2), backed by a big integer for
// arbitrary precision.
type Poly struct {
	z big.Int
}

// FromWords builds a polynomial from little-endian coefficient words:
// bit i of ws is the coefficient of x^i.
func FromWords(ws []uint64) *Poly {
	buf := make([]byte, len(ws)*8)
	for i, w := range ws {
		binary.BigEndian.PutUint64(buf[(len(ws)-1-i)*8:], w)
	}
	p := new(Poly)
	p.z.SetBytes(buf)
	return p
}

// FromVec builds a polynomial from a bit view via the word-clone
// contract.
func FromVec(v bitvec.Vec) *Poly {
	return FromWords(v.CloneWords())
}

// Words returns the coefficients as little-endian words, trimmed to the
// polynomial's degree. The zero polynomial yields an empty slice.
func (p *Poly) Words() []uint64 {
	n := (p.z.BitLen() + 63) / 64
	buf := make([]byte, n*8)
	p.z.FillBytes(buf)
	ws := make([]uint64, n)
	for i := range ws {
		ws[i] = binary.BigEndian.Uint64(buf[(n-1-i)*8:])
	}
	return ws
}

// Degree returns the polynomial's degree, or -1 for the zero
// polynomial.
func (p *Poly) Degree() int {
	return p.z.BitLen() - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool {
	return p.z.Sign() == 0
}

// Equal reports whether p and q have identical coefficients.
func (p *Poly) Equal(q *Poly) bool {
	return p.z.Cmp(&q.z) == 0
}

// Add returns a + b. Over GF(2) addition is coefficient-wise XOR, and
// subtraction is the same operation.
func Add(a, b *Poly) *Poly {
	r := new(Poly)
	r.z.Xor(&a.z, &b.z)
	return r
}

// Mul returns a * b: carry-less shift-and-add, accumulating a<<i for
// every set coefficient i of b.
func Mul(a, b *Poly) *Poly {
	r := new(Poly)
	t := new(big.Int)
	for i := 0; i < b.z.BitLen(); i++ {
		if b.z.Bit(i) == 1 {
			t.Lsh(&a.z, uint(i))
			r.z.Xor(&r.z, t)
		}
	}
	return r
}

// Mod returns the remainder of a divided by b: b, shifted to match the
// leading term, is subtracted (XORed) until the degree drops below b's.
func Mod(a, b *Poly) (*Poly, error) {
	if b.IsZero() {
		return nil, ErrDivisionByZero
	}
	r := new(Poly)
	r.z.Set(&a.z)
	db := b.z.BitLen()
	t := new(big.Int)
	for r.z.BitLen() >= db {
		t.Lsh(&b.z, uint(r.z.BitLen()-db))
		r.z.Xor(&r.z, t)
	}
	return r, nil
}

// GCD returns the greatest common divisor of a and b by Euclid's
// algorithm. GCD(0, 0) is an error.
func GCD(a, b *Poly) (*Poly, error) {
	if a.IsZero() && b.IsZero() {
		return nil, ErrDivisionByZero
	}
	x := new(Poly)
	x.z.Set(&a.z)
	y := new(Poly)
	y.z.Set(&b.z)
	for !y.IsZero() {
		r, err := Mod(x, y)
		if err != nil {
			return nil, err
		}
		x, y = y, r
	}
	return x, nil
}

// String renders the polynomial in descending-degree form, e.g.
// "x^3 + x + 1". The zero polynomial renders as "0".
func (p *Poly) String() string {
	if p.IsZero() {
		return "0"
	}
	var terms []string
	for i := p.z.BitLen() - 1; i >= 0; i-- {
		if p.z.Bit(i) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, fmt.Sprintf("x^%d", i))
		}
	}
	return strings.Join(terms, " + ")
}
