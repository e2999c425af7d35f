package gf2

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitvec"
)

// Polynomials as coefficient bit patterns: bit i = coefficient of x^i.
var (
	one     = []uint64{0b1}    // 1
	xPlus1  = []uint64{0b11}   // x + 1
	x2x1    = []uint64{0b111}  // x^2 + x + 1
	x3Plus1 = []uint64{0b1001} // x^3 + 1
	x2Plus1 = []uint64{0b101}  // x^2 + 1
)

func TestPoly_Degree(t *testing.T) {
	require.Equal(t, -1, FromWords(nil).Degree())
	require.Equal(t, 0, FromWords(one).Degree())
	require.Equal(t, 1, FromWords(xPlus1).Degree())
	require.Equal(t, 3, FromWords(x3Plus1).Degree())
	require.Equal(t, 130, FromWords([]uint64{0, 0, 0b100}).Degree())
}

func TestPoly_WordsRoundTrip(t *testing.T) {
	ws := []uint64{0xDEADBEEF, 0, 0x12345678}
	p := FromWords(ws)
	require.Equal(t, ws, p.Words())

	// Trailing zero words are trimmed.
	require.Equal(t, []uint64{0b11}, FromWords([]uint64{0b11, 0, 0}).Words())
	require.Empty(t, FromWords(nil).Words())
}

func TestPoly_FromVec(t *testing.T) {
	v := bitvec.New(70)
	v.SetBit(0, true)
	v.SetBit(69, true)

	p := FromVec(v.RO())
	require.Equal(t, 69, p.Degree())
	require.Equal(t, []uint64{1, 1 << 5}, p.Words())
}

func TestAdd(t *testing.T) {
	a := FromWords(x3Plus1)
	b := FromWords(xPlus1)

	// Addition is XOR: (x^3 + 1) + (x + 1) = x^3 + x.
	require.Equal(t, []uint64{0b1010}, Add(a, b).Words())

	// Characteristic 2: p + p = 0.
	require.True(t, Add(a, a).IsZero())
}

func TestMul(t *testing.T) {
	// (x + 1)(x^2 + x + 1) = x^3 + 1 over GF(2).
	got := Mul(FromWords(xPlus1), FromWords(x2x1))
	require.True(t, got.Equal(FromWords(x3Plus1)))

	// Multiplication by zero and one.
	require.True(t, Mul(FromWords(x3Plus1), FromWords(nil)).IsZero())
	require.True(t, Mul(FromWords(x3Plus1), FromWords(one)).Equal(FromWords(x3Plus1)))

	// Cross-word carry-less product: x^63 * x = x^64.
	got = Mul(FromWords([]uint64{1 << 63}), FromWords([]uint64{0b10}))
	require.Equal(t, []uint64{0, 1}, got.Words())
}

func TestMod(t *testing.T) {
	// x + 1 divides x^3 + 1, so the remainder is zero.
	r, err := Mod(FromWords(x3Plus1), FromWords(xPlus1))
	require.NoError(t, err)
	require.True(t, r.IsZero())

	// x^2 + 1 mod (x^2 + x + 1) = x.
	r, err = Mod(FromWords(x2Plus1), FromWords(x2x1))
	require.NoError(t, err)
	require.Equal(t, []uint64{0b10}, r.Words())

	_, err = Mod(FromWords(x2Plus1), FromWords(nil))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestGCD(t *testing.T) {
	// x^3 + 1 = (x + 1)(x^2 + x + 1); x^2 + 1 = (x + 1)^2.
	g, err := GCD(FromWords(x3Plus1), FromWords(x2Plus1))
	require.NoError(t, err)
	require.True(t, g.Equal(FromWords(xPlus1)))

	// Coprime polynomials: gcd(x^2 + x + 1, x + 1) = 1.
	g, err = GCD(FromWords(x2x1), FromWords(xPlus1))
	require.NoError(t, err)
	require.True(t, g.Equal(FromWords(one)))

	// gcd(p, 0) = p.
	g, err = GCD(FromWords(x3Plus1), FromWords(nil))
	require.NoError(t, err)
	require.True(t, g.Equal(FromWords(x3Plus1)))

	_, err = GCD(FromWords(nil), FromWords(nil))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPoly_String(t *testing.T) {
	require.Equal(t, "0", FromWords(nil).String())
	require.Equal(t, "1", FromWords(one).String())
	require.Equal(t, "x + 1", FromWords(xPlus1).String())
	require.Equal(t, "x^3 + 1", FromWords(x3Plus1).String())
	require.Equal(t, "x^2 + x + 1", FromWords(x2x1).String())
}
