package bignum

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randBignum(r *rand.Rand, words int) *Bignum {
	z := New(words)
	for i := range z.words {
		z.words[i] = r.Uint64()
	}
	return z
}

func TestAddMatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := randBignum(r, 4)
		b := randBignum(r, 4)
		want := new(big.Int).Add(a.ToBigInt(), b.ToBigInt())
		want = wrapSigned(want, 4)

		got := a.Clone()
		AddInPlace(got, b)
		require.Equal(t, want, got.ToBigInt())
	}
}

func TestSubMatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := randBignum(r, 4)
		b := randBignum(r, 4)
		want := new(big.Int).Sub(a.ToBigInt(), b.ToBigInt())
		want = wrapSigned(want, 4)

		got := a.Clone()
		SubInPlace(got, b)
		require.Equal(t, want, got.ToBigInt())
	}
}

func TestMulMatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a := randBignum(r, 2)
		b := randBignum(r, 2)
		want := new(big.Int).Mul(a.ToBigInt(), b.ToBigInt())
		want = wrapSigned(want, 4)

		got := Mul(a, b, 4)
		require.Equal(t, want, got.ToBigInt())
	}
}

func TestNegateMatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 200; i++ {
		a := randBignum(r, 3)
		want := new(big.Int).Neg(a.ToBigInt())
		want = wrapSigned(want, 3)

		got := a.Clone()
		got.Negate()
		require.Equal(t, want, got.ToBigInt())
	}
}

func TestCompareTotalOrder(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		a := randBignum(r, 3)
		b := randBignum(r, 3)
		want := a.ToBigInt().Cmp(b.ToBigInt())
		got := Compare(a, b)
		require.Equal(t, sign(want), sign(got))
	}
}

func TestCompareCrossWidth(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 100; i++ {
		a := randBignum(r, 2)
		wide := FromBignum(4, a)
		require.Equal(t, 0, Compare(a, wide))
	}
}

func TestShiftLeftZeroFillsLowWords(t *testing.T) {
	z := FromInt64(3, -1)
	z.ShiftLeft(70)
	// -1 shifted left by 70 bits in a 3*64=192 bit space: low 70 bits are
	// zero, everything above is still all-ones (truncated).
	words := z.Words()
	require.Equal(t, uint64(0), words[0])
	require.Equal(t, uint64(0xFFFFFFFFFFFFFFC0), words[1])
}

func TestShiftRightSignExtends(t *testing.T) {
	z := FromInt64(3, -1)
	z.ShiftRight(70)
	words := z.Words()
	for _, w := range words {
		require.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), w)
	}
}

func TestShiftLeftRightRoundTripPositive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		a := FromInt64(4, r.Int63n(1<<40))
		shifted := a.Clone()
		shifted.ShiftLeft(20)
		shifted.ShiftRight(20)
		require.Equal(t, 0, Compare(a, shifted))
	}
}

func TestDivModSmallMatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(8))
	for i := 0; i < 200; i++ {
		a := FromInt64(3, r.Int63())
		if r.Intn(2) == 0 {
			a.Negate()
		}
		d := r.Uint64()%1000000 + 1

		wantQ, wantR := new(big.Int).QuoRem(a.ToBigInt(), new(big.Int).SetUint64(d), new(big.Int))

		got := a.Clone()
		rem := DivModSmall(got, d)

		require.Equal(t, wantQ, got.ToBigInt())
		wantRem := wantR.Int64()
		if wantRem < 0 {
			wantRem = -wantRem
		}
		require.Equal(t, uint64(wantRem), rem)
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		a := randBignum(r, 3)
		s := a.String()
		back, err := Parse(s, 3)
		require.NoError(t, err)
		require.Equal(t, 0, Compare(a, back))
	}
}

func TestStringMatchesBigInt(t *testing.T) {
	r := rand.New(rand.NewSource(10))
	for i := 0; i < 200; i++ {
		a := randBignum(r, 2)
		require.Equal(t, a.ToBigInt().String(), a.String())
	}
}

func TestStringMinValue(t *testing.T) {
	z := New(2)
	z.Words()[1] = 1 << 63
	require.True(t, z.IsNegative())
	want := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	require.Equal(t, want.String(), z.String())
}

func TestParseRejectsLeadingZero(t *testing.T) {
	_, err := Parse("007", 2)
	require.Error(t, err)
}

func TestParseRejectsNegativeZero(t *testing.T) {
	_, err := Parse("-0", 2)
	require.Error(t, err)
}

func TestParseAcceptsZero(t *testing.T) {
	z, err := Parse("0", 2)
	require.NoError(t, err)
	require.Equal(t, 0, z.Sign())
}

func TestDivModSmallZeroPanics(t *testing.T) {
	require.Panics(t, func() {
		z := FromInt64(2, 5)
		DivModSmall(z, 0)
	})
}

func TestFromBignumWidensSignExtends(t *testing.T) {
	a := FromInt64(1, -5)
	wide := FromBignum(4, a)
	require.Equal(t, int64(-5), wide.ToBigInt().Int64())
}

func TestFromBignumNarrowsTruncates(t *testing.T) {
	a := FromInt64(4, 300)
	narrow := FromBignum(1, a)
	require.Equal(t, int64(300), narrow.ToBigInt().Int64())
}

// wrapSigned reduces x modulo 2^(64*words), mapped back into the signed
// two's-complement range, matching what an in-place fixed-width operation
// would produce.
func wrapSigned(x *big.Int, words int) *big.Int {
	bits := uint(64 * words)
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	y := new(big.Int).Mod(x, mod)
	if y.Sign() < 0 {
		y.Add(y, mod)
	}
	half := new(big.Int).Lsh(big.NewInt(1), bits-1)
	if y.Cmp(half) >= 0 {
		y.Sub(y, mod)
	}
	return y
}

func TestEqualAcrossWidths(t *testing.T) {
	a := FromInt64(2, -5)
	wide := FromBignum(6, a)
	require.True(t, a.Equal(wide))
	require.True(t, wide.Equal(a))
	require.False(t, a.Equal(FromInt64(2, -6)))
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
