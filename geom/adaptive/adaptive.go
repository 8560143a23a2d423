// Package adaptive implements AdaptiveInt(n): a logical integer with a
// static bit budget n that dispatches to the narrowest of three backends —
// a native int32, a native int64, or a geom/bignum.Bignum — chosen from n
// alone.
//
// Go has no value-level generics, so the compile-time, template-parameter
// backend selection this dispatch logically performs becomes a runtime-
// tagged struct here — the same move a build-tag-selected pair of backend
// files makes, just resolved at construction time instead of compile time.
package adaptive

import (
	"fmt"
	"math/big"

	"github.com/dacin21/dacin21-exact-geometry/geom/bignum"
	"github.com/dacin21/dacin21-exact-geometry/geom/geomerrors"
	"github.com/dacin21/dacin21-exact-geometry/internal/opcounters"
	"github.com/dacin21/dacin21-exact-geometry/internal/utils"
)

var _ utils.ToIntConvertible = (*AdaptiveInt)(nil)

type backendKind int

const (
	kindInt32 backendKind = iota
	kindInt64
	kindBignum
)

// AdaptiveInt is a logical integer with declared bit budget Bits(), backed
// by whichever of {int32, int64, *bignum.Bignum} is narrowest but still
// large enough to hold every value in [-2^n, 2^n).
type AdaptiveInt struct {
	bits int
	kind backendKind
	i32  int32
	i64  int64
	bn   *bignum.Bignum
}

func chooseKind(bits int) backendKind {
	switch {
	case bits <= 31:
		return kindInt32
	case bits <= 63:
		return kindInt64
	default:
		return kindBignum
	}
}

func bignumWords(bits int) int {
	w := (bits+63)/64 + 1
	if w < 1 {
		w = 1
	}
	return w
}

// Bits returns n, the declared bit budget.
func (z *AdaptiveInt) Bits() int { return z.bits }

// New constructs an AdaptiveInt(bits) holding v. v must already fit in
// [-2^bits, 2^bits); this is a caller precondition, not runtime checked
// beyond what the chosen backend naturally enforces.
func New(bits int, v int64) *AdaptiveInt {
	geomerrors.Assert(bits > 0, geomerrors.ErrWidthTooSmall)
	z := &AdaptiveInt{bits: bits, kind: chooseKind(bits)}
	switch z.kind {
	case kindInt32:
		geomerrors.Assert(v >= -(1<<31) && v < (1<<31), geomerrors.ErrWidthTooSmall)
		z.i32 = int32(v)
	case kindInt64:
		z.i64 = v
	case kindBignum:
		z.bn = bignum.FromInt64(bignumWords(bits), v)
	}
	return z
}

// Zero returns the additive identity at the given width.
func Zero(bits int) *AdaptiveInt { return New(bits, 0) }

func (z *AdaptiveInt) toInt64() int64 {
	switch z.kind {
	case kindInt32:
		return int64(z.i32)
	case kindInt64:
		return z.i64
	default:
		panic("adaptive: toInt64 called on a bignum-backed value")
	}
}

// toBignum returns a Bignum with exactly words words representing z's value,
// regardless of z's own backend.
func (z *AdaptiveInt) toBignum(words int) *bignum.Bignum {
	if z.kind == kindBignum {
		return bignum.FromBignum(words, z.bn)
	}
	return bignum.FromInt64(words, z.toInt64())
}

// Widen re-expresses z (which must have been constructed or computed at a
// width <= bits) at the wider declared width bits, without changing its
// value.
func Widen(z *AdaptiveInt, bits int) *AdaptiveInt {
	geomerrors.Assert(bits >= z.bits, geomerrors.ErrWidthTooSmall)
	out := &AdaptiveInt{bits: bits, kind: chooseKind(bits)}
	switch out.kind {
	case kindInt32:
		out.i32 = int32(z.toInt64())
	case kindInt64:
		out.i64 = z.toInt64()
	case kindBignum:
		out.bn = z.toBignum(bignumWords(bits))
	}
	return out
}

// Add returns a+b at width max(a.Bits(), b.Bits())+1, the standard
// width-growing contract for addition.
func Add(a, b *AdaptiveInt) *AdaptiveInt {
	outBits := maxInt(a.bits, b.bits) + 1
	return addAt(a, b, outBits)
}

func addAt(a, b *AdaptiveInt, outBits int) *AdaptiveInt {
	out := &AdaptiveInt{bits: outBits, kind: chooseKind(outBits)}
	switch out.kind {
	case kindInt32:
		out.i32 = int32(a.toInt64() + b.toInt64())
	case kindInt64:
		out.i64 = a.toInt64() + b.toInt64()
	case kindBignum:
		opcounters.Increment(opcounters.AddBignumFallback)
		words := bignumWords(outBits)
		out.bn = a.toBignum(words)
		bignum.AddInPlace(out.bn, b.toBignum(words))
	}
	return out
}

// Sub returns a-b at width max(a.Bits(), b.Bits())+1.
func Sub(a, b *AdaptiveInt) *AdaptiveInt {
	outBits := maxInt(a.bits, b.bits) + 1
	out := &AdaptiveInt{bits: outBits, kind: chooseKind(outBits)}
	switch out.kind {
	case kindInt32:
		out.i32 = int32(a.toInt64() - b.toInt64())
	case kindInt64:
		out.i64 = a.toInt64() - b.toInt64()
	case kindBignum:
		opcounters.Increment(opcounters.SubBignumFallback)
		words := bignumWords(outBits)
		out.bn = a.toBignum(words)
		bignum.SubInPlace(out.bn, b.toBignum(words))
	}
	return out
}

// Mul returns a*b at width a.Bits()+b.Bits().
func Mul(a, b *AdaptiveInt) *AdaptiveInt {
	outBits := a.bits + b.bits
	out := &AdaptiveInt{bits: outBits, kind: chooseKind(outBits)}
	switch out.kind {
	case kindInt32:
		out.i32 = int32(a.toInt64() * b.toInt64())
	case kindInt64:
		out.i64 = a.toInt64() * b.toInt64()
	case kindBignum:
		opcounters.Increment(opcounters.MulBignumFallback)
		words := bignumWords(outBits)
		aWords, bWords := bignumWords(a.bits), bignumWords(b.bits)
		out.bn = bignum.Mul(a.toBignum(aWords), b.toBignum(bWords), words)
	}
	return out
}

// AddUnsafe computes z += o in place, assuming z.Bits() is already wide
// enough to hold the true sum — the caller's responsibility, mirroring the
// make-unsafe/widening-operator pairing a caller uses once it has already
// grown the destination to a safe width.
func AddUnsafe(z, o *AdaptiveInt) {
	sum := addAt(z, o, z.bits)
	*z = *sum
}

// SubUnsafe computes z -= o in place under the same width contract as
// AddUnsafe.
func SubUnsafe(z, o *AdaptiveInt) {
	geomerrors.Assert(o.bits <= z.bits, geomerrors.ErrWidthTooSmall)
	out := &AdaptiveInt{bits: z.bits, kind: chooseKind(z.bits)}
	switch out.kind {
	case kindInt32:
		out.i32 = int32(z.toInt64() - o.toInt64())
	case kindInt64:
		out.i64 = z.toInt64() - o.toInt64()
	case kindBignum:
		opcounters.Increment(opcounters.SubBignumFallback)
		words := bignumWords(z.bits)
		out.bn = z.toBignum(words)
		bignum.SubInPlace(out.bn, o.toBignum(words))
	}
	*z = *out
}

// MulUnsafe computes z *= o in place under the same width contract as
// AddUnsafe.
func MulUnsafe(z, o *AdaptiveInt) {
	geomerrors.Assert(o.bits <= z.bits, geomerrors.ErrWidthTooSmall)
	out := &AdaptiveInt{bits: z.bits, kind: chooseKind(z.bits)}
	switch out.kind {
	case kindInt32:
		out.i32 = int32(z.toInt64() * o.toInt64())
	case kindInt64:
		out.i64 = z.toInt64() * o.toInt64()
	case kindBignum:
		opcounters.Increment(opcounters.MulBignumFallback)
		words := bignumWords(z.bits)
		out.bn = bignum.Mul(z.toBignum(words), o.toBignum(words), words)
	}
	*z = *out
}

// Shl returns a<<s at width a.Bits()+64. s must not exceed 64; since the
// output width is always >= 64, the result always uses the bignum backend.
func Shl(a *AdaptiveInt, s uint) *AdaptiveInt {
	geomerrors.Assert(s <= 64, geomerrors.ErrWidthTooSmall)
	outBits := a.bits + 64
	words := bignumWords(outBits)
	out := &AdaptiveInt{bits: outBits, kind: kindBignum, bn: a.toBignum(words)}
	out.bn.ShiftLeft(s)
	return out
}

// Shr returns a>>s (arithmetic, sign-extending), preserving a's width.
func Shr(a *AdaptiveInt, s uint) *AdaptiveInt {
	out := &AdaptiveInt{bits: a.bits, kind: a.kind}
	switch a.kind {
	case kindInt32:
		out.i32 = a.i32 >> s
	case kindInt64:
		out.i64 = a.i64 >> s
	case kindBignum:
		out.bn = a.bn.Clone()
		out.bn.ShiftRight(s)
	}
	return out
}

// Div returns a/d (truncating toward zero), preserving a's width. d == 0
// panics with ErrDivisionByZero.
func Div(a *AdaptiveInt, d int64) *AdaptiveInt {
	geomerrors.Assert(d != 0, geomerrors.ErrDivisionByZero)
	out := &AdaptiveInt{bits: a.bits, kind: a.kind}
	switch a.kind {
	case kindInt32:
		out.i32 = a.i32 / int32(d)
	case kindInt64:
		out.i64 = a.i64 / d
	case kindBignum:
		out.bn = a.bn.Clone()
		abs := d
		neg := d < 0
		if neg {
			abs = -d
		}
		rem := bignum.DivModSmall(out.bn, uint64(abs))
		_ = rem
		if neg {
			out.bn.Negate()
		}
	}
	return out
}

// Mod returns a%d (remainder, sign following the dividend), preserving a's
// width. An earlier draft of this operation, copied too literally from a
// reference implementation, returned the quotient instead of the remainder;
// this is the corrected version.
func Mod(a *AdaptiveInt, d int64) *AdaptiveInt {
	geomerrors.Assert(d != 0, geomerrors.ErrDivisionByZero)
	out := &AdaptiveInt{bits: a.bits, kind: a.kind}
	switch a.kind {
	case kindInt32:
		out.i32 = a.i32 % int32(d)
	case kindInt64:
		out.i64 = a.i64 % d
	case kindBignum:
		abs := d
		if abs < 0 {
			abs = -abs
		}
		work := a.bn.Clone()
		rem := bignum.DivModSmall(work, uint64(abs))
		out.bn = bignum.FromInt64(bignumWords(a.bits), int64(rem))
		if a.bn.IsNegative() {
			out.bn.Negate()
		}
	}
	return out
}

// Neg returns -a, preserving a's width.
func Neg(a *AdaptiveInt) *AdaptiveInt {
	out := &AdaptiveInt{bits: a.bits, kind: a.kind}
	switch a.kind {
	case kindInt32:
		out.i32 = -a.i32
	case kindInt64:
		out.i64 = -a.i64
	case kindBignum:
		out.bn = a.bn.Clone()
		out.bn.Negate()
	}
	return out
}

// Compare returns -1/0/+1 for a<b, a==b, a>b. a and b may have different
// declared widths: the narrower operand is conceptually widened to the
// wider's representable range first — no bits are ever materialized for
// that widening unless one side is already bignum-backed.
func Compare(a, b *AdaptiveInt) int {
	if a.kind == kindBignum || b.kind == kindBignum {
		opcounters.Increment(opcounters.CompareBignumFallback)
		words := maxInt(bignumWords(a.bits), bignumWords(b.bits))
		return bignum.Compare(a.toBignum(words), b.toBignum(words))
	}
	av, bv := a.toInt64(), b.toInt64()
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	default:
		return 0
	}
}

// Sign returns -1/0/+1: the backend's own sign if it exposes one directly,
// else a compare against zero.
func (z *AdaptiveInt) Sign() int {
	switch z.kind {
	case kindBignum:
		return z.bn.Sign()
	default:
		v := z.toInt64()
		switch {
		case v < 0:
			return -1
		case v > 0:
			return 1
		default:
			return 0
		}
	}
}

// IsZero reports whether z represents the value 0.
func (z *AdaptiveInt) IsZero() bool { return z.Sign() == 0 }

// ToBigInt converts z to an independent *big.Int, used only as a reference
// oracle in tests (delegates to geom/bignum.ToBigInt for the bignum backend).
func (z *AdaptiveInt) ToBigInt() *big.Int {
	switch z.kind {
	case kindBignum:
		return z.bn.ToBigInt()
	default:
		return big.NewInt(z.toInt64())
	}
}

// FromBigInt constructs an AdaptiveInt(bits) with the same value as x, which
// must fit in [-2^bits, 2^bits); used by tests and by point.ParsePoint.
func FromBigInt(bits int, x *big.Int) *AdaptiveInt {
	if x.IsInt64() {
		return New(bits, x.Int64())
	}
	out := &AdaptiveInt{bits: bits, kind: chooseKind(bits)}
	geomerrors.Assert(out.kind == kindBignum, geomerrors.ErrWidthTooSmall)
	out.bn = bignum.FromBigInt(bignumWords(bits), x)
	return out
}

// String renders z as a signed decimal integer.
func (z *AdaptiveInt) String() string {
	switch z.kind {
	case kindBignum:
		return z.bn.String()
	default:
		return fmt.Sprintf("%d", z.toInt64())
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
