package utils

import "math/big"

// ToIntConvertible is satisfied by any width-tagged integer type that can
// render itself as an unbounded math/big.Int — bignum.Bignum and
// adaptive.AdaptiveInt both do. It lets cross-package comparisons (e.g. in
// tests that check a bignum-backed and an int64-backed AdaptiveInt agree)
// be written without either side importing the other's concrete type.
type ToIntConvertible interface {
	ToBigInt() *big.Int
}

// IsEqualAsBigInt compares x and y by value, independent of which backend
// or word width each happens to use.
func IsEqualAsBigInt(x, y ToIntConvertible) bool {
	return x.ToBigInt().Cmp(y.ToBigInt()) == 0
}
