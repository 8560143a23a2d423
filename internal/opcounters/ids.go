package opcounters

import "github.com/dacin21/dacin21-exact-geometry/internal/callcounters"

// Counter ids registered for geom/adaptive's backend dispatch. Kept in their
// own file (unconditionally compiled) so both the active and inactive
// builds, and every caller, refer to the same identifiers regardless of the
// opcounters build tag.
const (
	AddBignumFallback     callcounters.Id = "AdaptiveInt_Add_Bignum"
	SubBignumFallback     callcounters.Id = "AdaptiveInt_Sub_Bignum"
	MulBignumFallback     callcounters.Id = "AdaptiveInt_Mul_Bignum"
	CompareBignumFallback callcounters.Id = "AdaptiveInt_Compare_Bignum"
)

func init() {
	callcounters.CreateHierarchicalCallCounter(AddBignumFallback, "Add (bignum backend)", "")
	callcounters.CreateHierarchicalCallCounter(SubBignumFallback, "Sub (bignum backend)", "")
	callcounters.CreateHierarchicalCallCounter(MulBignumFallback, "Mul (bignum backend)", "")
	callcounters.CreateHierarchicalCallCounter(CompareBignumFallback, "Compare (bignum backend)", "")
}
