package millerrabin

import (
	"github.com/takakv/facto/intval"
	"github.com/takakv/facto/montgomery"
)

// DeterministicU64Bases are sufficient to prove or disprove primality for
// every n < 2^64 with certainty: this is the smallest known witness set
// covering the full 64-bit range.
var DeterministicU64Bases = []intval.U64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// IsPrimeU64 runs every deterministic base against n and reports whether n
// is definitely prime.
func IsPrimeU64(n intval.U64, field montgomery.Field[intval.U64]) bool {
	for _, base := range DeterministicU64Bases {
		if base.Cmp(n) >= 0 {
			continue
		}
		if Test[intval.U64](n, base, field) == Composite {
			return false
		}
	}
	return true
}
