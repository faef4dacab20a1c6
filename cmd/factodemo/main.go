// Command factodemo walks through the external interface of the facto
// module end to end: generate a certified prime, factor a composite built
// from it, and wrap the certificate's witness base in a confidential
// certificate (a Pedersen commitment, a Bulletproof that the witness lies
// in range, and an ElGamal encryption for later selective disclosure).
package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/takakv/facto"
	"github.com/takakv/facto/algebra"
	"github.com/takakv/facto/certificate"
	"github.com/takakv/facto/confcert"
	"github.com/takakv/facto/group"
	"github.com/takakv/facto/intval"
)

func main() {
	fmt.Println("Certificate generation")
	elem, ok := generateCertificate()
	if !ok {
		return
	}

	fmt.Println()
	fmt.Println("Factoring")
	factorComposite(elem.N)

	fmt.Println()
	fmt.Println("Confidential certificate")
	confidentialCertificateDemo(elem)
}

func generateCertificate() (certificate.Element[intval.U64], bool) {
	n := intval.U64(1_000_003)
	start := time.Now()
	cert, ok := facto.GenerateLucasCertificateU64(n)
	fmt.Println("Prove time:", time.Since(start))
	if !ok {
		fmt.Println(n, "is not prime")
		return certificate.Element[intval.U64]{}, false
	}
	fmt.Println(n, "is certified prime")
	return cert.Get(n)
}

func factorComposite(prime intval.U64) {
	composite := prime * 7
	start := time.Now()
	factors := facto.FactorU64(composite)
	fmt.Println("Factor time:", time.Since(start))
	fmt.Println(composite, "=", factors)
}

// confidentialCertificateDemo commits to, range-proves, and encrypts the
// witness base of elem without revealing the base itself.
func confidentialCertificateDemo(elem certificate.Element[intval.U64]) {
	gp := group.P256()
	h, err := gp.Generator().MapToGroup("factodemo blinding generator")
	if err != nil {
		fmt.Println("failed to derive blinding generator:", err)
		return
	}

	commitment, err := confcert.Commit(elem, h, gp)
	if err != nil {
		fmt.Println("commit failed:", err)
		return
	}
	fmt.Println("committed to witness base (value hidden)")
	fmt.Println("opens correctly:", confcert.Open(commitment, elem, commitment.Randomness(), h, gp))

	upperBound := new(big.Int).SetUint64(uint64(elem.N))
	rangeGroup := algebra.NewSecP256k1Group()
	rpParams, err := confcert.SetupRangeProof(big.NewInt(2), upperBound, rangeGroup)
	if err != nil {
		fmt.Println("range proof setup failed:", err)
		return
	}
	proof, _, err := confcert.ProveBaseInRange(elem, rpParams)
	if err != nil {
		fmt.Println("range proof failed:", err)
		return
	}
	ok, err := confcert.VerifyBaseInRange(proof)
	fmt.Println("range proof verifies:", ok, err)

	skDiscloser, err := rand.Int(rand.Reader, gp.N())
	if err != nil {
		fmt.Println("key generation failed:", err)
		return
	}
	pkDiscloser := gp.Element().BaseScale(skDiscloser)

	ct, _, err := confcert.EncryptWitness(elem, pkDiscloser, gp)
	if err != nil {
		fmt.Println("encryption failed:", err)
		return
	}
	disclosed, ok := confcert.DecryptWitness(ct, skDiscloser, big.NewInt(2), upperBound, gp)
	fmt.Println("discloser recovers witness base:", ok, disclosed)
}
