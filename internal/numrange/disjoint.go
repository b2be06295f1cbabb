package numrange

import "math/big"

// Disjoint reports whether two progressions share no element.
//
// Both progressions are rescaled by a common power of ten so that their
// starts and steps are integers. A common element exists iff the congruence
// x = startA (mod stepA), x = startB (mod stepB) is solvable, which requires
// gcd(stepA, stepB) to divide startB - startA. The smallest solution not
// below either start is then computed with the extended Euclidean relation
// and checked against both inclusive ends.
func Disjoint(a, b Progression) bool {
	if a.Len() == 0 || b.Len() == 0 {
		return true
	}

	scale := maxScale(a, b)
	a1 := scaled(a.Start(), scale)
	aEnd := scaled(a.End(), scale)
	d1 := scaled(a.Step(), scale)
	b1 := scaled(b.Start(), scale)
	bEnd := scaled(b.End(), scale)
	d2 := scaled(b.Step(), scale)

	diff := new(big.Int).Sub(b1, a1)
	g := new(big.Int).GCD(nil, nil, d1, d2)
	if new(big.Int).Mod(diff, g).Sign() != 0 {
		return true
	}

	// d1*t = diff (mod d2) has solution t0 = (diff/g) * inv(d1/g) mod (d2/g).
	d1g := new(big.Int).Quo(d1, g)
	d2g := new(big.Int).Quo(d2, g)
	diffG := new(big.Int).Quo(diff, g)
	t0 := big.NewInt(0)
	if d2g.Cmp(big.NewInt(1)) > 0 {
		inv := new(big.Int).ModInverse(d1g, d2g)
		t0.Mod(t0.Mul(diffG, inv), d2g)
	}
	x := new(big.Int).Add(a1, new(big.Int).Mul(d1, t0))

	// x satisfies both congruences and x >= a1. Lift by the combined period
	// until it also clears b1.
	period := new(big.Int).Mul(d1g, d2)
	if x.Cmp(b1) < 0 {
		deficit := new(big.Int).Sub(b1, x)
		steps := ceilDiv(deficit, period)
		x.Add(x, steps.Mul(steps, period))
	}

	return x.Cmp(aEnd) > 0 || x.Cmp(bEnd) > 0
}

func maxScale(a, b Progression) int {
	scale := 0
	for _, n := range []Number{a.Start(), a.Step(), a.End(), b.Start(), b.Step(), b.End()} {
		if s := n.Scale(); s > scale {
			scale = s
		}
	}
	return scale
}

// scaled returns n * 10^scale as an integer; scale must cover n's fraction.
func scaled(n Number, scale int) *big.Int {
	v := n.Rat()
	v.Mul(v, new(big.Rat).SetInt(pow10(scale)))
	return new(big.Int).Quo(v.Num(), v.Denom())
}

func ceilDiv(num, den *big.Int) *big.Int {
	quo, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if rem.Sign() > 0 {
		quo.Add(quo, big.NewInt(1))
	}
	return quo
}
