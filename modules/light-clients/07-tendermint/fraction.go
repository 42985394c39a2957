package tendermint

import (
	cmtmath "github.com/cometbft/cometbft/libs/math"
	"github.com/cometbft/cometbft/light"
)

// Fraction is the trust threshold of the light client: the minimum fraction of
// the trusted validator set voting power that must sign a new header.
type Fraction struct {
	Numerator   uint64
	Denominator uint64
}

// DefaultTrustLevel is the tendermint light client default trust level
var DefaultTrustLevel = NewFractionFromTm(light.DefaultTrustLevel)

// NewFractionFromTm returns a new Fraction instance from a cmtmath.Fraction
func NewFractionFromTm(f cmtmath.Fraction) Fraction {
	return Fraction{
		Numerator:   f.Numerator,
		Denominator: f.Denominator,
	}
}

// ToTendermint converts Fraction to cmtmath.Fraction
func (f Fraction) ToTendermint() cmtmath.Fraction {
	return cmtmath.Fraction{
		Numerator:   f.Numerator,
		Denominator: f.Denominator,
	}
}
