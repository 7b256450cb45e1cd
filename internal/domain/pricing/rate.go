package pricing

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

var ErrInvalidRate = errors.New("rate must be a decimal fraction between 0 and 1 with at most 4 decimal places")

const basisPointsPerUnit = 10000

// Rate is a non-negative fraction held in basis points, so 0.12 is 1200.
type Rate int64

func ParseRate(s string) (Rate, error) {
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return 0, ErrInvalidRate
	}
	r.Mul(r, big.NewRat(basisPointsPerUnit, 1))
	if !r.IsInt() || r.Sign() < 0 || !r.Num().IsInt64() || r.Num().Int64() > basisPointsPerUnit {
		return 0, ErrInvalidRate
	}
	return Rate(r.Num().Int64()), nil
}

func MustParseRate(s string) Rate {
	r, err := ParseRate(s)
	if err != nil {
		panic(err)
	}
	return r
}

// RateFromPercent converts a percentage expressed in basis points of a
// percent (hundredths), so 12.5% is RateFromPercent(1250).
func RateFromPercent(hundredths int64) Rate {
	return Rate(hundredths)
}

func (r Rate) BasisPoints() int64 { return int64(r) }

// Apply multiplies amount by the rate and rounds half up to a whole unit.
func (r Rate) Apply(amount int64) int64 {
	if amount < 0 {
		return -r.Apply(-amount)
	}
	return (amount*int64(r) + basisPointsPerUnit/2) / basisPointsPerUnit
}

func (r Rate) String() string {
	return strconv.FormatFloat(float64(r)/basisPointsPerUnit, 'f', -1, 64)
}
