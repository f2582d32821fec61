package linear

import (
	"math"
	"math/big"
)

// prec is the mantissa width, in bits, used for moment accumulation.
// float64 carries 53 mantissa bits, so Σx² over keys approaching 2^64
// would otherwise shed the low bits that decide the slope.
const prec = 128

// Fit computes the closed-form ordinary least squares coefficients a and b
// minimizing the squared error of y ≈ a·x + b over the paired samples.
// xs and ys must have the same length.
//
// An empty input yields (0, 0). When the denominator n·Σx² − (Σx)² is
// numerically zero (all x equal), Fit falls back to a horizontal line
// through the mean of y instead of dividing by zero.
func Fit(xs []uint64, ys []int) (a, b float64) {
	n := len(xs)
	if n == 0 {
		return 0, 0
	}

	sumX := new(big.Float).SetPrec(prec)
	sumY := new(big.Float).SetPrec(prec)
	sumXX := new(big.Float).SetPrec(prec)
	sumXY := new(big.Float).SetPrec(prec)

	xi := new(big.Float).SetPrec(prec)
	yi := new(big.Float).SetPrec(prec)
	tmp := new(big.Float).SetPrec(prec)

	for i, x := range xs {
		xi.SetUint64(x)
		yi.SetInt64(int64(ys[i]))
		sumX.Add(sumX, xi)
		sumY.Add(sumY, yi)
		sumXX.Add(sumXX, tmp.Mul(xi, xi))
		sumXY.Add(sumXY, tmp.Mul(xi, yi))
	}

	nf := new(big.Float).SetPrec(prec).SetInt64(int64(n))

	denom := new(big.Float).SetPrec(prec).Mul(nf, sumXX)
	denom.Sub(denom, tmp.Mul(sumX, sumX))
	if df, _ := denom.Float64(); math.Abs(df) < 1e-12 {
		mean := new(big.Float).SetPrec(prec).Quo(sumY, nf)
		b, _ = mean.Float64()
		return 0, b
	}

	num := new(big.Float).SetPrec(prec).Mul(nf, sumXY)
	num.Sub(num, tmp.Mul(sumX, sumY))

	af := new(big.Float).SetPrec(prec).Quo(num, denom)

	bf := new(big.Float).SetPrec(prec).Mul(af, sumX)
	bf.Sub(sumY, bf)
	bf.Quo(bf, nf)

	a, _ = af.Float64()
	b, _ = bf.Float64()
	return a, b
}
