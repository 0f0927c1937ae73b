package explain

import (
	"math"
)

// surrogateFit is the outcome of a weighted elastic-net regression.
type surrogateFit struct {
	Coefs     []float64
	Intercept float64
	// Degraded marks a best-effort result: the solver hit its iteration
	// budget or the design matrix was rank-deficient.
	Degraded bool
}

// fitSurrogate fits y ~ intercept + Z*beta by coordinate descent, where Z is
// a binary presence matrix stored column-wise (for each feature, the sample
// indices where it is 1). Each sample contributes with its locality weight.
// The L1 penalty is applied by soft thresholding, the L2 penalty enters the
// update denominator, the intercept is unpenalized.
//
// A rank-deficient system never fails: columns with zero weighted mass keep
// a zero coefficient and the result is flagged degraded instead.
func fitSurrogate(columns [][]int, y, weights []float64, nFeatures int, l1, l2 float64, maxIter int, tol float64) surrogateFit {
	n := len(y)

	var totalWeight float64
	for _, w := range weights {
		totalWeight += w
	}
	if totalWeight == 0 {
		// every sample is infinitely far from the original input
		return surrogateFit{Coefs: make([]float64, nFeatures), Degraded: true}
	}

	// per-column weighted mass: sum of w_i over samples where z_ij = 1;
	// since z is binary this is also the weighted sum of squares
	mass := make([]float64, nFeatures)
	degraded := false
	for j := 0; j < nFeatures; j++ {
		for _, i := range columns[j] {
			mass[j] += weights[i]
		}
		if mass[j] == 0 {
			degraded = true
		}
	}

	beta := make([]float64, nFeatures)
	var intercept float64

	// residuals r_i = y_i - intercept - z_i . beta; beta starts at zero
	residuals := make([]float64, n)
	copy(residuals, y)

	converged := false
	for iter := 0; iter < maxIter; iter++ {
		var maxChange float64

		// intercept step
		var weightedResidual float64
		for i, r := range residuals {
			weightedResidual += weights[i] * r
		}
		shift := weightedResidual / totalWeight
		intercept += shift
		for i := range residuals {
			residuals[i] -= shift
		}
		if s := math.Abs(shift); s > maxChange {
			maxChange = s
		}

		for j := 0; j < nFeatures; j++ {
			if mass[j] == 0 {
				continue
			}
			var rho float64
			for _, i := range columns[j] {
				rho += weights[i] * (residuals[i] + beta[j])
			}
			updated := softThreshold(rho, l1) / (mass[j] + l2)

			if delta := updated - beta[j]; delta != 0 {
				for _, i := range columns[j] {
					residuals[i] -= delta
				}
				beta[j] = updated
				if d := math.Abs(delta); d > maxChange {
					maxChange = d
				}
			}
		}

		if maxChange < tol {
			converged = true
			break
		}
	}

	return surrogateFit{
		Coefs:     beta,
		Intercept: intercept,
		Degraded:  degraded || !converged,
	}
}

func softThreshold(rho, lambda float64) float64 {
	switch {
	case rho > lambda:
		return rho - lambda
	case rho < -lambda:
		return rho + lambda
	}
	return 0
}
