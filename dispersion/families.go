package dispersion

import (
	"math"
)

// herzbergerOffset is the fixed pole location, in um^2, of the Herzberger
// formula.
const herzbergerOffset = 0.028

// pole returns c*num/den. A term with a zero leading coefficient contributes
// exactly zero, even where den vanishes.
func pole(c, num, den float64) float64 {
	if c == 0 { return 0 }
	return c * num / den
}

// power returns c*x^e, or zero if c is zero.
func power(c, x, e float64) float64 {
	if c == 0 { return 0 }
	return c * math.Pow(x, e)
}

// n^2 - 1 = c0 + sum_j c(2j-1) wl^2 / (wl^2 - c(2j)^2)
func sellmeier(wl float64, c []float64) float64 {
	wl2 := wl*wl
	n2 := 1 + c[0]
	for j := 1; j <= 8; j++ {
		n2 += pole(c[2*j-1], wl2, wl2 - c[2*j]*c[2*j])
	}
	return math.Sqrt(n2)
}

// n^2 - 1 = c0 + sum_j c(2j-1) wl^2 / (wl^2 - c(2j))
func sellmeier2(wl float64, c []float64) float64 {
	wl2 := wl*wl
	n2 := 1 + c[0]
	for j := 1; j <= 8; j++ {
		n2 += pole(c[2*j-1], wl2, wl2 - c[2*j])
	}
	return math.Sqrt(n2)
}

// n^2 = c0 + sum_j c(2j-1) wl^c(2j)
func polynomial(wl float64, c []float64) float64 {
	n2 := c[0]
	for j := 1; j <= 8; j++ {
		n2 += power(c[2*j-1], wl, c[2*j])
	}
	return math.Sqrt(n2)
}

// n^2 = c0 + c1 wl^c2 / (wl^2 - c3^c4) + c5 wl^c6 / (wl^2 - c7^c8)
//     + c9 wl^c10 + c11 wl^c12 + c13 wl^c14 + c15 wl^c16
func riiFormula4(wl float64, c []float64) float64 {
	wl2 := wl*wl
	n2 := c[0] +
		pole(c[1], math.Pow(wl, c[2]), wl2 - math.Pow(c[3], c[4])) +
		pole(c[5], math.Pow(wl, c[6]), wl2 - math.Pow(c[7], c[8]))
	for j := 9; j <= 15; j += 2 {
		n2 += power(c[j], wl, c[j+1])
	}
	return math.Sqrt(n2)
}

// n = c0 + sum_j c(2j-1) wl^c(2j)
func cauchy(wl float64, c []float64) float64 {
	n := c[0]
	for j := 1; j <= 5; j++ {
		n += power(c[2*j-1], wl, c[2*j])
	}
	return n
}

// n - 1 = c0 + sum_j c(2j-1) / (c(2j) - wl^-2)
func gases(wl float64, c []float64) float64 {
	inv2 := 1 / (wl*wl)
	n := 1 + c[0]
	for j := 1; j <= 5; j++ {
		n += pole(c[2*j-1], 1, c[2*j] - inv2)
	}
	return n
}

// n = c0 + c1 / (wl^2 - 0.028) + c2 / (wl^2 - 0.028)^2
//   + c3 wl^2 + c4 wl^4 + c5 wl^6
func herzberger(wl float64, c []float64) float64 {
	wl2 := wl*wl
	d := wl2 - herzbergerOffset
	return c[0] + pole(c[1], 1, d) + pole(c[2], 1, d*d) +
		c[3]*wl2 + c[4]*wl2*wl2 + c[5]*wl2*wl2*wl2
}

// (n^2 - 1) / (n^2 + 2) = c0 + c1 wl^2 / (wl^2 - c2) + c3 wl^2
func retro(wl float64, c []float64) float64 {
	wl2 := wl*wl
	p := c[0] + pole(c[1], wl2, wl2 - c[2]) + c[3]*wl2
	return math.Sqrt((1 + 2*p) / (1 - p))
}

// n^2 = c0 + c1 / (wl^2 - c2) + c3 (wl - c4) / ((wl - c4)^2 + c5)
func exotic(wl float64, c []float64) float64 {
	wl2 := wl*wl
	d := wl - c[4]
	n2 := c[0] + pole(c[1], 1, wl2 - c[2]) + pole(c[3], d, d*d + c[5])
	return math.Sqrt(n2)
}
