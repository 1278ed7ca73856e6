package screen

import (
	"math"

	"github.com/sumwatshade/textwatch/cmd/face"
)

// easeOut starts quickly and decelerates, CSS cubic-bezier(0, 0, 0.2, 1).
var easeOut = cubicBezier(0.0, 0.0, 0.2, 1.0)

func curve(e face.Ease) func(float64) float64 {
	if e == face.Linear {
		return func(t float64) float64 { return t }
	}
	return easeOut
}

// cubicBezier returns the easing function through control points (x1,y1)
// and (x2,y2), with the curve fixed at (0,0) and (1,1).
func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// solve x(u) = t with Newton-Raphson, bisection if it stalls
		u := t
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 20 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
