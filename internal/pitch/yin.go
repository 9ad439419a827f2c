package pitch

import "math"

// difference fills out with the YIN difference function: out[tau] is the
// summed squared error between the frame and itself shifted by tau, for tau
// up to window. The frame must hold at least window+tau samples per lag,
// which a 2*window frame guarantees.
func difference(frame []float64, window int, out []float64) {
	out[0] = 0
	for tau := 1; tau <= window; tau++ {
		var sum float64
		for j := 0; j < window; j++ {
			d := frame[j] - frame[j+tau]
			sum += d * d
		}
		out[tau] = sum
	}
}

// cumulativeMeanNormalized fills out with YIN's d'(tau): each difference
// value divided by the running mean of all values up to that lag. A zero
// running sum means the frame is constant, so the lag is marked implausible
// with the neutral value 1.
func cumulativeMeanNormalized(diff, out []float64) {
	out[0] = 1
	var cum float64
	for tau := 1; tau < len(diff); tau++ {
		cum += diff[tau]
		if cum <= 0 {
			out[tau] = 1
			continue
		}
		out[tau] = diff[tau] * float64(tau) / cum
	}
}

// absoluteThreshold returns the first lag in [tauMin, tauMax] whose
// normalized difference drops below the threshold, walked forward to the
// bottom of its local dip. Returns -1 when no lag qualifies, which marks the
// frame unvoiced.
func absoluteThreshold(cmnd []float64, tauMin, tauMax int, threshold float64) int {
	for tau := tauMin; tau <= tauMax; tau++ {
		if cmnd[tau] >= threshold {
			continue
		}
		for tau+1 <= tauMax && cmnd[tau+1] < cmnd[tau] {
			tau++
		}
		return tau
	}
	return -1
}

// refineLag sharpens an integer lag with parabolic interpolation through its
// neighbors, clamped to the search band so the resulting frequency stays
// inside the configured range.
func refineLag(cmnd []float64, tau, tauMin, tauMax int) float64 {
	lag := float64(tau)
	if tau > 1 && tau < tauMax {
		y0 := cmnd[tau-1]
		y1 := cmnd[tau]
		y2 := cmnd[tau+1]
		denom := y0 - 2*y1 + y2
		if denom != 0 {
			shift := 0.5 * (y0 - y2) / denom
			if shift > -1 && shift < 1 {
				lag += shift
			}
		}
	}
	return math.Min(math.Max(lag, float64(tauMin)), float64(tauMax))
}

// rms returns the root mean square level of a frame.
func rms(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}
