package score

import "math"

// ChangeRate is the percentage change from old to new
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		} else {
			return float64(100)
		}
	}

	return (new - old) / old * 100
}

// Round rounds to two decimal places
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
