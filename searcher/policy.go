package searcher

import "math"

type uct struct {
	numerator float64
}

// newUCT prepares the exploration numerator c^2*ln(N). N is the root's playout
// count; with N = 0 every score is NaN and selection keeps the first child.
func newUCT(cSquared float64, N float64) *uct {
	return &uct{numerator: cSquared * math.Log(N)}
}

func (u uct) evaluate(wins, playouts int) float64 {
	// UCT = w/n + sqrt(c^2*ln(N)/n)
	n := float64(playouts) + DivDelta
	return float64(wins)/n + math.Sqrt(u.numerator/n)
}

func winRate(wins, playouts int) float64 {
	return float64(wins) / (float64(playouts) + DivDelta)
}
