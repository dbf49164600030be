package experiments

import "math"

// Elo returns the likely elo difference of a player with the given number of
// wins, draws and losses, along with its p < 0.05 lower and upper bounds.
func Elo(ws, ds, ls int) (muMin float64, mu float64, muMax float64) {
	N := float64(ws+ds+ls) + 1.5 // total number of games

	w := (float64(ws) + 0.5) / N // measured win probability
	d := (float64(ds) + 0.5) / N // measured draw probability
	l := (float64(ls) + 0.5) / N // measured loss probability

	// empirical mean of random variable
	mu = w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(N)

	muMax = mu + phiInv(0.975)*sigma // upper bound
	muMin = mu + phiInv(0.025)*sigma // lower bound

	return clampElo(muMin), clampElo(mu), clampElo(muMax)
}

func clampElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
