package game

// kingWeight is how many men a king is worth when weighing material.
const kingWeight = 2.0

// Material scores player's position between -1 and 1 by weighted piece count against the
// opponent. Solitaire has no opponent and always scores 0.
func (g *Game) Material(player int) float64 {
	if g.variant.Solitaire() {
		return 0
	}
	material := make(map[int]float64)
	for _, p := range g.board.Pieces() {
		if p.Rank == King {
			material[p.Owner] += kingWeight
		} else {
			material[p.Owner]++
		}
	}
	return normalize(material[player], material[1-player])
}

// normalize converts two values into a single score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
