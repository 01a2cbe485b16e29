package stats

// rankThresholds is ordered from highest to lowest minimum rating.
var rankThresholds = []struct {
	min  int
	name string
}{
	{80, "Space Admiral"},
	{60, "Squadron Leader"},
	{40, "Ace Pilot"},
	{25, "Veteran"},
	{15, "Pilot"},
}

// LowestRank is awarded below every threshold.
const LowestRank = "Cadet"

// RankFor maps a rating to its named rank.
func RankFor(rating int) string {
	for _, r := range rankThresholds {
		if rating >= r.min {
			return r.name
		}
	}
	return LowestRank
}
