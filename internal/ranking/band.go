package ranking

// Match bands shown alongside raw similarity scores.
const (
	BandExcellent        = "Excellent"
	BandGood             = "Good"
	BandNeedsImprovement = "Needs Improvement"
	BandPoor             = "Poor"
)

// ScoreBand maps a similarity score onto its presentation band.
func ScoreBand(score float64) string {
	switch {
	case score >= 0.8:
		return BandExcellent
	case score >= 0.6:
		return BandGood
	case score >= 0.4:
		return BandNeedsImprovement
	default:
		return BandPoor
	}
}
