package scoring

// Bullet budget tiers. The most recent roles get the most room; older roles
// earn depth only through long tenure.
const (
	budgetTopRanks   = 6
	budgetThirdRank  = 5
	budgetEarlyRanks = 4

	budgetLongTenure   = 4
	budgetMediumTenure = 3
	budgetShortTenure  = 2

	longTenureMonths   = 48
	mediumTenureMonths = 24
)

// BulletBudget returns the maximum bullet count for an experience given its
// 0-indexed rank (by recency order) and tenure in months. Pure function of
// its arguments, no hidden state.
func BulletBudget(rankIndex, tenureMonths int) int {
	switch {
	case rankIndex <= 1:
		return budgetTopRanks
	case rankIndex == 2:
		return budgetThirdRank
	case rankIndex <= 4:
		return budgetEarlyRanks
	}

	switch {
	case tenureMonths >= longTenureMonths:
		return budgetLongTenure
	case tenureMonths >= mediumTenureMonths:
		return budgetMediumTenure
	default:
		return budgetShortTenure
	}
}
