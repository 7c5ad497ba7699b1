package basketball_nba

// PositionMap maps a coarse position code to the precise positions it can imply
type PositionMap map[string][]string

// Positions returns the coarse-to-precise position table.
// Order within each entry is significant and preserved for display.
func Positions() PositionMap {
	return PositionMap{
		"Guard":   {"PG", "SG"},
		"Forward": {"SF", "PF"},
		"Center":  {"C"},

		"Guard-Forward":  {"PG", "SG", "SF"},
		"Forward-Guard":  {"SG", "SF", "PF"},
		"Forward-Center": {"SF", "PF", "C"},
		"Center-Forward": {"PF", "C", "SF"},

		"G":   {"PG", "SG"},
		"F":   {"SF", "PF"},
		"C":   {"C"},
		"G-F": {"PG", "SG", "SF"},
		"F-G": {"SG", "SF", "PF"},
		"F-C": {"SF", "PF", "C"},
		"C-F": {"PF", "C", "SF"},
	}
}
