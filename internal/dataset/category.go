package dataset

import "strings"

// CategorizeCommodity groups a commodity into a coarse category used for
// dashboard badges.
func CategorizeCommodity(commodity string) string {
	name := strings.ToUpper(commodity)

	switch {
	case strings.Contains(name, "BERAS"):
		return "BERAS"
	case strings.Contains(name, "MINYAK"):
		return "MINYAK GORENG"
	case strings.Contains(name, "CABAI"), strings.Contains(name, "CABE"), strings.Contains(name, "RAWIT"):
		return "CABAI"
	case strings.Contains(name, "BAWANG"):
		return "BAWANG"
	case strings.Contains(name, "GULA"):
		return "GULA"
	case strings.Contains(name, "TELUR"):
		return "TELUR"
	case strings.Contains(name, "AYAM"), strings.Contains(name, "DAGING"):
		return "PROTEIN HEWANI"
	case strings.Contains(name, "TEPUNG"):
		return "TEPUNG"
	default:
		return "LAINNYA"
	}
}
