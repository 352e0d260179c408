// internal/dataset/regions.go
//
// Subregion membership used by the second rung of the hint ladder.
//
// This is versioned reference data, not logic: the lists must cover every
// country in flags.json, and the coverage test fails when a flag has no
// subregion. Update both files together when adding flags.
package dataset

// regions maps continent → subregion → member countries (by flag name).
var regions = map[string]map[string][]string{
	"Europe": {
		"Northern Europe": {"United Kingdom", "Ireland", "Norway", "Sweden", "Denmark", "Finland"},
		"Western Europe":  {"France", "Germany", "Netherlands", "Belgium", "Switzerland"},
		"Southern Europe": {"Spain", "Italy", "Greece", "Portugal"},
		"Eastern Europe":  {"Russia", "Poland", "Ukraine"},
	},
	"Asia": {
		"East Asia":      {"China", "Japan", "South Korea"},
		"Southeast Asia": {"Thailand", "Vietnam", "Indonesia", "Philippines"},
		"South Asia":     {"India", "Pakistan", "Bangladesh"},
		"Western Asia":   {"Turkey", "Iran", "Israel"},
	},
	"Africa": {
		"North Africa":    {"Egypt", "Morocco", "Algeria", "Tunisia"},
		"West Africa":     {"Nigeria", "Ghana", "Senegal"},
		"East Africa":     {"Kenya", "Ethiopia", "Tanzania"},
		"Southern Africa": {"South Africa", "Zimbabwe"},
	},
	"North America": {
		"North America": {"United States", "Canada", "Mexico"},
	},
	"South America": {
		"South America": {"Brazil", "Argentina", "Chile", "Peru", "Colombia"},
	},
	"Oceania": {
		"Oceania": {"Australia", "New Zealand"},
	},
}

// Subregion resolves the finer region for a country, if it is enumerated.
// Hint generation falls back to the continent when this returns false.
func Subregion(continent, country string) (string, bool) {
	subregions, ok := regions[continent]
	if !ok {
		return "", false
	}
	for name, countries := range subregions {
		for _, c := range countries {
			if c == country {
				return name, true
			}
		}
	}
	return "", false
}
