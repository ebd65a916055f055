// Package classify maps free-text listing content to a sport label and
// a London borough. Classification is heuristic and best-effort: first
// matching keyword wins, deterministic given input.
package classify

import (
	"math"
	"strings"
)

// Location pairs a borough with its approximate centroid, used both
// for name matching and for the nearest-borough fallback.
type Location struct {
	Borough string
	Lat     float64
	Lon     float64
}

// Locations covers the boroughs the directory indexes.
var Locations = []Location{
	{"Camden", 51.5290, -0.1255},
	{"Westminster", 51.4975, -0.1357},
	{"Hackney", 51.5450, -0.0553},
	{"Tower Hamlets", 51.5203, -0.0293},
	{"Islington", 51.5416, -0.1022},
	{"Lambeth", 51.4571, -0.1231},
	{"Southwark", 51.5035, -0.0804},
	{"Greenwich", 51.4892, 0.0648},
	{"Lewisham", 51.4415, -0.0117},
	{"Wandsworth", 51.4571, -0.1818},
	{"Hammersmith and Fulham", 51.4927, -0.2339},
	{"Kensington and Chelsea", 51.5020, -0.1947},
}

// DefaultBorough is returned when neither name matching nor a distance
// comparison can place the input.
const DefaultBorough = "Central London"

type sportRule struct {
	sport    string
	keywords []string
}

// Ordered by priority: the first rule with a matching keyword wins.
var sportRules = []sportRule{
	{"Football", []string{"football", "soccer"}},
	{"Basketball", []string{"basketball"}},
	{"Tennis", []string{"tennis"}},
	{"Badminton", []string{"badminton"}},
	{"Running", []string{"running", "run club", "runners"}},
	{"Padel", []string{"padel"}},
	{"Cricket", []string{"cricket"}},
	{"Rugby", []string{"rugby"}},
	{"Cycling", []string{"cycling", "bike", "bicycle"}},
	{"Swimming", []string{"swimming", "swim"}},
	{"Yoga", []string{"yoga"}},
	{"Climbing", []string{"climbing", "bouldering"}},
}

// Neighbourhood names that identify a borough without naming it.
var areaAliases = []struct {
	area    string
	borough string
}{
	{"brixton", "Lambeth"},
	{"clapham", "Lambeth"},
	{"shoreditch", "Hackney"},
	{"dalston", "Hackney"},
	{"stratford", "Tower Hamlets"},
	{"mile end", "Tower Hamlets"},
	{"angel", "Islington"},
	{"highbury", "Islington"},
	{"peckham", "Southwark"},
	{"bermondsey", "Southwark"},
	{"fulham", "Hammersmith and Fulham"},
	{"shepherds bush", "Hammersmith and Fulham"},
	{"chelsea", "Kensington and Chelsea"},
	{"notting hill", "Kensington and Chelsea"},
	{"battersea", "Wandsworth"},
	{"putney", "Wandsworth"},
	{"deptford", "Lewisham"},
	{"catford", "Lewisham"},
	{"woolwich", "Greenwich"},
	{"blackheath", "Greenwich"},
	{"kings cross", "Camden"},
	{"hampstead", "Camden"},
}

// DetectSport scans the lower-cased name and description for the known
// sport keywords and returns the first match, or "Other".
func DetectSport(name, description string) string {
	text := strings.ToLower(name + " " + description)

	for _, rule := range sportRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.sport
			}
		}
	}

	return "Other"
}

// DetectBorough first tries to match the city text against known
// borough names, then falls back to the nearest borough centroid.
func DetectBorough(city string, lat, lon float64) string {
	cityLower := strings.ToLower(city)
	for _, loc := range Locations {
		if strings.Contains(cityLower, strings.ToLower(loc.Borough)) {
			return loc.Borough
		}
	}

	nearest := DefaultBorough
	minDistance := math.Inf(1)
	for _, loc := range Locations {
		distance := math.Sqrt(math.Pow(lat-loc.Lat, 2) + math.Pow(lon-loc.Lon, 2))
		if distance < minDistance {
			minDistance = distance
			nearest = loc.Borough
		}
	}

	return nearest
}

// DetectBoroughFromText places a listing from free text alone: borough
// names first, then neighbourhood aliases, else the default.
func DetectBoroughFromText(text string) string {
	textLower := strings.ToLower(text)

	for _, loc := range Locations {
		if strings.Contains(textLower, strings.ToLower(loc.Borough)) {
			return loc.Borough
		}
	}

	for _, alias := range areaAliases {
		if strings.Contains(textLower, alias.area) {
			return alias.borough
		}
	}

	return DefaultBorough
}
