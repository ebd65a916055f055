package classify

import "testing"

func TestDetectSport(t *testing.T) {
	testCases := []struct {
		name        string
		groupName   string
		description string
		expected    string
	}{
		{"Padel by name", "Brixton Padel Club", "weekly padel socials", "Padel"},
		{"No match", "Generic Social Club", "", "Other"},
		{"Football beats cycling in priority", "Football and bike rides", "", "Football"},
		{"Soccer maps to Football", "Sunday Soccer League", "", "Football"},
		{"Runners keyword", "Greenwich Park Runners", "free weekly 5K", "Running"},
		{"Bouldering maps to Climbing", "Castle Crew", "indoor bouldering sessions", "Climbing"},
		{"Case insensitive", "LONDON TENNIS SOCIAL", "", "Tennis"},
		{"Description only", "Tuesday Socials", "casual badminton in Mile End", "Badminton"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectSport(tc.groupName, tc.description); got != tc.expected {
				t.Errorf("DetectSport(%q, %q) = %q; want %q", tc.groupName, tc.description, got, tc.expected)
			}
		})
	}
}

func TestDetectBorough(t *testing.T) {
	testCases := []struct {
		name     string
		city     string
		lat, lon float64
		expected string
	}{
		{"City name match", "Hackney", 0, 0, "Hackney"},
		{"City name match is case insensitive", "london borough of lambeth", 0, 0, "Lambeth"},
		{"Exact centroid", "", 51.5290, -0.1255, "Camden"},
		{"Near a centroid", "", 51.5200, -0.0300, "Tower Hamlets"},
		{"Far from all centroids still picks nearest", "", 55.9533, -3.1883, "Hammersmith and Fulham"},
		{"Name match wins over coordinates", "Greenwich", 51.5290, -0.1255, "Greenwich"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectBorough(tc.city, tc.lat, tc.lon); got != tc.expected {
				t.Errorf("DetectBorough(%q, %v, %v) = %q; want %q", tc.city, tc.lat, tc.lon, got, tc.expected)
			}
		})
	}
}

func TestDetectBoroughFromText(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
	}{
		{"Borough name", "Tennis courts in Islington for hire", "Islington"},
		{"Alias brixton", "Pickup basketball near Brixton station", "Lambeth"},
		{"Alias notting hill", "Notting Hill yoga studio", "Kensington and Chelsea"},
		{"Borough name wins over alias", "Wandsworth club near Clapham Junction", "Wandsworth"},
		{"No match", "Sports club somewhere in the UK", DefaultBorough},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectBoroughFromText(tc.text); got != tc.expected {
				t.Errorf("DetectBoroughFromText(%q) = %q; want %q", tc.text, got, tc.expected)
			}
		})
	}
}
