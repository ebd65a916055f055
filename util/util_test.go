package util

import (
	"strings"
	"testing"
)

func TestCleanDescription(t *testing.T) {
	testCases := []struct {
		name           string
		input          string
		max            int
		expectedResult string
	}{
		{"Strips HTML tags", "<p>Weekly <b>padel</b> socials</p>", 500, "Weekly padel socials"},
		{"Collapses whitespace", "casual   games\n\n in  Hackney", 500, "casual games in Hackney"},
		{"Trims surrounding space", "  all levels welcome  ", 500, "all levels welcome"},
		{"Truncates to max", "abcdefghij", 4, "abcd"},
		{"Empty input", "", 500, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := CleanDescription(tc.input, tc.max)

			if result != tc.expectedResult {
				t.Errorf("CleanDescription(%q, %d) = %q; want %q",
					tc.input, tc.max, result, tc.expectedResult)
			}
		})
	}
}

func TestCleanTitle(t *testing.T) {
	testCases := []struct {
		name           string
		input          string
		expectedResult string
	}{
		{"Dash suffix", "Brixton Football Club - Home", "Brixton Football Club"},
		{"Pipe suffix", "Camden Runners | London", "Camden Runners"},
		{"No suffix", "Islington Padel Hub", "Islington Padel Hub"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := CleanTitle(tc.input); result != tc.expectedResult {
				t.Errorf("CleanTitle(%q) = %q; want %q", tc.input, result, tc.expectedResult)
			}
		})
	}
}

func TestIDFromURL(t *testing.T) {
	id := IDFromURL("https://www.brixtonfootball.example.com/about?ref=1")
	if strings.Contains(id, "/") || strings.Contains(id, ":") {
		t.Errorf("IDFromURL left URL punctuation in %q", id)
	}
	if strings.HasPrefix(id, "https") {
		t.Errorf("IDFromURL kept the scheme in %q", id)
	}
	if len(id) > 50 {
		t.Errorf("IDFromURL returned %d chars; want <= 50", len(id))
	}
	if id != IDFromURL("https://www.brixtonfootball.example.com/about?ref=1") {
		t.Error("IDFromURL is not deterministic")
	}
}

func TestGenerateSlug(t *testing.T) {
	testCases := []struct {
		name           string
		sport          string
		borough        string
		expectedResult string
	}{
		{"Simple", "padel", "westminster", "padel-westminster"},
		{"Multi word borough", "Tennis", "Tower Hamlets", "tennis-tower-hamlets"},
		{"Uppercase sport", "Football", "Camden", "football-camden"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if result := GenerateSlug(tc.sport, tc.borough); result != tc.expectedResult {
				t.Errorf("GenerateSlug(%q, %q) = %q; want %q", tc.sport, tc.borough, result, tc.expectedResult)
			}
		})
	}
}
