package repository

import "testing"

func TestParseCheckinLine(t *testing.T) {
	valid := "470\t49bbd6c0f964a520f4531fe3\t4bf58dd8d48988d127951735\tArts & Crafts Store\t40.719810375488535\t-74.00258103213994\t-240\tTue Apr 03 18:00:09 +0000 2012"

	t.Run("parses a well-formed line", func(t *testing.T) {
		c, ok := parseCheckinLine(valid)
		if !ok {
			t.Fatal("expected line to parse")
		}
		if c.UserID != "470" || c.VenueID != "49bbd6c0f964a520f4531fe3" {
			t.Errorf("unexpected ids: %+v", c)
		}
		if c.CategoryName != "Arts & Crafts Store" {
			t.Errorf("unexpected category: %q", c.CategoryName)
		}
		if c.TimezoneOffset != -240 {
			t.Errorf("unexpected offset: %d", c.TimezoneOffset)
		}
		if c.Latitude == 0 || c.Longitude == 0 {
			t.Error("coordinates not parsed")
		}
	})

	tests := []struct {
		name string
		line string
	}{
		{"too few columns", "470\t49bb\tcat"},
		{"bad latitude", "470\tv\tc\tBar\tnorth\t-74.0\t-240\tTue Apr 03 18:00:09 +0000 2012"},
		{"bad longitude", "470\tv\tc\tBar\t40.7\twest\t-240\tTue Apr 03 18:00:09 +0000 2012"},
		{"bad offset", "470\tv\tc\tBar\t40.7\t-74.0\tsoon\tTue Apr 03 18:00:09 +0000 2012"},
		{"empty line", ""},
	}
	for _, tt := range tests {
		t.Run("skips "+tt.name, func(t *testing.T) {
			if _, ok := parseCheckinLine(tt.line); ok {
				t.Errorf("expected %q to be skipped", tt.line)
			}
		})
	}
}
