package discipline

import "testing"

func TestParseTimeToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"07:15", 435, true},
		{"07.15", 435, true},
		{"19.30.00", 1170, true},
		{"19:30:45", 1170, true},
		{"00:00", 0, true},
		{"23:59", 1439, true},
		{" 08:05 ", 485, true},
		{"", 0, false},
		{"-", 0, false},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"-1:30", 0, false},
		{"abc", 0, false},
		{"12", 0, false},
		{"ab:cd", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseTimeToMinutes(c.input)
		if ok != c.ok || got != c.want {
			t.Errorf("ParseTimeToMinutes(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}

func TestMinutesToTimeString(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{435, "07:15"},
		{780, "13:00"},
		{1439, "23:59"},
	}
	for _, c := range cases {
		if got := MinutesToTimeString(c.minutes); got != c.want {
			t.Errorf("MinutesToTimeString(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

// Valid zero-padded 24h inputs survive a parse/format round trip.
func TestTimeRoundTrip(t *testing.T) {
	inputs := []string{"00:00", "07:00", "07:30", "13:00", "15:15", "23:59"}
	for _, in := range inputs {
		m, ok := ParseTimeToMinutes(in)
		if !ok {
			t.Fatalf("ParseTimeToMinutes(%q) unexpectedly failed", in)
		}
		if got := MinutesToTimeString(m); got != in {
			t.Errorf("round trip %q -> %d -> %q", in, m, got)
		}
	}
}
