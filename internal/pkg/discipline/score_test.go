package discipline

import "testing"

func TestScoreAttendance(t *testing.T) {
	const base = 420 // 07:00

	cases := []struct {
		name    string
		checkIn int
		want    int
	}{
		{"early", 400, 100},
		{"exactly on time", 420, 100},
		{"1 minute late", 421, 99},
		{"10 minutes late", 430, 90},
		{"30 minutes late", 450, 70},
		{"31 minutes late", 451, 68},
		{"45 minutes late", 465, 40},
		{"59 minutes late", 479, 12},
		{"exactly at deadline", 480, 0},
		{"past deadline", 481, 0},
		{"far past deadline", 600, 0},
	}
	for _, c := range cases {
		if got := ScoreAttendance(c.checkIn, base); got != c.want {
			t.Errorf("%s: ScoreAttendance(%d, %d) = %d, want %d", c.name, c.checkIn, base, got, c.want)
		}
	}
}

// Later arrival never scores higher.
func TestScoreAttendanceMonotonic(t *testing.T) {
	const base = 450
	prev := 101
	for checkIn := base - 60; checkIn <= base+120; checkIn++ {
		got := ScoreAttendance(checkIn, base)
		if got > prev {
			t.Fatalf("score increased at checkIn=%d: %d > %d", checkIn, got, prev)
		}
		prev = got
	}
}

func TestScoreClockText(t *testing.T) {
	cases := []struct {
		name     string
		clockIn  string
		role     string
		location string
		want     int
	}{
		{"staff ten minutes late", "07:10", "pegawai", "Cabang A", 90},
		{"doctor olak kemang ten minutes late", "15:40", "dokter", "Olak Kemang Clinic", 90},
		{"no matching window", "20:00", "pegawai", "Cabang A", 0},
		{"unparseable clock", "-", "pegawai", "Cabang A", 0},
		{"doctor on time", "07:30", "dokter", "Cabang A", 100},
	}
	for _, c := range cases {
		if got := ScoreClockText(c.clockIn, c.role, c.location); got != c.want {
			t.Errorf("%s: ScoreClockText(%q, %q, %q) = %d, want %d",
				c.name, c.clockIn, c.role, c.location, got, c.want)
		}
	}
}

func TestTallyAverage(t *testing.T) {
	var tally Tally
	if got := tally.Average(); got != 0 {
		t.Errorf("empty tally average = %v, want 0", got)
	}

	for _, s := range []int{100, 70, 0} {
		tally.Add(s)
	}
	if tally.TotalScore != 170 || tally.Days != 3 {
		t.Fatalf("tally = %+v, want total 170 over 3 days", tally)
	}
	// 170/3 = 56.666..., truncated to 56.66 (not rounded to 56.67).
	if got := tally.Average(); got != 56.66 {
		t.Errorf("Average() = %v, want 56.66", got)
	}
}
