package discipline

import "math"

// GraceMinutes is the window after the base minute inside which a late
// check-in still earns a partial score. Arrivals beyond it score zero.
const GraceMinutes = 60

// ScoreAttendance computes the 0-100 lateness score for one attendance
// record. checkInMinutes at or before baseMinutes scores 100; the first
// half hour of lateness costs 1 point per minute, every minute after that
// costs 2, flooring at 0. From the grace deadline onward the score is 0.
func ScoreAttendance(checkInMinutes, baseMinutes int) int {
	if checkInMinutes <= baseMinutes {
		return 100
	}

	diff := checkInMinutes - baseMinutes
	if diff >= GraceMinutes {
		return 0
	}
	if diff <= 30 {
		return 100 - diff
	}

	score := 70 - (diff-30)*2
	if score < 0 {
		return 0
	}
	return score
}

// ScoreClockText runs the full parse -> classify -> score pipeline for one
// raw record. Unparseable clock text and check-ins outside every shift
// window both degrade silently to 0, per the reporting rules.
func ScoreClockText(clockIn, role, locationName string) int {
	checkIn, ok := ParseTimeToMinutes(clockIn)
	if !ok {
		return 0
	}
	base, _, ok := ClassifyShift(checkIn, role, locationName)
	if !ok {
		return 0
	}
	return ScoreAttendance(checkIn, base)
}

// Tally accumulates daily scores for one employee.
type Tally struct {
	TotalScore int
	Days       int
}

// Add records one day's score.
func (t *Tally) Add(score int) {
	t.TotalScore += score
	t.Days++
}

// Average returns the running average truncated (not rounded) to two
// decimal places, 0 when no days were recorded. Averages are always
// recomputed from the tally, never updated incrementally elsewhere.
func (t Tally) Average() float64 {
	if t.Days == 0 {
		return 0
	}
	avg := float64(t.TotalScore) / float64(t.Days)
	return math.Floor(avg*100) / 100
}
