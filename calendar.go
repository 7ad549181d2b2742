package chart

// Gregorian calendar arithmetic for tick labels on Time axes. Only
// timestamps at or after 1970-01-01 UTC are supported.

const (
	daysPer400Years = 146097
	maxUnix         = 1 << 53 // exactly representable as float64
)

var daysInMonth = [12]int64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func isLeap(year int64) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

func daysInYear(year int64) int64 {
	if isLeap(year) {
		return 366
	}
	return 365
}

// Civil splits the Unix time sec (seconds since 1970-01-01 UTC) into its
// UTC calendar fields. Month and day start at 1. Negative values are
// treated as 0.
func Civil(sec int64) (year, month, day, hour, min, s int) {
	if sec < 0 {
		sec = 0
	}
	days, rem := sec/86400, sec%86400
	hour, min, s = int(rem/3600), int(rem%3600/60), int(rem%60)

	// 1970 is not a multiple of 400 but every block of 400 consecutive
	// years has the same number of days.
	y := int64(1970) + 400*(days/daysPer400Years)
	days %= daysPer400Years
	for days >= daysInYear(y) {
		days -= daysInYear(y)
		y++
	}

	m := 0
	for ; m < 11; m++ {
		n := daysInMonth[m]
		if m == 1 && isLeap(y) {
			n++
		}
		if days < n {
			break
		}
		days -= n
	}
	return int(y), m + 1, int(days) + 1, hour, min, s
}

// clampUnix restricts a float timestamp to the range Civil handles.
func clampUnix(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxUnix {
		return maxUnix
	}
	return v
}
