package position

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// PeriodTimestamp orders period labels. It accepts D/M/Y, Y/M/D, M/Y and Y/M
// with '/' or '-' separators and returns 0 for anything else.
func PeriodTimestamp(period string) int64 {
	parts := strings.FieldsFunc(period, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != strings.Count(period, "/")+strings.Count(period, "-")+1 {
		return 0
	}

	var y, m, d string
	switch len(parts) {
	case 3:
		if len(parts[0]) == 4 {
			y, m, d = parts[0], parts[1], parts[2]
		} else {
			d, m, y = parts[0], parts[1], parts[2]
		}
	case 2:
		if len(parts[0]) == 4 {
			y, m = parts[0], parts[1]
		} else {
			m, y = parts[0], parts[1]
		}
		d = "1"
	default:
		return 0
	}

	year, err1 := strconv.Atoi(strings.TrimSpace(y))
	month, err2 := strconv.Atoi(strings.TrimSpace(m))
	day, err3 := strconv.Atoi(strings.TrimSpace(d))
	if err1 != nil || err2 != nil || err3 != nil {
		return 0
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return 0
	}
	return t.UnixMilli()
}

// Periods returns the distinct dated periods, newest first. Labels that do
// not parse keep their first-seen order after the dated ones.
func Periods(positions []JobPosition) []string {
	seen := make(map[string]struct{})
	var periods []string
	for _, p := range positions {
		if !isDated(p.PeriodeUpdate) {
			continue
		}
		if _, ok := seen[p.PeriodeUpdate]; ok {
			continue
		}
		seen[p.PeriodeUpdate] = struct{}{}
		periods = append(periods, p.PeriodeUpdate)
	}

	sort.SliceStable(periods, func(i, j int) bool {
		return PeriodTimestamp(periods[i]) > PeriodTimestamp(periods[j])
	})
	return periods
}

// SelectPeriod returns requested when it is a known period, the newest
// period otherwise, and "" when there are no dated periods at all.
func SelectPeriod(periods []string, requested string) string {
	for _, p := range periods {
		if p == requested {
			return p
		}
	}
	if len(periods) > 0 {
		return periods[0]
	}
	return ""
}

// InPeriod reports whether p belongs to period. The empty period holds the
// undated records.
func InPeriod(p JobPosition, period string) bool {
	if period == "" {
		return !isDated(p.PeriodeUpdate)
	}
	return p.PeriodeUpdate == period
}

func isDated(period string) bool {
	return period != "" && period != NoPeriod
}
