package shared

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Period is a named lookback window used by reporting queries.
type Period string

const (
	// PeriodLastMonth covers the last 30 days.
	PeriodLastMonth Period = "last_month"

	// DefaultPeriod is used when no period is given.
	DefaultPeriod = PeriodLastMonth
)

// periodDays maps every known period to its length in days.
// New periods only need an entry here.
var periodDays = map[Period]int{
	PeriodLastMonth: 30,
}

// ParsePeriod converts a raw value into a Period.
// An empty value yields DefaultPeriod.
func ParsePeriod(raw string) (Period, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultPeriod, nil
	}
	p := Period(raw)
	if _, ok := periodDays[p]; !ok {
		return "", NewDomainError(CodeInvalidInput,
			fmt.Sprintf("Invalid period %q, must be one of: %s", raw, strings.Join(PeriodNames(), ", ")))
	}
	return p, nil
}

// PeriodNames returns the known period names sorted alphabetically.
func PeriodNames() []string {
	names := make([]string, 0, len(periodDays))
	for p := range periodDays {
		names = append(names, string(p))
	}
	sort.Strings(names)
	return names
}

// Days returns the number of days covered by the period.
// Unknown periods fall back to the default period.
func (p Period) Days() int {
	if d, ok := periodDays[p]; ok {
		return d
	}
	return periodDays[DefaultPeriod]
}

// Range returns the window [now - Days, now] in UTC.
func (p Period) Range(now time.Time) DateRange {
	to := now.UTC()
	return DateRange{
		From: to.AddDate(0, 0, -p.Days()),
		To:   to,
	}
}

// DateRange is an inclusive time interval.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies within the range, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}
