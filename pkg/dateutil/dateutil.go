package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FiscalYear is an April-to-March financial year identified by its starting calendar year
type FiscalYear struct {
	StartYear int
}

// ParseFiscalYear parses "2023-24" or "2023-2024" style labels.
func ParseFiscalYear(label string) (FiscalYear, error) {
	parts := strings.Split(strings.TrimSpace(label), "-")
	if len(parts) != 2 {
		return FiscalYear{}, fmt.Errorf("fiscal year %q must look like 2023-24", label)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) != 4 {
		return FiscalYear{}, fmt.Errorf("fiscal year %q has an invalid start year", label)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil {
		return FiscalYear{}, fmt.Errorf("fiscal year %q has an invalid end year", label)
	}
	switch len(parts[1]) {
	case 2:
		if end != (start+1)%100 {
			return FiscalYear{}, fmt.Errorf("fiscal year %q must span consecutive years", label)
		}
	case 4:
		if end != start+1 {
			return FiscalYear{}, fmt.Errorf("fiscal year %q must span consecutive years", label)
		}
	default:
		return FiscalYear{}, fmt.Errorf("fiscal year %q has an invalid end year", label)
	}
	return FiscalYear{StartYear: start}, nil
}

// String renders the short label, e.g. "2023-24"
func (fy FiscalYear) String() string {
	return fmt.Sprintf("%d-%02d", fy.StartYear, (fy.StartYear+1)%100)
}

// DateIn resolves a month/day inside the fiscal year. January to March belong
// to the second calendar year.
func (fy FiscalYear) DateIn(month time.Month, day int) time.Time {
	year := fy.StartYear
	if month < time.April {
		year++
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDueDate renders the "15 Jun" style label used on installment schedules
func FormatDueDate(month time.Month, day int) string {
	return fmt.Sprintf("%d %s", day, month.String()[:3])
}
