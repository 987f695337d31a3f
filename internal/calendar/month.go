package calendar

import (
	"fmt"
	"time"
)

// Month is a year-month value.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// AddMonths shifts by n months, crossing year boundaries.
func (m Month) AddMonths(n int) Month {
	return MonthOf(m.FirstDay(time.UTC).AddDate(0, n, 0))
}

func (m Month) FirstDay(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}

func (m Month) DaysInMonth() int {
	return m.FirstDay(time.UTC).AddDate(0, 1, -1).Day()
}

func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}
