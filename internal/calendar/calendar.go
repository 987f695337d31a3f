// Package calendar is the Calendar tab state: the visible month and the
// day grid rendered for it.
package calendar

import "time"

type Holder struct {
	today   time.Time
	visible Month
}

// New snapshots today from now (time.Now when nil) and shows its month.
func New(now func() time.Time) *Holder {
	if now == nil {
		now = time.Now
	}
	t := now()
	today := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &Holder{today: today, visible: MonthOf(today)}
}

func (h *Holder) Today() time.Time    { return h.today }
func (h *Holder) VisibleMonth() Month { return h.visible }

func (h *Holder) Next()     { h.visible = h.visible.AddMonths(1) }
func (h *Holder) Previous() { h.visible = h.visible.AddMonths(-1) }

// Reset shows today's month again.
func (h *Holder) Reset() { h.visible = MonthOf(h.today) }

// Cell is one slot of the month grid. Day is 0 for leading placeholders.
type Cell struct {
	Day     int
	IsToday bool
}

// FirstDayOffset is the number of placeholders before day 1 when weeks
// start on firstWeekday.
func FirstDayOffset(m Month, firstWeekday time.Weekday) int {
	wd := m.FirstDay(time.UTC).Weekday()
	return (int(wd) - int(firstWeekday) + 7) % 7
}

// Grid lays out the visible month: placeholders, then one cell per day.
func (h *Holder) Grid(firstWeekday time.Weekday) []Cell {
	offset := FirstDayOffset(h.visible, firstWeekday)
	days := h.visible.DaysInMonth()
	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	isTodayMonth := MonthOf(h.today) == h.visible
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Day: d, IsToday: isTodayMonth && d == h.today.Day()})
	}
	return cells
}

// Weekdays returns the seven weekdays starting at firstWeekday.
func Weekdays(firstWeekday time.Weekday) []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = time.Weekday((int(firstWeekday) + i) % 7)
	}
	return out
}
