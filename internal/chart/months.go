package chart

import "time"

// MonthSpan is one calendar month of the analytics window.
// From is the month's first instant, To its last.
type MonthSpan struct {
	Label string
	From  time.Time
	To    time.Time
}

// MonthWindow returns the n calendar months ending with now's month,
// oldest first. Year rollover falls out of AddDate's calendar arithmetic.
func MonthWindow(now time.Time, n int) []MonthSpan {
	spans := make([]MonthSpan, 0, n)

	for i := n - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		next := first.AddDate(0, 1, 0)

		spans = append(spans, MonthSpan{
			Label: first.Format("Jan"),
			From:  first,
			To:    next.Add(-time.Nanosecond),
		})
	}

	return spans
}
