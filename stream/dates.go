package stream

import (
	"github.com/rickb777/date/v2"
)

// DatesFrom yields the infinite calendar sequence d, d+step days, d+2*step
// days, ...
func DatesFrom(d date.Date, step int) Stream[date.Date] {
	return Iterate(func(cur date.Date) date.Date {
		return cur.AddDate(0, 0, step)
	}, d)
}

// DatesBetween yields every date from `from` through `to`, inclusive, one
// day at a time. Empty when from is after to.
func DatesBetween(from, to date.Date) Stream[date.Date] {
	return Unfoldr(func(cur date.Date) (date.Date, date.Date, bool) {
		// Date is an ordinal day count, so > is the calendar ordering.
		if cur > to {
			var zero date.Date
			return zero, zero, false
		}
		return cur, cur.AddDate(0, 0, 1), true
	}, from)
}
