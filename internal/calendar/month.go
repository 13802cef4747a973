package calendar

// MonthData describes a date for month-change listeners. Month is 1-based.
type MonthData struct {
	Year       int
	Month      int
	Day        int
	Timestamp  int64 // Unix milliseconds at UTC midnight
	DateString string
}

// MonthDataOf builds the month descriptor for d.
func MonthDataOf(d Date) MonthData {
	return MonthData{
		Year:       d.Year,
		Month:      int(d.Month),
		Day:        d.Day,
		Timestamp:  d.Time().UnixMilli(),
		DateString: d.String(),
	}
}
