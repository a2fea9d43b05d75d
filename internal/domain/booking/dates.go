package booking

import (
	"time"

	"github.com/YuliaRizki/nailBook/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}

func ValidateTime(s string) error {
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}

// MonthWindow returns the first and last calendar day of a month, inclusive.
func MonthWindow(year int, month time.Month) (from, to string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(DateLayout), last.Format(DateLayout)
}

// BusyWindow bounds the busy-date markers to a year either side of today,
// so the calendar never pulls the full history.
func BusyWindow(today time.Time) (from, to string) {
	return today.AddDate(-1, 0, 0).Format(DateLayout),
		today.AddDate(1, 0, 0).Format(DateLayout)
}
