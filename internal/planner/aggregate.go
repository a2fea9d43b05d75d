package planner

import "sort"

// DayEntry is one row of the monthly breakdown: everything earned on one
// date. Clients counts appointments only; manual income marks the row as
// extra income instead.
type DayEntry struct {
	Date        string
	Total       int64
	Clients     int
	ExtraIncome bool
}

// DailyTotal sums the day's appointment prices, treating missing prices
// as zero.
func DailyTotal(bookings []Booking) int64 {
	var total int64
	for _, b := range bookings {
		total += b.PriceValue()
	}
	return total
}

// MonthlySummary folds a month's appointments and income records into a
// per-date breakdown plus the month total. The total always equals the sum
// of the entry totals since both come out of the same pass.
func MonthlySummary(bookings []Booking, incomes []Income) ([]DayEntry, int64) {
	byDate := map[string]*DayEntry{}

	entry := func(date string) *DayEntry {
		e, ok := byDate[date]
		if !ok {
			e = &DayEntry{Date: date}
			byDate[date] = e
		}
		return e
	}

	for _, b := range bookings {
		e := entry(b.Date)
		e.Total += b.PriceValue()
		e.Clients++
	}

	for _, rec := range incomes {
		e := entry(rec.Date)
		e.Total += rec.Amount
		e.ExtraIncome = true
	}

	entries := make([]DayEntry, 0, len(byDate))
	var total int64
	for _, e := range byDate {
		entries = append(entries, *e)
		total += e.Total
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date < entries[j].Date
	})

	return entries, total
}

// LifetimeTotal sums every appointment price and every income amount,
// unscoped by date.
func LifetimeTotal(bookings []Booking, incomes []Income) int64 {
	total := DailyTotal(bookings)
	for _, rec := range incomes {
		total += rec.Amount
	}
	return total
}

// DistinctBusyDates collapses raw appointment dates into the sorted set of
// days that have at least one booking.
func DistinctBusyDates(dates []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}
