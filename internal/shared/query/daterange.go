package query

import "time"

// DateLayout is the wire format for start_date/end_date parameters.
const DateLayout = "2006-01-02"

// ParseDateRange applies the both-or-nothing rule for created_at
// filtering: a half-open or unparseable range is ignored entirely.
// The end bound is pushed to end of day so the range stays inclusive.
func ParseDateRange(startDate, endDate string) (*time.Time, *time.Time) {
	if startDate == "" || endDate == "" {
		return nil, nil
	}

	from, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return nil, nil
	}
	to, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return nil, nil
	}

	to = to.Add(24*time.Hour - time.Nanosecond)
	return &from, &to
}
