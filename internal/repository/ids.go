package repository

import "time"

// nextID issues a time-derived synthetic id strictly greater than last,
// keeping ids unique and monotonic even when two records are created
// within the same millisecond.
func nextID(last int64) int64 {
	id := time.Now().UnixMilli()
	if id <= last {
		id = last + 1
	}
	return id
}

// timestamp renders the current time as the stored string form.
func timestamp() string {
	return time.Now().Format(time.RFC3339)
}
