package api

import "time"

// TimeWindow bounds a trade query to the half-open range [Start, End). A
// zero Start means "most recent trades, no bound"; a zero End resolves to
// the current time.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// epochBounds resolves the window to Deribit's millisecond epoch bounds.
// bounded is false when Start is unset, selecting the single-shot
// most-recent query path.
//
// End is pulled one nanosecond below the server's millisecond resolution so
// that a trade stamped exactly at End is not counted twice by adjacent
// windows.
func (w TimeWindow) epochBounds(now time.Time) (start, end int64, bounded bool) {
	if w.Start.IsZero() {
		return 0, 0, false
	}

	e := w.End
	if e.IsZero() {
		e = now
	}

	return w.Start.UnixMilli(), e.Add(-time.Nanosecond).UnixMilli(), true
}
