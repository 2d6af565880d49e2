package dates

import (
	"fmt"
	"strings"
	"time"
)

// JST is the fixed offset every covered source publishes its dates in.
// Applying it explicitly keeps results independent of the host timezone.
var JST = time.FixedZone("JST", 9*60*60)

var explicitLayouts = []string{
	"2006/1/2",
	"2006.1.2",
	"2006年1月2日",
}

// Parse resolves a date fragment that carries an explicit year. Fragments
// with a full timestamp and offset (RFC 3339) are taken as-is; date-only
// fragments are pinned to midnight JST.
func Parse(fragment string) (time.Time, error) {
	fragment = strings.TrimSpace(fragment)

	if t, err := time.Parse(time.RFC3339, fragment); err == nil {
		return t, nil
	}
	for _, layout := range explicitLayouts {
		if t, err := time.ParseInLocation(layout, fragment, JST); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date fragment %q", fragment)
}

// Rollover recovers the implied year for month/day-only fragments. Sources
// that publish dates like 06月15日 enumerate entries newest-first without
// repeating the year; walking that list, a fragment later in the year than
// the running reference must belong to the previous year. The walk is
// sequential and stateful per page, so one Rollover serves one entry list.
type Rollover struct {
	year  int
	month time.Month
	day   int
}

// NewRollover seeds the running reference with now, which callers pin to the
// UTC clock so resolution is deterministic across hosts.
func NewRollover(now time.Time) *Rollover {
	year, month, day := now.UTC().Date()
	return &Rollover{year: year, month: month, day: day}
}

// Resolve turns a (month, day) fragment into an absolute JST midnight
// timestamp and advances the reference to that fragment.
func (r *Rollover) Resolve(month time.Month, day int) time.Time {
	if month > r.month || (month == r.month && day > r.day) {
		r.year--
	}
	r.month, r.day = month, day
	return time.Date(r.year, month, day, 0, 0, 0, 0, JST)
}
