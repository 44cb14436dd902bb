// Package unixtime renders epoch-second timestamps as a machine-readable UTC
// string and a human-readable string in a configured time zone.
package unixtime

import (
	"errors"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/ncruces/go-strftime"
)

const (
	isoFormat   = "%Y-%m-%dT%H:%M:%S%z"
	localFormat = "%Y-%m-%d %H:%M:%S %Z"

	// MaxSeconds is 9999-12-31T23:59:59Z, the last instant both formats can
	// express with a four digit year.
	MaxSeconds uint64 = 253402300799
)

// Formatted is a single instant rendered twice. DateTime fits the datetime
// attribute of a <time> element, Formatted is its text.
type Formatted struct {
	DateTime  string `json:"datetime"`
	Formatted string `json:"formatted"`
}

// Location resolves an IANA zone name. Empty or unknown names resolve to UTC.
func Location(name string) *time.Location {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Formatter formats timestamps in one time zone. The zero value formats in UTC.
type Formatter struct {
	loc *time.Location
}

// NewFormatter returns a Formatter for the named zone, see Location.
func NewFormatter(timezone string) Formatter {
	return Formatter{loc: Location(timezone)}
}

// Location returns the zone the formatter renders local strings in.
func (f Formatter) Location() *time.Location {
	if f.loc == nil {
		return time.UTC
	}
	return f.loc
}

// Format renders secs. Values past MaxSeconds are clamped to it.
func (f Formatter) Format(secs uint64) Formatted {
	t := Time(secs)
	return Formatted{
		DateTime:  strftime.Format(isoFormat, t),
		Formatted: strftime.Format(localFormat, t.In(f.Location())),
	}
}

// Format is shorthand for NewFormatter(timezone).Format(secs).
func Format(secs uint64, timezone string) Formatted {
	return NewFormatter(timezone).Format(secs)
}

// Time converts epoch seconds into a UTC time.Time.
func Time(secs uint64) time.Time {
	if secs > MaxSeconds {
		secs = MaxSeconds
	}
	return time.Unix(int64(secs), 0).UTC()
}

// ParseSeconds reads a decimal epoch-seconds value. Anything that is not a
// non-negative integer reads as 0; integers past MaxSeconds are clamped.
func ParseSeconds(s string) uint64 {
	secs, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if errors.Is(err, strconv.ErrRange) || secs > MaxSeconds {
		return MaxSeconds
	}
	if err != nil {
		return 0
	}
	return secs
}
