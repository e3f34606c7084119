// Package recurrence expands stored recurrence rules into concrete
// occurrences for a query window.
package recurrence

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

const (
	// DefaultMaxOccurrences caps the expansion of a single series.
	DefaultMaxOccurrences = 5000
	// DefaultDuration applies when a series has neither a duration nor an end.
	DefaultDuration = 60 * time.Minute
	// scanFactor bounds the instances walked per returned occurrence, counting
	// those skipped before the window.
	scanFactor = 100
)

// ErrEmptyRule is returned for a blank rule.
var ErrEmptyRule = errors.New("empty recurrence rule")

// Series is a recurring event reduced to what expansion needs.
type Series struct {
	Rule     string
	Start    time.Time
	Location *time.Location
	Duration time.Duration
}

// Occurrence is one concrete instance of a series.
type Occurrence struct {
	Start time.Time
	End   time.Time
}

// Result holds the occurrences of a series within a window.
type Result struct {
	Occurrences []Occurrence
	// Truncated is set when the cap cut the expansion short.
	Truncated bool
}

// Duration picks the occurrence length: explicit minutes, else the span of
// the stored event, else DefaultDuration.
func Duration(minutes *int, startsAt time.Time, endsAt *time.Time) time.Duration {
	if minutes != nil && *minutes > 0 {
		return time.Duration(*minutes) * time.Minute
	}
	if endsAt != nil {
		if m := int(endsAt.Sub(startsAt) / time.Minute); m > 0 {
			return time.Duration(m) * time.Minute
		}
	}
	return DefaultDuration
}

// Validate reports whether rule parses.
func Validate(rule string) error {
	_, err := parse(rule, time.UTC)
	return err
}

// Expand returns the occurrences of s starting within [from, to]. The rule's
// DTSTART is the series start in the series location, so an UNTIL without an
// offset is read in that location too. At most limit occurrences are returned;
// limit <= 0 means DefaultMaxOccurrences. The rule is walked lazily and at
// most limit*scanFactor instances are visited, so a dense rule that started
// long before the window is cut short and reported as Truncated. An inverted
// window has no occurrences.
func Expand(s Series, from, to time.Time, limit int) (Result, error) {
	result := Result{Occurrences: []Occurrence{}}
	if limit <= 0 {
		limit = DefaultMaxOccurrences
	}
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	duration := s.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}

	opt, err := parse(s.Rule, loc)
	if err != nil {
		return result, err
	}
	opt.Dtstart = s.Start.In(loc)

	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return result, fmt.Errorf("invalid recurrence rule %q: %w", s.Rule, err)
	}
	if to.Before(from) {
		return result, nil
	}

	from, to = from.In(loc), to.In(loc)
	next := r.Iterator()
	for scanned := 0; ; scanned++ {
		if scanned >= limit*scanFactor {
			result.Truncated = true
			break
		}
		start, ok := next()
		if !ok || start.After(to) {
			break
		}
		if start.Before(from) {
			continue
		}
		if len(result.Occurrences) == limit {
			result.Truncated = true
			break
		}
		result.Occurrences = append(result.Occurrences, Occurrence{
			Start: start,
			End:   start.Add(duration),
		})
	}
	return result, nil
}

// parse accepts a bare rule or one prefixed with "RRULE:". When the value
// spans several lines only the RRULE line is used.
func parse(rule string, loc *time.Location) (*rrule.ROption, error) {
	text := ruleLine(rule)
	if text == "" {
		return nil, ErrEmptyRule
	}
	opt, err := rrule.StrToROptionInLocation(text, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule %q: %w", rule, err)
	}
	return opt, nil
}

func ruleLine(rule string) string {
	rule = strings.TrimSpace(rule)
	lines := strings.Split(rule, "\n")
	if len(lines) > 1 {
		for _, line := range lines {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(strings.ToUpper(line), "RRULE:") {
				rule = line
				break
			}
		}
	}
	if len(rule) >= 6 && strings.EqualFold(rule[:6], "RRULE:") {
		rule = rule[6:]
	}
	return strings.TrimSpace(rule)
}
