package tariff

import (
	"slices"
	"time"
)

// Span is a half-open range of absolute instants [Start, End).
type Span struct {
	Start time.Time
	End   time.Time
}

func NewSpan(start, end time.Time) Span {
	return Span{Start: start, End: end}
}

func (s Span) IsEmpty() bool {
	return !s.End.After(s.Start)
}

func (s Span) Duration() time.Duration {
	if s.IsEmpty() {
		return 0
	}
	return s.End.Sub(s.Start)
}

func (s Span) Hours() float64 {
	return s.Duration().Hours()
}

// Intersect returns the common part of two spans; ok is false when it is empty.
func (s Span) Intersect(o Span) (Span, bool) {
	start := s.Start
	if o.Start.After(start) {
		start = o.Start
	}
	end := s.End
	if o.End.Before(end) {
		end = o.End
	}
	out := Span{Start: start, End: end}
	return out, !out.IsEmpty()
}

// Touches is an inclusive overlap test: spans sharing only an endpoint still touch.
func (s Span) Touches(o Span) bool {
	return !s.Start.After(o.End) && !o.Start.After(s.End)
}

// Overlaps is a strict overlap test: touching endpoints do not count.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// shift moves both ends by whole calendar days.
func (s Span) shift(days int) Span {
	return Span{Start: s.Start.AddDate(0, 0, days), End: s.End.AddDate(0, 0, days)}
}

// MergeSpans sorts spans by start and folds overlapping or adjacent ones
// into a disjoint, time-ordered list. The input slice is left untouched.
func MergeSpans(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := slices.Clone(spans)
	slices.SortStableFunc(sorted, func(a, b Span) int {
		return a.Start.Compare(b.Start)
	})

	merged := []Span{sorted[0]}
	for _, s := range sorted[1:] {
		cur := &merged[len(merged)-1]
		switch {
		case s.Start.After(cur.End):
			merged = append(merged, s)
		case s.End.After(cur.End):
			cur.End = s.End
		}
	}
	return merged
}
