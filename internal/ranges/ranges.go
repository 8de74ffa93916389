// Package ranges parses compact numeric range specifications such as
// "1,3-5,10" into sets of line numbers.
package ranges

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// Interval is an inclusive pair of integers.
type Interval struct {
	Lo int
	Hi int
}

// Set is an immutable set of non-negative integers, stored as sorted,
// disjoint and non-adjacent intervals.
type Set struct {
	intervals []Interval
}

// Parse turns a range specification into a Set. Whitespace is ignored and
// empty tokens are skipped. A token "lo-hi" with lo > hi is swapped. Any
// malformed token makes the whole specification yield the empty set.
func Parse(spec string) Set {
	spec = stripSpace(spec)
	if len(spec) == 0 {
		return Set{}
	}

	var intervals []Interval

	for _, token := range strings.Split(spec, ",") {
		if len(token) == 0 {
			continue
		}

		iv, ok := parseToken(token)
		if !ok {
			return Set{}
		}

		intervals = append(intervals, iv)
	}

	return Set{intervals: normalize(intervals)}
}

func parseToken(token string) (Interval, bool) {
	idx := strings.IndexByte(token, '-')
	if idx < 0 {
		n, ok := parseInt(token)

		return Interval{Lo: n, Hi: n}, ok
	}

	lo, ok := parseInt(token[:idx])
	if !ok {
		return Interval{}, false
	}

	hi, ok := parseInt(token[idx+1:])
	if !ok {
		return Interval{}, false
	}

	if lo > hi {
		lo, hi = hi, lo
	}

	return Interval{Lo: lo, Hi: hi}, true
}

func parseInt(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

func normalize(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return nil
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Lo < intervals[j].Lo
	})

	merged := []Interval{intervals[0]}

	for _, iv := range intervals[1:] {
		last := &merged[len(merged)-1]

		// Lo is never negative, so Lo-1 cannot underflow.
		if iv.Lo-1 <= last.Hi {
			if iv.Hi > last.Hi {
				last.Hi = iv.Hi
			}

			continue
		}

		merged = append(merged, iv)
	}

	return merged
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)
}

// Has reports whether n is a member of the set.
func (s Set) Has(n int) bool {
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Hi >= n
	})

	return idx < len(s.intervals) && s.intervals[idx].Lo <= n
}

// Empty reports whether the set has no members.
func (s Set) Empty() bool {
	return len(s.intervals) == 0
}

// Len returns the number of members, saturating at math.MaxInt.
func (s Set) Len() int {
	total := 0

	for _, iv := range s.intervals {
		// Both bounds are non-negative, so the width cannot overflow.
		width := iv.Hi - iv.Lo
		if total > math.MaxInt-width-1 {
			return math.MaxInt
		}

		total += width + 1
	}

	return total
}

// Intervals returns a copy of the merged intervals in ascending order.
func (s Set) Intervals() []Interval {
	return append([]Interval(nil), s.intervals...)
}

// Lines expands the set into at most limit members in ascending order. A
// single wide interval expands into as many integers, so callers holding
// untrusted sets should bound limit or prefer Has.
func (s Set) Lines(limit int) []int {
	if limit <= 0 {
		return nil
	}

	lines := make([]int, 0, min(s.Len(), limit))

	for _, iv := range s.intervals {
		for n := iv.Lo; ; n++ {
			if len(lines) == limit {
				return lines
			}

			lines = append(lines, n)

			if n == iv.Hi {
				break
			}
		}
	}

	return lines
}

// String renders the set back into canonical range specification form.
func (s Set) String() string {
	parts := make([]string, 0, len(s.intervals))

	for _, iv := range s.intervals {
		if iv.Lo == iv.Hi {
			parts = append(parts, strconv.Itoa(iv.Lo))
		} else {
			parts = append(parts, strconv.Itoa(iv.Lo)+"-"+strconv.Itoa(iv.Hi))
		}
	}

	return strings.Join(parts, ",")
}
