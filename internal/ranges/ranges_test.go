package ranges_test

import (
	"math"
	"testing"

	"github.com/ezerfernandes/mdfolio/internal/ranges"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want []int
	}{
		{"singles", "2,4,9", []int{2, 4, 9}},
		{"interval", "1-3", []int{1, 2, 3}},
		{"mixed", "1-3,7,9-10", []int{1, 2, 3, 7, 9, 10}},
		{"duplicates", "1,1,1-2", []int{1, 2}},
		{"overlap", "1-4,3-6", []int{1, 2, 3, 4, 5, 6}},
		{"adjacent", "1-2,3", []int{1, 2, 3}},
		{"unsorted", "9,1,5", []int{1, 5, 9}},
		{"swapped pair", "5-3", []int{3, 4, 5}},
		{"whitespace", " 1 , 3 - 4 ", []int{1, 3, 4}},
		{"empty tokens", "1,,3,", []int{1, 3}},
		{"zero", "0", []int{0}},
		{"degenerate pair", "4-4", []int{4}},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ranges.Parse(tt.spec).Lines(100))
		})
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()

	for _, spec := range []string{
		"",
		"   ",
		"abc",
		"1,a",
		"1-",
		"-3",
		"1-2-3",
		"+4",
		"1.5",
		"99999999999999999999999",
		"{1}",
	} {
		set := ranges.Parse(spec)

		assert.True(t, set.Empty(), "spec %q", spec)
		assert.Zero(t, set.Len(), "spec %q", spec)
		assert.False(t, set.Has(1), "spec %q", spec)
	}
}

func TestSetHas(t *testing.T) {
	t.Parallel()

	set := ranges.Parse("2,5-7,100")

	for _, n := range []int{2, 5, 6, 7, 100} {
		assert.True(t, set.Has(n), "expected %d in set", n)
	}

	for _, n := range []int{0, 1, 3, 4, 8, 99, 101} {
		assert.False(t, set.Has(n), "expected %d not in set", n)
	}
}

func TestSetWideInterval(t *testing.T) {
	t.Parallel()

	set := ranges.Parse("1-999999999")

	require.Len(t, set.Intervals(), 1)
	assert.True(t, set.Has(500000000))
	assert.False(t, set.Has(1000000000))
	assert.Equal(t, 999999999, set.Len())
	assert.Equal(t, []int{1, 2, 3}, set.Lines(3))
}

func TestSetMaxInterval(t *testing.T) {
	t.Parallel()

	set := ranges.Parse("0-9223372036854775807")

	require.False(t, set.Empty())
	assert.Equal(t, math.MaxInt, set.Len())
	assert.True(t, set.Has(math.MaxInt))
	assert.Equal(t, []int{0, 1}, set.Lines(2))

	set = ranges.Parse("0-9223372036854775807,5,9223372036854775806")
	assert.Equal(t, math.MaxInt, set.Len())

	set = ranges.Parse("0-4611686018427387903,4611686018427387905-9223372036854775807")
	require.Len(t, set.Intervals(), 2)
	assert.Equal(t, math.MaxInt, set.Len())
}

func TestSetLinesLimit(t *testing.T) {
	t.Parallel()

	set := ranges.Parse("1-2,5,8-9")

	assert.Equal(t, []int{1, 2, 5, 8, 9}, set.Lines(10))
	assert.Equal(t, []int{1, 2, 5}, set.Lines(3))
	assert.Nil(t, set.Lines(0))
	assert.Empty(t, ranges.Parse("").Lines(10))
}

func TestSetString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1-3,7,9-10", ranges.Parse("10,9,7,3,2,1").String())
	assert.Equal(t, "", ranges.Parse("").String())
}
