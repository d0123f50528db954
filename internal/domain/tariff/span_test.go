//go:build unit

package tariff_test

import (
	"testing"

	"venue-pricing/internal/domain/tariff"
	"venue-pricing/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func span(startHour, endHour int) tariff.Span {
	return tariff.NewSpan(builder.June2025(2, startHour, 0), builder.June2025(2, endHour, 0))
}

func TestMergeSpans(t *testing.T) {
	cases := []struct {
		name string
		in   []tariff.Span
		want []tariff.Span
	}{
		{name: "empty", in: nil, want: nil},
		{name: "single", in: []tariff.Span{span(8, 10)}, want: []tariff.Span{span(8, 10)}},
		{
			name: "disjoint out of order",
			in:   []tariff.Span{span(14, 16), span(8, 10)},
			want: []tariff.Span{span(8, 10), span(14, 16)},
		},
		{
			name: "overlapping are extended",
			in:   []tariff.Span{span(8, 12), span(10, 14)},
			want: []tariff.Span{span(8, 14)},
		},
		{
			name: "adjacent are joined",
			in:   []tariff.Span{span(8, 10), span(10, 12)},
			want: []tariff.Span{span(8, 12)},
		},
		{
			name: "contained are discarded",
			in:   []tariff.Span{span(8, 18), span(9, 10), span(12, 13)},
			want: []tariff.Span{span(8, 18)},
		},
		{
			name: "chain",
			in:   []tariff.Span{span(15, 17), span(9, 11), span(10, 12), span(16, 19)},
			want: []tariff.Span{span(9, 12), span(15, 19)},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.want, tariff.MergeSpans(c.in)); diff != "" {
				t.Errorf("MergeSpans mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("does not reorder the caller's slice", func(t *testing.T) {
		in := []tariff.Span{span(14, 16), span(8, 10)}
		tariff.MergeSpans(in)
		assert.Equal(t, []tariff.Span{span(14, 16), span(8, 10)}, in)
	})
}

func TestSpanIntersect(t *testing.T) {
	got, ok := span(8, 12).Intersect(span(10, 14))
	assert.True(t, ok)
	assert.Equal(t, span(10, 12), got)

	_, ok = span(8, 10).Intersect(span(10, 14))
	assert.False(t, ok)

	assert.True(t, span(8, 10).Touches(span(10, 14)))
	assert.False(t, span(8, 10).Overlaps(span(10, 14)))
	assert.InDelta(t, 4.0, span(8, 12).Hours(), 1e-9)
}
