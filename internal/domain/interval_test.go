package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("failed to parse time %q: %v", value, err)
	}
	return parsed
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{
			name:   "partial overlap at the end",
			aStart: "2026-03-10T10:00:00Z", aEnd: "2026-03-10T12:00:00Z",
			bStart: "2026-03-10T11:00:00Z", bEnd: "2026-03-10T13:00:00Z",
			want: true,
		},
		{
			name:   "partial overlap at the start",
			aStart: "2026-03-10T11:00:00Z", aEnd: "2026-03-10T13:00:00Z",
			bStart: "2026-03-10T10:00:00Z", bEnd: "2026-03-10T12:00:00Z",
			want: true,
		},
		{
			name:   "a contains b",
			aStart: "2026-03-10T09:00:00Z", aEnd: "2026-03-10T18:00:00Z",
			bStart: "2026-03-10T11:00:00Z", bEnd: "2026-03-10T12:00:00Z",
			want: true,
		},
		{
			name:   "b contains a",
			aStart: "2026-03-10T11:00:00Z", aEnd: "2026-03-10T12:00:00Z",
			bStart: "2026-03-10T09:00:00Z", bEnd: "2026-03-10T18:00:00Z",
			want: true,
		},
		{
			name:   "identical intervals",
			aStart: "2026-03-10T10:00:00Z", aEnd: "2026-03-10T12:00:00Z",
			bStart: "2026-03-10T10:00:00Z", bEnd: "2026-03-10T12:00:00Z",
			want: true,
		},
		{
			name:   "touching endpoints do not overlap",
			aStart: "2026-03-10T10:00:00Z", aEnd: "2026-03-10T12:00:00Z",
			bStart: "2026-03-10T12:00:00Z", bEnd: "2026-03-10T14:00:00Z",
			want: false,
		},
		{
			name:   "touching endpoints reversed",
			aStart: "2026-03-10T12:00:00Z", aEnd: "2026-03-10T14:00:00Z",
			bStart: "2026-03-10T10:00:00Z", bEnd: "2026-03-10T12:00:00Z",
			want: false,
		},
		{
			name:   "fully disjoint",
			aStart: "2026-03-10T08:00:00Z", aEnd: "2026-03-10T09:00:00Z",
			bStart: "2026-03-10T15:00:00Z", bEnd: "2026-03-10T16:00:00Z",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				mustTime(t, tt.aStart), mustTime(t, tt.aEnd),
				mustTime(t, tt.bStart), mustTime(t, tt.bEnd),
			)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains(t *testing.T) {
	windowStart := mustTime(t, "2026-03-10T09:00:00Z")
	windowEnd := mustTime(t, "2026-03-10T18:00:00Z")

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{
			name:  "interval strictly inside",
			start: "2026-03-10T10:00:00Z", end: "2026-03-10T11:00:00Z",
			want: true,
		},
		{
			name:  "interval equals window",
			start: "2026-03-10T09:00:00Z", end: "2026-03-10T18:00:00Z",
			want: true,
		},
		{
			name:  "interval touches window start",
			start: "2026-03-10T09:00:00Z", end: "2026-03-10T10:00:00Z",
			want: true,
		},
		{
			name:  "interval touches window end",
			start: "2026-03-10T17:00:00Z", end: "2026-03-10T18:00:00Z",
			want: true,
		},
		{
			name:  "interval starts before window",
			start: "2026-03-10T08:30:00Z", end: "2026-03-10T10:00:00Z",
			want: false,
		},
		{
			name:  "interval ends after window",
			start: "2026-03-10T17:00:00Z", end: "2026-03-10T18:30:00Z",
			want: false,
		},
		{
			name:  "interval fully outside",
			start: "2026-03-10T19:00:00Z", end: "2026-03-10T20:00:00Z",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contains(windowStart, windowEnd, mustTime(t, tt.start), mustTime(t, tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}
