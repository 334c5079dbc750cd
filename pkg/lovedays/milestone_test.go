package lovedays

import (
	"testing"
	"time"
)

func TestMilestones(t *testing.T) {
	start := day("2024-01-01")
	tests := []struct {
		days   int
		titles []string
		notes  []string
	}{
		{0, []string{"First held hands", "First month"}, []string{"A beautiful beginning", "Coming soon"}},
		{30, []string{"First held hands", "First month"}, []string{"A beautiful beginning", "Coming soon"}},
		{31, []string{"First held hands", "First month"}, []string{"A beautiful beginning", "1 day ago"}},
		{99, []string{"First held hands", "First month"}, []string{"A beautiful beginning", "69 days ago"}},
		{100, []string{"100-day anniversary"}, []string{"0 days ago"}},
		{200, []string{"100-day anniversary", "Half-year anniversary"}, []string{"100 days ago", "18 days ago"}},
		{400, []string{"100-day anniversary", "Half-year anniversary", "First anniversary"}, []string{"300 days ago", "218 days ago", "35 days ago"}},
	}
	for _, tt := range tests {
		ms := Milestones(start, tt.days)
		if len(ms) != len(tt.titles) {
			t.Errorf("Milestones(%d) = %d cards, want %d", tt.days, len(ms), len(tt.titles))
			continue
		}
		for i, m := range ms {
			if m.Title != tt.titles[i] || m.Note != tt.notes[i] {
				t.Errorf("Milestones(%d)[%d] = %q / %q, want %q / %q", tt.days, i, m.Title, m.Note, tt.titles[i], tt.notes[i])
			}
			if m.Delay != time.Duration(i)*200*time.Millisecond {
				t.Errorf("Milestones(%d)[%d].Delay = %v", tt.days, i, m.Delay)
			}
		}
	}
}

func TestMilestoneDates(t *testing.T) {
	start := day("2024-01-01")
	ms := Milestones(start, 400)
	want := []string{"2024-04-10", "2024-07-01", "2024-12-31"}
	for i, m := range ms {
		if got := m.Date.Format(DateLayout); got != want[i] {
			t.Errorf("%s date = %s, want %s", m.Title, got, want[i])
		}
	}

	starter := Milestones(start, 5)
	if !starter[0].Date.Equal(start) || starter[1].Date.Format(DateLayout) != "2024-01-31" {
		t.Errorf("starter dates = %v, %v", starter[0].Date, starter[1].Date)
	}
}

func TestMilestonesCapped(t *testing.T) {
	if n := len(Milestones(day("2000-01-01"), 10000)); n > MaxMilestones {
		t.Errorf("Milestones() = %d cards, want at most %d", n, MaxMilestones)
	}
}
