package lovedays

import (
	"fmt"
	"time"
)

// MaxMilestones caps the number of cards shown.
const MaxMilestones = 3

// MilestoneStagger is the entrance delay step between cards.
const MilestoneStagger = 200 * time.Millisecond

// Milestone is one anniversary card.
type Milestone struct {
	Icon  string
	Title string
	Date  time.Time
	Note  string
	Delay time.Duration
}

type anniversary struct {
	days  int
	icon  string
	title string
}

var anniversaries = []anniversary{
	{100, "💯", "100-day anniversary"},
	{182, "💝", "Half-year anniversary"},
	{365, "🎉", "First anniversary"},
}

// Milestones returns the reached anniversaries for a couple together since
// start for days days. Before the first anniversary is reached, two
// starter cards are returned instead.
func Milestones(start time.Time, days int) []Milestone {
	var out []Milestone
	for _, a := range anniversaries {
		if days < a.days {
			continue
		}
		out = append(out, Milestone{
			Icon:  a.icon,
			Title: a.title,
			Date:  start.AddDate(0, 0, a.days),
			Note:  ago(days - a.days),
		})
	}

	if len(out) == 0 {
		firstMonth := "Coming soon"
		if days > 30 {
			firstMonth = ago(days - 30)
		}
		out = append(out,
			Milestone{Icon: "💕", Title: "First held hands", Date: start, Note: "A beautiful beginning"},
			Milestone{Icon: "🌟", Title: "First month", Date: start.AddDate(0, 0, 30), Note: firstMonth},
		)
	}

	if len(out) > MaxMilestones {
		out = out[:MaxMilestones]
	}
	for i := range out {
		out[i].Delay = time.Duration(i) * MilestoneStagger
	}
	return out
}

func ago(n int) string {
	if n == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", n)
}
