package lovedays

import "fmt"

// ShareTitle is the title of the shared text.
const ShareTitle = "Our days in love"

// ShareText is the message offered to the share sheet or clipboard.
func ShareText(r Result) string {
	return fmt.Sprintf("💕 %s & %s have been in love for %d days! Every day is full of love~ 🌹",
		r.Name1, r.Name2, r.Days)
}
