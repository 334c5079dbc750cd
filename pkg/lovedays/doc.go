// Package lovedays counts the days a couple has been together and derives
// the milestone cards and share text shown alongside the photo wall.
//
// All calculations are done on calendar dates in UTC, so the count only
// changes at midnight and never depends on the time of day:
//
//	r, err := lovedays.Count(lovedays.Couple{Name1: "Ann", Name2: "Bo", Since: since}, time.Now())
//	if errors.IsAdvisory(err) {
//	    // missing names or a future start date
//	}
//	fmt.Println(r.Days, lovedays.ShareText(r))
package lovedays
