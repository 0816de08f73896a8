package domain

// SortKey identifies an ordering of list results.
type SortKey string

const (
	SortChronological SortKey = "chronological"
	SortMostRecent    SortKey = "most-recent"
	SortTopPastDay    SortKey = "top-past-day"
	SortTopPastWeek   SortKey = "top-past-week"
	SortTopPastMonth  SortKey = "top-past-month"
	SortTopPastYear   SortKey = "top-past-year"
	SortTopAllTime    SortKey = "top-all-time"
	SortOldest        SortKey = "oldest"
	SortRandom        SortKey = "random"
)

// ClipSorts lists the orderings offered for clips under an episode, in menu order.
var ClipSorts = []SortKey{
	SortChronological,
	SortMostRecent,
	SortTopPastDay,
	SortTopPastWeek,
	SortTopPastMonth,
	SortTopPastYear,
	SortTopAllTime,
	SortOldest,
	SortRandom,
}

// DefaultClipSort is used when an episode page is first rendered.
const DefaultClipSort = SortTopPastYear

// IsOneOf reports whether s is contained in allowed.
func (s SortKey) IsOneOf(allowed []SortKey) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func (s SortKey) String() string { return string(s) }
