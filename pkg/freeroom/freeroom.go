package freeroom

import "errors"

// Buildings is the fixed set of queryable campus buildings, in the order
// they are presented.
var Buildings = []string{
	"一教", "二教", "三教", "四教", "理教",
	"文史", "哲学", "地学楼", "国关", "政管",
}

// DateKeyword selects which day a query is about.
type DateKeyword string

const (
	DateToday    DateKeyword = "today"
	DateTomorrow DateKeyword = "tomorrow"
	DateDayAfter DateKeyword = "day_after"
)

// dateTokens maps API date keywords onto the tokens the query script
// expects as its second argument.
var dateTokens = map[DateKeyword]string{
	DateToday:    "今天",
	DateTomorrow: "明天",
	DateDayAfter: "后天",
}

var (
	ErrUnknownBuilding    = errors.New("unknown building")
	ErrInvalidDateKeyword = errors.New("invalid date keyword")
	ErrInvalidPeriod      = errors.New("period must be between 1 and 12")
	// ErrQueryInProgress is returned when a query is requested while a
	// previous one is still running.
	ErrQueryInProgress = errors.New("free-room query already in progress")
	// ErrMalformedResponse is returned when the script output does not
	// parse as the expected nested object.
	ErrMalformedResponse = errors.New("malformed free-room data")
)

// PeriodResult is the answer to a point query: the free rooms in one
// building during one period. When the script response did not contain the
// requested building, Building names the substitute that was used and
// Approximate is set.
type PeriodResult struct {
	Building    string   `json:"building"`
	Requested   string   `json:"requested"`
	Approximate bool     `json:"approximate"`
	Period      int      `json:"period"`
	Rooms       []string `json:"rooms"`
}

// TableRow is one row of the tabular query result. Date is empty for
// date-independent ("default") entries.
type TableRow struct {
	Date   string   `json:"date,omitempty"`
	Period int      `json:"period"`
	Rooms  []string `json:"rooms"`
}

// TableResult is the answer to a table query.
type TableResult struct {
	Building    string     `json:"building"`
	Requested   string     `json:"requested"`
	Approximate bool       `json:"approximate"`
	Rows        []TableRow `json:"rows"`
}

func validBuilding(name string) bool {
	for _, b := range Buildings {
		if b == name {
			return true
		}
	}
	return false
}
