package dto

type IdeaOutput struct {
	Date string `json:"date"`
	Idea string `json:"idea"`
	Link string `json:"link,omitempty"`
}

type MonthInput struct {
	Year  int
	Month int
}

type CellOutput struct {
	Day     int          `json:"day,omitempty"`
	Date    string       `json:"date,omitempty"`
	Padding bool         `json:"padding,omitempty"`
	Empty   bool         `json:"empty,omitempty"`
	Today   bool         `json:"today,omitempty"`
	Ideas   []IdeaOutput `json:"ideas,omitempty"`
}

// GridOutput is a month laid out as six Monday-first weeks.
type GridOutput struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Title string         `json:"title"`
	Prev  string         `json:"prev"`
	Next  string         `json:"next"`
	Weeks [][]CellOutput `json:"weeks"`
}

// TodayCount is the number of cells flagged as today; zero or one.
func (g GridOutput) TodayCount() int {
	n := 0
	for _, week := range g.Weeks {
		for _, c := range week {
			if c.Today {
				n++
			}
		}
	}
	return n
}
