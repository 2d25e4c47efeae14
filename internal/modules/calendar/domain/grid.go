package domain

import (
	"sort"
	"time"
)

const (
	GridWeeks = 6
	GridCells = GridWeeks * 7
)

// Cell is one square of the month grid. Padding cells fall outside the
// month and carry no day. Empty cells are in-month days without ideas.
type Cell struct {
	Day     int
	Date    string
	Padding bool
	Empty   bool
	Today   bool
	Ideas   []Idea
}

type Grid struct {
	Year  int
	Month time.Month
	Cells [GridCells]Cell
}

// Prev and Next return the first day of the adjacent months.
func (g Grid) Prev() time.Time {
	return time.Date(g.Year, g.Month-1, 1, 0, 0, 0, 0, time.UTC)
}

func (g Grid) Next() time.Time {
	return time.Date(g.Year, g.Month+1, 1, 0, 0, 0, 0, time.UTC)
}

// Weeks splits the cells into rows starting on Monday.
func (g Grid) Weeks() [][]Cell {
	rows := make([][]Cell, 0, GridWeeks)
	for w := 0; w < GridWeeks; w++ {
		rows = append(rows, g.Cells[w*7:(w+1)*7])
	}
	return rows
}

// BuildMonth lays ideas out on a Monday-first grid. Ideas outside the month
// are ignored; ideas sharing a day keep their input order. today is compared
// by calendar date only.
func BuildMonth(ideas []Idea, year int, month time.Month, today time.Time) Grid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	year, month = first.Year(), first.Month()
	g := Grid{Year: year, Month: month}

	byDay := map[int][]Idea{}
	for _, idea := range ideas {
		day, err := idea.Day()
		if err != nil || day.Year() != year || day.Month() != month {
			continue
		}
		byDay[day.Day()] = append(byDay[day.Day()], idea)
	}

	offset := (int(first.Weekday()) + 6) % 7
	daysIn := first.AddDate(0, 1, -1).Day()
	todayY, todayM, todayD := today.Date()

	for i := range g.Cells {
		day := i - offset + 1
		if day < 1 || day > daysIn {
			g.Cells[i] = Cell{Padding: true}
			continue
		}
		dayIdeas := byDay[day]
		g.Cells[i] = Cell{
			Day:   day,
			Date:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(DateLayout),
			Empty: len(dayIdeas) == 0,
			Today: todayY == year && todayM == month && todayD == day,
			Ideas: dayIdeas,
		}
	}
	return g
}

// SortByDate orders valid ideas by day, keeping file order for ties.
func SortByDate(ideas []Idea) []Idea {
	out := append([]Idea(nil), ideas...)
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].Day()
		b, _ := out[j].Day()
		return a.Before(b)
	})
	return out
}
