// Package calendar holds the Innworld calendar reference tables: eight named
// weekdays and sixteen months, several of which are unnamed or disputed in
// canon. The tables are static and consumed read-only by the submission form
// and its validation ranges.
package calendar

import "fmt"

type Day struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type Month struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Season string `json:"season"`
	Known  bool   `json:"known"`
}

const (
	DaysPerWeek   = 8
	WeeksPerMonth = 4
	DaysPerMonth  = DaysPerWeek * WeeksPerMonth
	MonthsPerYear = 16
)

var Days = []Day{
	{Index: 1, Name: "Beithday"},
	{Index: 2, Name: "Saelsmorn"},
	{Index: 3, Name: "— (3rd day, unknown)"},
	{Index: 4, Name: "Nendas / Liriean"},
	{Index: 5, Name: "Tirenv"},
	{Index: 6, Name: "Lundas / Helday"},
	{Index: 7, Name: "Laudas / Gnorna"},
	{Index: 8, Name: "Zenze"},
}

var Months = []Month{
	{Index: 1, Name: "Caelhic (Spring 1)", Season: "Spring", Known: true},
	{Index: 2, Name: "— (Spring 2, unknown)", Season: "Spring", Known: false},
	{Index: 3, Name: "— (Spring 3, unknown)", Season: "Spring", Known: false},
	{Index: 4, Name: "Rerrk (Spring 4)", Season: "Spring", Known: true},
	{Index: 5, Name: "— (Summer 1, unknown)", Season: "Summer", Known: false},
	{Index: 6, Name: "— (Summer 2, unknown)", Season: "Summer", Known: false},
	{Index: 7, Name: "Solla? (Summer 3, ambiguous)", Season: "Summer", Known: false},
	{Index: 8, Name: "Weris? (Summer 4, ambiguous)", Season: "Summer", Known: false},
	{Index: 9, Name: "Evium (Autumn 1)", Season: "Autumn", Known: true},
	{Index: 10, Name: "— (Autumn 2, unknown)", Season: "Autumn", Known: false},
	{Index: 11, Name: "— (Autumn 3, unknown)", Season: "Autumn", Known: false},
	{Index: 12, Name: "— (Autumn 4, unknown)", Season: "Autumn", Known: false},
	{Index: 13, Name: "Liuwhe (Winter 1)", Season: "Winter", Known: true},
	{Index: 14, Name: "Mouring (Winter 2)", Season: "Winter", Known: true},
	{Index: 15, Name: "Elfebelfast (Winter 3)", Season: "Winter", Known: true},
	{Index: 16, Name: "— (Winter 4, unknown)", Season: "Winter", Known: false},
}

// MonthLabel returns the display name for a month index, with a generic
// fallback for out-of-table values.
func MonthLabel(index int) string {
	for _, m := range Months {
		if m.Index == index {
			return m.Name
		}
	}
	return fmt.Sprintf("Month %d", index)
}

// DayLabel returns the display name for a weekday index.
func DayLabel(index int) string {
	for _, d := range Days {
		if d.Index == index {
			return d.Name
		}
	}
	return fmt.Sprintf("Day %d", index)
}
