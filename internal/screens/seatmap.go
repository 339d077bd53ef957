package screens

import (
	"fmt"
	"regexp"
	"strings"
)

var seatLabelPattern = regexp.MustCompile(`^[A-Z]{1,3}[0-9]{1,3}$`)

// SeatRow is one row of the seat map in layout order.
type SeatRow struct {
	Row   string   `json:"row"`
	Seats []string `json:"seats"`
}

// ValidateLayout checks that every label is well formed and unique.
func ValidateLayout(layout []string) error {
	if len(layout) == 0 {
		return fmt.Errorf("seat layout must not be empty")
	}

	seen := make(map[string]bool, len(layout))
	for _, label := range layout {
		if !seatLabelPattern.MatchString(label) {
			return fmt.Errorf("invalid seat label %q", label)
		}
		if seen[label] {
			return fmt.Errorf("duplicate seat label %q", label)
		}
		seen[label] = true
	}
	return nil
}

// GroupByRow splits an ordered layout into rows, preserving layout order
// both across rows and within each row.
func GroupByRow(layout []string) []SeatRow {
	var rows []SeatRow
	index := make(map[string]int)

	for _, label := range layout {
		row := rowOf(label)
		i, ok := index[row]
		if !ok {
			i = len(rows)
			index[row] = i
			rows = append(rows, SeatRow{Row: row})
		}
		rows[i].Seats = append(rows[i].Seats, label)
	}
	return rows
}

// LayoutSet returns the layout as a membership set.
func LayoutSet(layout []string) map[string]bool {
	set := make(map[string]bool, len(layout))
	for _, label := range layout {
		set[label] = true
	}
	return set
}

func rowOf(label string) string {
	return strings.TrimRight(label, "0123456789")
}
