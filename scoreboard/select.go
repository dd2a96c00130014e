package scoreboard

import (
	"net/url"

	"parkour_scoreboard/logging"
)

// MostRows returns the index of the unit with the most entries. Ties keep
// the first unit. It returns -1 for an empty list.
func MostRows(units []*Unit) int {
	if len(units) == 0 {
		return -1
	}

	selected := 0
	count := 0
	for i, u := range units {
		if u.Rows() > count {
			count = u.Rows()
			selected = i
		}
	}
	return selected
}

// Select picks the unit named by the layout's query parameter, or the most
// populated unit when the parameter is absent or matches no menu entry.
func (b *Board) Select(query url.Values) int {
	param := b.Layout.Param()
	if values, ok := query[param]; ok && len(values) > 0 {
		if i, ok := b.Lookup(values[0]); ok {
			return i
		}
		logging.Log.Warnf("No %s matches %s=%q on event %q, showing the most populated table.", b.Layout.Attr(), param, values[0], b.Event.ID)
	}

	return MostRows(b.Units)
}

func (b *Board) Initial(query url.Values) ViewState {
	return ViewState{}.Show(b.Select(query))
}
