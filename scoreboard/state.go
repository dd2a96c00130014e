package scoreboard

// ViewState is everything a rendered board depends on besides its data.
type ViewState struct {
	Selected int
	MenuOpen bool
}

func (s ViewState) Show(unit int) ViewState {
	s.Selected = unit
	return s
}

func (s ViewState) OpenMenu() ViewState {
	s.MenuOpen = true
	return s
}

func (s ViewState) CloseMenu() ViewState {
	s.MenuOpen = false
	return s
}

func (s ViewState) ToggleMenu() ViewState {
	s.MenuOpen = !s.MenuOpen
	return s
}
