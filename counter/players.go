package counter

// Players is a set of player names kept in order of first appearance.
type Players struct {
	names []string
	seen  map[string]struct{}
}

func NewPlayers() *Players {
	return &Players{
		seen: make(map[string]struct{}),
	}
}

func (p *Players) Add(name string) bool {
	if _, ok := p.seen[name]; ok {
		return false
	}
	p.seen[name] = struct{}{}
	p.names = append(p.names, name)
	return true
}

func (p *Players) Len() int {
	return len(p.names)
}

func (p *Players) Names() []string {
	r := make([]string, len(p.names))
	copy(r, p.names)
	return r
}
