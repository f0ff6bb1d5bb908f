package entities

// Ledger is the set of links already announced. Links are kept in
// insertion order and are never removed.
type Ledger struct {
	links []string
	index map[string]struct{}
}

func NewLedger(links ...string) *Ledger {
	ledger := &Ledger{index: make(map[string]struct{}, len(links))}
	for _, link := range links {
		ledger.Add(link)
	}
	return ledger
}

func (l *Ledger) Has(link string) bool {
	_, found := l.index[link]
	return found
}

// Add reports whether the link was not already present.
func (l *Ledger) Add(link string) bool {
	if l.Has(link) {
		return false
	}
	l.index[link] = struct{}{}
	l.links = append(l.links, link)
	return true
}

func (l *Ledger) Links() []string {
	links := make([]string, len(l.links))
	copy(links, l.links)
	return links
}

func (l *Ledger) Len() int {
	return len(l.links)
}
