package domain

// Location is the decomposed browser URL the orchestrator is reacting to.
type Location struct {
	Pathname   string `json:"pathname"`
	Search     string `json:"search"`
	Hash       string `json:"hash"`
	HasHistory bool   `json:"hasHistory"`
}

// SameResource reports whether two locations point at the same page.
// Hash is ignored: anchors never change what data a page needs.
func (l Location) SameResource(other Location) bool {
	return l.Pathname == other.Pathname && l.Search == other.Search
}
