package query

// State is the view selection a user drives: active tab, search text and
// page. Selecting a tab goes back to page 1; editing the search text keeps
// the current page.
type State struct {
	Tab    Tab
	Search string
	Page   int
}

func NewState() State {
	return State{Tab: TabAll, Page: 1}
}

func (s *State) SelectTab(tab Tab) {
	s.Tab = tab
	s.Page = 1
}

func (s *State) SetSearch(text string) {
	s.Search = text
}

func (s *State) SetPage(page int) {
	s.Page = page
}

func (s State) Params() Params {
	return Params{Tab: s.Tab, Search: s.Search, Page: s.Page, PageSize: PageSize}
}
