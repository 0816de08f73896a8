package pages

// NavigateFunc moves the owning controller to page.
type NavigateFunc func(page int) (bool, error)

// Pagination maps (current page, page count) to next/previous/jump actions.
// It holds no state of its own.
type Pagination struct {
	CurrentPage int
	PageCount   int
	navigate    NavigateFunc
}

func NewPagination(current, pageCount int, navigate NavigateFunc) Pagination {
	return Pagination{CurrentPage: current, PageCount: pageCount, navigate: navigate}
}

func (p Pagination) HasNext() bool     { return p.CurrentPage+1 <= p.PageCount }
func (p Pagination) HasPrevious() bool { return p.CurrentPage-1 > 0 }

func (p Pagination) Next() (bool, error) {
	if !p.HasNext() {
		return false, nil
	}
	return p.navigateTo(p.CurrentPage + 1)
}

func (p Pagination) Previous() (bool, error) {
	if !p.HasPrevious() {
		return false, nil
	}
	return p.navigateTo(p.CurrentPage - 1)
}

func (p Pagination) JumpTo(page int) (bool, error) {
	if page < 1 || page > p.PageCount {
		return false, nil
	}
	return p.navigateTo(page)
}

func (p Pagination) navigateTo(page int) (bool, error) {
	if p.navigate == nil {
		return false, nil
	}
	return p.navigate(page)
}

// PageLink is one numbered entry of the rendered pagination bar.
type PageLink struct {
	Page    int
	Current bool
}

// Window returns up to size page links centred on the current page.
func (p Pagination) Window(size int) []PageLink {
	if p.PageCount < 1 || size < 1 {
		return nil
	}
	if size > p.PageCount {
		size = p.PageCount
	}
	start := p.CurrentPage - size/2
	if start < 1 {
		start = 1
	}
	if start+size-1 > p.PageCount {
		start = p.PageCount - size + 1
	}
	out := make([]PageLink, 0, size)
	for i := start; i < start+size; i++ {
		out = append(out, PageLink{Page: i, Current: i == p.CurrentPage})
	}
	return out
}
