package engine

// Page is one contiguous slice of the resource list. Index is 0-based;
// Count is the number of resources on the page.
type Page struct {
	Resources []Resource
	Index     int
	Count     int
}

// Paginate splits resources into contiguous pages of near-equal size: no
// page exceeds maxPerPage, page sizes differ by at most one, and the
// remainder is spread across the leading pages. Resource order is preserved.
//
// An empty resource list yields a single empty page, and a non-positive
// maxPerPage puts everything on one page.
func Paginate(resources []Resource, maxPerPage int) []Page {
	if maxPerPage < 1 || len(resources) <= maxPerPage {
		return []Page{{Resources: resources, Index: 0, Count: len(resources)}}
	}

	pageCount := (len(resources) + maxPerPage - 1) / maxPerPage
	base := len(resources) / pageCount
	remainder := len(resources) % pageCount

	pages := make([]Page, 0, pageCount)
	offset := 0
	for i := 0; i < pageCount; i++ {
		size := base
		if i < remainder {
			size++
		}
		pages = append(pages, Page{
			Resources: resources[offset : offset+size],
			Index:     i,
			Count:     size,
		})
		offset += size
	}
	return pages
}

// Pager tracks the current page of a paginated resource list, clamping every
// navigation request into [0, pageCount-1] instead of erroring.
type Pager struct {
	pageCount int
	current   int
}

func NewPager(pageCount int) *Pager {
	if pageCount < 1 {
		pageCount = 1
	}
	return &Pager{pageCount: pageCount}
}

func (p *Pager) Current() int   { return p.current }
func (p *Pager) PageCount() int { return p.pageCount }

// Go moves to page n, clamped to the valid range, and returns the resulting
// page index.
func (p *Pager) Go(n int) int {
	if n < 0 {
		n = 0
	}
	if n >= p.pageCount {
		n = p.pageCount - 1
	}
	p.current = n
	return p.current
}

func (p *Pager) Next() int { return p.Go(p.current + 1) }
func (p *Pager) Prev() int { return p.Go(p.current - 1) }
