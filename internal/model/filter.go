package model

const (
	// DefaultPage is used when page is missing or invalid
	DefaultPage = 1
	// DefaultLimit is used when limit is missing or invalid
	DefaultLimit = 10
)

// CaseFilter describes which cases should be listed
type CaseFilter struct {
	Search       string
	BusinessName string
	Department   string
	Coid         string
	Mid          string
	Page         int
	Limit        int
}

// Skip is number of records preceding requested page
func (f CaseFilter) Skip() int {
	return (f.Page - 1) * f.Limit
}

// CasePage is single page of listed cases
type CasePage struct {
	Cases []*Case `json:"cases"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
	Pages int64   `json:"pages"`
}

// NewCasePage builds page and calculates number of pages
func NewCasePage(cases []*Case, total int64, f CaseFilter) *CasePage {
	if cases == nil {
		cases = make([]*Case, 0)
	}

	var pages int64
	if f.Limit > 0 {
		limit := int64(f.Limit)
		pages = (total + limit - 1) / limit
	}

	return &CasePage{
		Cases: cases,
		Total: total,
		Page:  f.Page,
		Pages: pages,
	}
}
