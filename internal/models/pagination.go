package models

// Page is a validated page/limit pair.
type Page struct {
	Number int
	Limit  int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// PageMeta describes a page of a listing.
// swagger:model PageMeta
type PageMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPageMeta builds page metadata for total rows.
func NewPageMeta(p Page, total int) PageMeta {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return PageMeta{
		Page:  p.Number,
		Limit: p.Limit,
		Total: total,
		Pages: pages,
	}
}

// ContributionPage is one page of a contribution listing.
type ContributionPage struct {
	Data       []Contribution `json:"data"`
	Pagination PageMeta       `json:"pagination"`
}
