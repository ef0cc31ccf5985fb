package models

const (
	CategoryAll         = "all"
	CategoryProgramming = "PROGRAMMING"
	CategoryDesign      = "DESIGN"
	CategoryScience     = "SCIENCE"
	CategoryFiction     = "FICTION"
	CategoryTechnology  = "TECHNOLOGY"
	CategoryHistory     = "HISTORY"
	CategoryBusiness    = "BUSINESS"
	CategorySelfHelp    = "SELF_HELP"
)

type Book struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	ISBN          string  `json:"isbn"`
	StockQuantity int     `json:"stockQuantity"`
	Category      string  `json:"category"`
	ImageURL      string  `json:"imageUrl"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// InStock reports whether at least one copy is available.
func (b Book) InStock() bool {
	return b.StockQuantity > 0
}
