// internal/domain/vehicle/dto.go
package vehicle

// Form carries an admin vehicle submission. Every free-text field arrives as
// typed on the form; the admin service normalizes it before persisting.
// An empty ID means a new vehicle.
type Form struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" binding:"required"`
	Brand        string   `json:"brand" binding:"required"`
	Type         string   `json:"type"`
	NewType      string   `json:"newType"`
	Price        string   `json:"price"`
	Year         int      `json:"year" binding:"required,min=1900,max=2100"`
	KM           string   `json:"km"`
	Color        string   `json:"color"`
	Image        string   `json:"image"`
	Featured     bool     `json:"featured"`
	SellerName   string   `json:"sellerName"`
	HidePrice    bool     `json:"hidePrice"`
	Description  string   `json:"description"`
	Engine       string   `json:"engine"`
	Transmission string   `json:"transmission"`
	Seats        string   `json:"seats"`
	Tires        string   `json:"tires"`
	ManualProp   string   `json:"manualProp"`
	SpareKey     string   `json:"spareKey"`
	Steering     string   `json:"steering"`
	Review       string   `json:"review"`
	Gallery      []string `json:"gallery"`
}

// ListFilters selects vehicles for the public catalog. The sentinel values
// ("Todos" for type, "Todas" for brand and color) match everything.
type ListFilters struct {
	Type  string `form:"type"`
	Brand string `form:"brand"`
	Color string `form:"color"`
	Sort  string `form:"sort"`
}

// Facets are the filter domains derived from the current collection, each
// prefixed with its sentinel value.
type Facets struct {
	Types  []string `json:"types"`
	Brands []string `json:"brands"`
	Colors []string `json:"colors"`
}

// Sort keys accepted by the catalog listing.
const (
	SortFeatured  = "featured"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortYearDesc  = "year-desc"
)

// Sentinel filter values meaning "match everything".
const (
	AllTypes  = "Todos"
	AllBrands = "Todas"
	AllColors = "Todas"
)
