// internal/domain/vehicle/entity.go
package vehicle

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"
)

// Default category labels. The set is open: admins can register new ones.
const (
	TypeCar     = "Carro"
	TypeMoto    = "Moto"
	TypeArmored = "Blindado"
)

// NotApplicable is the sentinel for technical fields left blank on the form.
const NotApplicable = "N/A"

// Vehicle is one inventory item. Price and KM carry both the canonical
// display string and the numeric value derived from it; the numeric fields
// are authoritative for sorting and filtering.
type Vehicle struct {
	ID           string         `json:"id" db:"id"`
	Name         string         `json:"name" db:"name"`
	Brand        string         `json:"brand" db:"brand"`
	Type         string         `json:"type" db:"type"`
	Price        string         `json:"price" db:"price"`
	PriceNumeric float64        `json:"priceNumeric" db:"price_numeric"`
	Year         int            `json:"year" db:"year"`
	KM           string         `json:"km" db:"km"`
	KMNumeric    int            `json:"kmNumeric" db:"km_numeric"`
	Color        string         `json:"color" db:"color"`
	Image        string         `json:"image" db:"image"`
	Featured     bool           `json:"featured" db:"featured"`
	SellerName   string         `json:"sellerName" db:"seller_name"`
	HidePrice    bool           `json:"hidePrice" db:"hide_price"`
	Description  string         `json:"description" db:"description"`
	Engine       string         `json:"engine" db:"engine"`
	Transmission string         `json:"transmission" db:"transmission"`
	Seats        string         `json:"seats" db:"seats"`
	Tires        string         `json:"tires" db:"tires"`
	ManualProp   string         `json:"manualProp" db:"manual_prop"`
	SpareKey     string         `json:"spareKey" db:"spare_key"`
	Steering     string         `json:"steering" db:"steering"`
	Review       string         `json:"review" db:"review"`
	Gallery      pq.StringArray `json:"gallery" db:"gallery"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
}

// TypeRegistry is the validated open set of category labels, seeded with the
// defaults and grown by admin submissions.
type TypeRegistry struct {
	mu    sync.RWMutex
	known map[string]struct{}
}

func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		known: map[string]struct{}{
			TypeCar:     {},
			TypeMoto:    {},
			TypeArmored: {},
		},
	}
}

// Register adds a category label to the set and returns the stored label.
// Blank labels are ignored.
func (r *TypeRegistry) Register(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	r.mu.Lock()
	r.known[name] = struct{}{}
	r.mu.Unlock()
	return name
}

// Contains reports whether the label has been registered.
func (r *TypeRegistry) Contains(name string) bool {
	r.mu.RLock()
	_, ok := r.known[name]
	r.mu.RUnlock()
	return ok
}

// Known returns every registered label, sorted.
func (r *TypeRegistry) Known() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.known))
	for t := range r.known {
		out = append(out, t)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}
