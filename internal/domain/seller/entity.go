// internal/domain/seller/entity.go
package seller

// RoleAdmin marks administrators. Administrators never appear in the public
// specialist listing and IsAdmin must always mirror this role value.
const RoleAdmin = "ADMINISTRADOR"

// DefaultImageURL is used when a seller has no photo.
const DefaultImageURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?q=80&w=200&auto=format&fit=crop"

// Seller is a sales contact and, when IsAdmin is set, an admin identity.
// The password is stored and compared in plaintext by the backing store;
// that is a known weakness kept for compatibility with the persisted rows.
type Seller struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Role      string `json:"role" db:"role"`
	ImageURL  string `json:"imageUrl" db:"image_url"`
	Username  string `json:"username" db:"username"`
	Password  string `json:"-" db:"password"`
	Instagram string `json:"instagram" db:"instagram"`
	Whatsapp  string `json:"whatsapp" db:"whatsapp"`
	Email     string `json:"email" db:"email"`
	Bio       string `json:"bio" db:"bio"`
	Active    bool   `json:"active" db:"active"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// Listable reports whether the seller belongs in the public specialist list.
func (s Seller) Listable() bool {
	return s.Active && !s.IsAdmin
}
