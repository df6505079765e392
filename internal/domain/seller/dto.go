// internal/domain/seller/dto.go
package seller

// Form carries an admin seller submission. An empty ID means a new seller.
// The password is only written when supplied, so editing a seller without
// retyping the password keeps the stored one.
type Form struct {
	ID        string `json:"id"`
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role"`
	ImageURL  string `json:"imageUrl"`
	Username  string `json:"username" binding:"required"`
	Password  string `json:"password"`
	Instagram string `json:"instagram"`
	Whatsapp  string `json:"whatsapp"`
	Email     string `json:"email"`
	Bio       string `json:"bio"`
	Active    bool   `json:"active"`
	IsAdmin   bool   `json:"isAdmin"`
}

// Credentials is a login attempt. Identifier may be the username or email.
type Credentials struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
