// internal/pkg/session/types.go
package session

import "time"

// Data is the server-side session created on a successful login and torn
// down on logout. It replaces the client-side logged-in flag the old site
// kept in local storage; the display name and photo live here instead.
type Data struct {
	SellerID  string    `json:"seller_id"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url"`
	IsAdmin   bool      `json:"is_admin"`
	LoginAt   time.Time `json:"login_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
