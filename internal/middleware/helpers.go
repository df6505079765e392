// internal/middleware/helpers.go
package middleware

import "github.com/gin-gonic/gin"

// MustGetSellerID gets the authenticated seller's id from context or panics.
func MustGetSellerID(c *gin.Context) string {
	id, exists := c.Get("seller_id")
	if !exists {
		panic("seller_id not found in context")
	}
	return id.(string)
}

// GetSellerName gets the authenticated seller's display name from context.
func GetSellerName(c *gin.Context) string {
	name, exists := c.Get("seller_name")
	if !exists {
		return ""
	}
	s, ok := name.(string)
	if !ok {
		return ""
	}
	return s
}
