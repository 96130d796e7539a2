package queries

// Role names as they appear in JWT claims.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// ProductRef is the product projection embedded in cart item views. It is
// nil when the referenced product no longer exists.
type ProductRef struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images"`
}
