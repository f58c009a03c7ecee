package domain

// User is a registered customer. Every user owns exactly one Cart.
type User struct {
	ID       uint   `json:"id"`       // Assigned on creation
	Username string `json:"username"` // Unique username
	Password string `json:"-"`        // Hashed password, never serialized
	Cart     *Cart  `json:"-"`        // Owned cart, serialized from the cart side only
}
