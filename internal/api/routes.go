package api

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library

	"ecommerce/internal/events"  // Domain event publishing
	"ecommerce/internal/service" // Business services
)

// Services bundles what the handlers call into
type Services struct {
	Users  *service.UserService  // User Store
	Items  *service.ItemService  // Item Catalog
	Carts  *service.CartService  // Cart Engine
	Orders *service.OrderService // Order Engine
	Events events.Publisher      // Cart and order events, nil disables them
}

// RegisterRoutes mounts every endpoint on r
func RegisterRoutes(r *gin.Engine, s Services, db *gorm.DB) {
	if s.Events == nil {
		s.Events = events.NopPublisher{} // Publishing is optional
	}

	r.GET("/healthz", HealthHandler(db)) // Liveness and database ping

	apiGroup := r.Group("/api")

	// User routes
	userGroup := apiGroup.Group("/user")
	userGroup.POST("/create", CreateUserHandler(s.Users))           // Registration endpoint
	userGroup.GET("/id/:id", FindUserByIDHandler(s.Users))          // Lookup by id
	userGroup.GET("/:username", FindUserByUsernameHandler(s.Users)) // Lookup by username

	// Item routes
	itemGroup := apiGroup.Group("/item")
	itemGroup.GET("", ListItemsHandler(s.Items))                  // Whole catalog
	itemGroup.GET("/name/:name", FindItemsByNameHandler(s.Items)) // Exact name search
	itemGroup.GET("/:id", GetItemHandler(s.Items))                // Lookup by id

	// Cart routes
	cartGroup := apiGroup.Group("/cart")
	cartGroup.GET("/:username", GetCartHandler(s.Carts))                        // Current cart
	cartGroup.POST("/addToCart", AddToCartHandler(s.Carts, s.Events))           // Add occurrences
	cartGroup.POST("/removeFromCart", RemoveFromCartHandler(s.Carts, s.Events)) // Remove occurrences

	// Order routes
	orderGroup := apiGroup.Group("/order")
	orderGroup.POST("/submit/:username", SubmitOrderHandler(s.Orders, s.Events)) // Submit the cart
	orderGroup.GET("/history/:username", OrderHistoryHandler(s.Orders))          // Order history
}
