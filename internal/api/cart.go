package api

import (
	"context"  // Engine call signature
	"net/http" // HTTP status codes
	"time"     // Event timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"ecommerce/internal/domain"     // Cart model
	"ecommerce/internal/events"     // Cart events
	"ecommerce/internal/middleware" // Request id lookup
	"ecommerce/internal/service"    // Cart Engine
)

// ModifyCartBody is the JSON body of add and remove requests
type ModifyCartBody struct {
	Username string `json:"username"`                         // Cart owner
	ItemID   uint   `json:"itemId"`                           // Catalog item id
	Quantity int    `json:"quantity" binding:"required,gt=0"` // Occurrences to add or remove
}

// GetCartHandler returns the current cart of a user
func GetCartHandler(carts *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := carts.GetCart(c.Request.Context(), c.Param("username"))
		if err != nil {
			respondError(c, err, "get cart")
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// AddToCartHandler appends quantity occurrences of an item to a cart
func AddToCartHandler(carts *service.CartService, pub events.Publisher) gin.HandlerFunc {
	return modifyCartHandler("add to cart", events.TypeItemAdded, carts.AddToCart, pub)
}

// RemoveFromCartHandler removes up to quantity occurrences of an item from a cart
func RemoveFromCartHandler(carts *service.CartService, pub events.Publisher) gin.HandlerFunc {
	return modifyCartHandler("remove from cart", events.TypeItemRemoved, carts.RemoveFromCart, pub)
}

type cartOp func(ctx context.Context, req service.ModifyCartRequest) (*domain.Cart, error)

// modifyCartHandler binds the body, validates it, runs op and announces the change
func modifyCartHandler(name, eventType string, op cartOp, pub events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body ModifyCartBody // Bind JSON request to struct
		if err := c.ShouldBindJSON(&body); err != nil {
			// Malformed JSON or a non-positive quantity
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		req, err := service.NewModifyCartRequest(body.Username, body.ItemID, body.Quantity)
		if err != nil {
			respondError(c, err, name)
			return
		}
		cart, err := op(c.Request.Context(), req) // Read, mutate and persist the cart
		if err != nil {
			respondError(c, err, name)
			return
		}
		logrus.WithFields(logrus.Fields{
			"op":         name,                    // Cart operation
			"username":   req.Username,            // Cart owner
			"item_id":    req.ItemID,              // Item changed
			"quantity":   req.Quantity,            // Requested quantity
			"total":      cart.Total.String(),     // New cart total
			"request_id": middleware.RequestID(c), // Correlation id
		}).Info("Cart modified")
		events.PublishAsync(pub, events.CartTopic, events.Event{
			Type:     eventType,           // Added or removed
			Username: req.Username,        // Cart owner
			ItemID:   req.ItemID,          // Item changed
			Quantity: req.Quantity,        // Requested quantity
			Total:    cart.Total.String(), // New cart total
			At:       time.Now().UTC(),    // Change time
		})
		c.JSON(http.StatusOK, cart)
	}
}
