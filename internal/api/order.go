package api

import (
	"net/http" // HTTP status codes
	"time"     // Event timestamps

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"ecommerce/internal/events"     // Order events
	"ecommerce/internal/middleware" // Request id lookup
	"ecommerce/internal/service"    // Order Engine
)

// SubmitOrderHandler turns the user's cart into a new order
func SubmitOrderHandler(orders *service.OrderService, pub events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username") // Order owner
		order, err := orders.Submit(c.Request.Context(), username)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"username":   username,                // Order owner
				"error":      err.Error(),             // Reason
				"request_id": middleware.RequestID(c), // Correlation id
			}).Error("Order submission failure")
			respondError(c, err, "submit order")
			return
		}
		logrus.WithFields(logrus.Fields{
			"order_id":   order.ID,                // New order id
			"username":   username,                // Order owner
			"items":      len(order.Items),        // Number of occurrences
			"total":      order.Total.String(),    // Order total
			"request_id": middleware.RequestID(c), // Correlation id
		}).Info("Order submitted")
		events.PublishAsync(pub, events.OrderTopic, events.Event{
			Type:     events.TypeOrderSubmitted, // Order placed
			Username: username,                  // Order owner
			OrderID:  order.ID,                  // New order id
			Total:    order.Total.String(),      // Order total
			At:       time.Now().UTC(),          // Submission time
		})
		c.JSON(http.StatusOK, order)
	}
}

// OrderHistoryHandler lists the user's orders, oldest first
func OrderHistoryHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		history, err := orders.History(c.Request.Context(), c.Param("username"))
		if err != nil {
			respondError(c, err, "order history")
			return
		}
		c.JSON(http.StatusOK, history)
	}
}
