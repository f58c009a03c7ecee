package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library

	"ecommerce/internal/middleware" // Request id lookup
	"ecommerce/internal/service"    // User Store
)

// CreateUserHandler registers a user and gives it an empty cart
func CreateUserHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		user, err := users.Create(c.Request.Context(), req) // Validate, hash and store
		if err != nil {
			// Validation failures and duplicates are logged for the operator
			logrus.WithFields(logrus.Fields{
				"username":   req.Username,            // Requested username
				"error":      err.Error(),             // Reason
				"request_id": middleware.RequestID(c), // Correlation id
			}).Warn("User creation rejected")
			respondError(c, err, "create user")
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    user.ID,                 // New user id
			"username":   user.Username,           // New username
			"request_id": middleware.RequestID(c), // Correlation id
		}).Info("User created")
		c.JSON(http.StatusOK, user) // Password is never serialized
	}
}

// FindUserByUsernameHandler looks a user up by username
func FindUserByUsernameHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByUsername(c.Request.Context(), c.Param("username"))
		if err != nil {
			respondError(c, err, "find user")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// FindUserByIDHandler looks a user up by numeric id
func FindUserByIDHandler(users *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id") // Parse user id from path
		if !ok {
			return
		}
		user, err := users.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "find user by id")
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
