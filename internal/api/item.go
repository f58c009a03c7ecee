package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework

	"ecommerce/internal/service" // Item Catalog
)

// ListItemsHandler returns the whole catalog, an empty array when it is empty
func ListItemsHandler(items *service.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := items.List(c.Request.Context()) // Read-through cached listing
		if err != nil {
			respondError(c, err, "list items")
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GetItemHandler returns one item by id
func GetItemHandler(items *service.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c, "id") // Parse item id from path
		if !ok {
			return
		}
		item, err := items.FindByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "get item")
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// FindItemsByNameHandler returns the items with an exact name; none is a 404
func FindItemsByNameHandler(items *service.ItemService) gin.HandlerFunc {
	return func(c *gin.Context) {
		found, err := items.FindByName(c.Request.Context(), c.Param("name"))
		if err != nil {
			respondError(c, err, "find items by name")
			return
		}
		// Unlike the full listing, an empty search is reported as not found
		if len(found) == 0 {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, found)
	}
}
