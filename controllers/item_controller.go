package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jerekarp/hyte-backend/models"
	"github.com/jerekarp/hyte-backend/services"
)

// ItemController serves the in-memory demo resource. The store is
// injected so tests and main can construct their own.
type ItemController struct {
	store *services.ItemStore
}

func NewItemController(store *services.ItemStore) *ItemController {
	return &ItemController{store: store}
}

func (ic *ItemController) GetItems(c *gin.Context) {
	c.JSON(http.StatusOK, ic.store.List())
}

func (ic *ItemController) GetItemByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	item, found := ic.store.Find(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (ic *ItemController) PostItem(c *gin.Context) {
	var input models.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := ic.store.Add(input.Name)
	c.JSON(http.StatusCreated, gin.H{"message": "item created", "item": item})
}

func (ic *ItemController) PutItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var input models.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, found := ic.store.Update(id, input.Name)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item updated", "item": item})
}

func (ic *ItemController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	if !ic.store.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "item deleted", "id": id})
}
