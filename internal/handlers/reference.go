package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prorab-finance/internal/database"
	"prorab-finance/internal/storage"
)

//
// СПРАВОЧНИКИ
//

type referenceInput struct {
	Name string `json:"name"`
}

func ListCategories(c *gin.Context) {
	cats, err := storage.NewReferenceStore(database.DB).Categories(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, cats)
}

func CreateCategory(c *gin.Context) {
	var input referenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	cat, err := storage.NewReferenceStore(database.DB).CreateCategory(currentUserID(c), input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func DeleteCategory(c *gin.Context) {
	err := storage.NewReferenceStore(database.DB).DeleteCategory(currentUserID(c), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func ListPaymentMethods(c *gin.Context) {
	methods, err := storage.NewReferenceStore(database.DB).PaymentMethods(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load payment methods"})
		return
	}
	c.JSON(http.StatusOK, methods)
}

func CreatePaymentMethod(c *gin.Context) {
	var input referenceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	method, err := storage.NewReferenceStore(database.DB).CreatePaymentMethod(currentUserID(c), input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment method"})
		return
	}
	c.JSON(http.StatusCreated, method)
}

func DeletePaymentMethod(c *gin.Context) {
	err := storage.NewReferenceStore(database.DB).DeletePaymentMethod(currentUserID(c), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "payment method not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete payment method"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
