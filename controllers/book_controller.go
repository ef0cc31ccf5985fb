package controllers

import (
	"bookmart/models"
	"bookmart/services"
	"strings"

	"github.com/gin-gonic/gin"
)

type BookController struct {
	Books *services.BookService
}

// @Summary List books
// @Description Catalog with optional search text and category filter
// @Tags Books
// @Produce json
// @Param search query string false "Matches title, author or description"
// @Param category query string false "Category, or all"
// @Success 200 {object} models.Response
// @Router /api/books [get]
func (ctrl *BookController) ListBooks(c *gin.Context) {
	books, err := ctrl.Books.ListBooks(c.Request.Context())
	if err != nil {
		backendError(c, err, "Failed to load books")
		return
	}

	category := c.DefaultQuery("category", models.CategoryAll)
	filtered := services.FilterBooks(books, c.Query("search"), category)

	ok(c, "Books retrieved", gin.H{
		"books":      filtered,
		"categories": services.Categories(books),
		"total":      len(filtered),
	})
}

// @Summary Search books
// @Tags Books
// @Produce json
// @Param keyword query string true "Keyword"
// @Success 200 {object} models.Response
// @Router /api/books/search [get]
func (ctrl *BookController) SearchBooks(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		badRequest(c, "Keyword is required", nil)
		return
	}

	books, err := ctrl.Books.SearchBooks(c.Request.Context(), keyword)
	if err != nil {
		backendError(c, err, "Search failed")
		return
	}
	ok(c, "Books retrieved", books)
}

// @Summary Book detail
// @Tags Books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /api/books/{id} [get]
func (ctrl *BookController) GetBook(c *gin.Context) {
	book, err := ctrl.Books.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		backendError(c, err, "Book not found")
		return
	}
	ok(c, "Book retrieved", book)
}
