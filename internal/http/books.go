package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf/internal/auth"
	"bookshelf/internal/books"
)

// BooksController exposes the owner-scoped book CRUD endpoints. All routes
// sit behind the auth middleware, so the user ID is always present.
type BooksController struct {
	service *books.Service
}

// NewBooksController creates a new books controller.
func NewBooksController(service *books.Service) *BooksController {
	return &BooksController{service: service}
}

// List handles GET /api/books.
func (bc *BooksController) List(c *gin.Context) {
	result, err := bc.service.List(auth.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Create handles POST /api/books/addBook.
func (bc *BooksController) Create(c *gin.Context) {
	var input books.CreateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.service.Create(auth.GetUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

// Get handles GET /api/books/editBook/:id.
func (bc *BooksController) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.service.Get(auth.GetUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update handles PUT /api/books/editBook/:id.
func (bc *BooksController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var input books.UpdateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.service.Update(auth.GetUserID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

type updateProgressRequest struct {
	CurrentPage *int `json:"current_page"`
}

// UpdateProgress handles PATCH /api/books/:id/progress.
func (bc *BooksController) UpdateProgress(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CurrentPage == nil {
		respondBadRequest(c, "current_page is required")
		return
	}

	book, err := bc.service.UpdateProgress(auth.GetUserID(c), id, *req.CurrentPage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

type updateRatingRequest struct {
	Rating *int `json:"rating"`
}

// UpdateRating handles PATCH /api/books/:id/rating.
func (bc *BooksController) UpdateRating(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating == nil {
		respondBadRequest(c, "rating is required")
		return
	}

	book, err := bc.service.UpdateRating(auth.GetUserID(c), id, *req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Delete handles DELETE /api/books/:id.
func (bc *BooksController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.service.Delete(auth.GetUserID(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book deleted successfully"})
}
