// Package books provides database operations for book records.
//
// Every lookup takes the owning user's ID and filters on it: a query for a
// book that exists but belongs to someone else behaves exactly like a query
// for a book that does not exist.
package books

import (
	"gorm.io/gorm"

	"bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new book.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// ListByUser returns all books owned by userID, newest first.
func (r *Repository) ListByUser(userID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&books).Error
	return books, err
}

// GetForUser retrieves a single book owned by userID.
// Returns gorm.ErrRecordNotFound when the book is absent or owned by
// a different user.
func (r *Repository) GetForUser(id, userID uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&book).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Save writes back the full book record.
func (r *Repository) Save(book *entities.Book) error {
	return r.db.Save(book).Error
}

// SetProgress persists only the reading position and the status derived
// from it. A map is used so a zero current_page is still written.
func (r *Repository) SetProgress(book *entities.Book, currentPage int, status entities.ReadingStatus) error {
	return r.db.Model(book).Updates(map[string]any{
		"current_page": currentPage,
		"status":       status,
	}).Error
}

// SetRating persists only the rating.
func (r *Repository) SetRating(book *entities.Book, rating int) error {
	return r.db.Model(book).Update("rating", rating).Error
}

// Delete removes the book.
func (r *Repository) Delete(book *entities.Book) error {
	return r.db.Delete(book).Error
}
