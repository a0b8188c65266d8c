// Package books implements the reading-progress business rules: status
// derivation, progress computation, validation and owner-scoped CRUD.
package books

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"bookshelf/internal/apperrors"
	bookstore "bookshelf/internal/database/books"
	"bookshelf/internal/entities"
)

// deriveStatus classifies the reading state from the current position.
// Applied on every mutation that touches current_page or no_of_pages so
// the stored status is never stale.
func deriveStatus(currentPage, totalPages int) entities.ReadingStatus {
	if currentPage == 0 {
		return entities.StatusWantToRead
	}
	if currentPage >= totalPages {
		return entities.StatusRead
	}
	return entities.StatusReading
}

// progress returns the reading position as a rounded percentage.
// totalPages > 0 is a stored invariant, the guard is for safety only.
func progress(currentPage, totalPages int) int {
	if totalPages <= 0 {
		return 0
	}
	return int(math.Round(float64(currentPage) / float64(totalPages) * 100))
}

// BookWithProgress is a book record plus its computed progress percentage.
type BookWithProgress struct {
	entities.Book
	Progress int `json:"progress"`
}

func withProgress(book entities.Book) BookWithProgress {
	return BookWithProgress{
		Book:     book,
		Progress: progress(book.CurrentPage, book.NoOfPages),
	}
}

// CreateBookInput carries the fields accepted when adding a book.
type CreateBookInput struct {
	Title       string         `json:"title"`
	Author      string         `json:"author"`
	CoverImage  string         `json:"cover_image"`
	NoOfPages   int            `json:"no_of_pages"`
	CurrentPage int            `json:"current_page"`
	PublishedAt *entities.Date `json:"published_at"`
	Genre       string         `json:"genre"`
	Notes       string         `json:"notes"`
	StartDate   *entities.Date `json:"start_date"`
	FinishDate  *entities.Date `json:"finish_date"`
}

// UpdateBookInput carries a partial update. Fields absent from the request
// keep their stored values; nullable fields present as null are cleared.
type UpdateBookInput struct {
	Title       Optional[string]        `json:"title"`
	Author      Optional[string]        `json:"author"`
	CoverImage  Optional[string]        `json:"cover_image"`
	NoOfPages   Optional[int]           `json:"no_of_pages"`
	CurrentPage Optional[int]           `json:"current_page"`
	PublishedAt Optional[entities.Date] `json:"published_at"`
	Genre       Optional[string]        `json:"genre"`
	Notes       Optional[string]        `json:"notes"`
	StartDate   Optional[entities.Date] `json:"start_date"`
	FinishDate  Optional[entities.Date] `json:"finish_date"`
}

// Service implements owner-scoped book operations.
type Service struct {
	repo *bookstore.Repository
}

// NewService creates a new book service.
func NewService(repo *bookstore.Repository) *Service {
	return &Service{repo: repo}
}

// bookNotFoundOr maps a repository error to the service taxonomy.
// A book owned by someone else surfaces as not found, never as forbidden,
// so its existence is not leaked.
func bookNotFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.KindNotFound, "book not found")
	}
	return apperrors.Wrap(apperrors.KindInternal, message, err)
}

// List returns all books owned by userID, newest first, each with its
// computed progress percentage.
func (s *Service) List(userID uint) ([]BookWithProgress, error) {
	records, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to list books", err)
	}

	books := make([]BookWithProgress, 0, len(records))
	for _, record := range records {
		books = append(books, withProgress(record))
	}
	return books, nil
}

// Create validates and persists a new book owned by userID.
func (s *Service) Create(userID uint, in CreateBookInput) (*BookWithProgress, error) {
	if in.Title == "" || in.Author == "" || in.NoOfPages == 0 || in.PublishedAt == nil {
		return nil, apperrors.New(apperrors.KindValidation, "title, author, no_of_pages and published_at are required")
	}
	if in.NoOfPages < 0 {
		return nil, apperrors.New(apperrors.KindValidation, "no_of_pages must be a positive integer")
	}
	if in.CurrentPage < 0 {
		return nil, apperrors.New(apperrors.KindValidation, "current_page cannot be negative")
	}
	if in.CurrentPage > in.NoOfPages {
		return nil, apperrors.New(apperrors.KindValidation, "current_page cannot exceed the total number of pages")
	}

	book := &entities.Book{
		UserID:      userID,
		Title:       in.Title,
		Author:      in.Author,
		CoverImage:  in.CoverImage,
		NoOfPages:   in.NoOfPages,
		CurrentPage: in.CurrentPage,
		PublishedAt: *in.PublishedAt,
		Genre:       in.Genre,
		Notes:       in.Notes,
		StartDate:   in.StartDate,
		FinishDate:  in.FinishDate,
		Status:      deriveStatus(in.CurrentPage, in.NoOfPages),
	}

	if err := s.repo.Create(book); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to create book", err)
	}

	result := withProgress(*book)
	return &result, nil
}

// Get returns a single owned book with its progress.
func (s *Service) Get(userID, id uint) (*BookWithProgress, error) {
	book, err := s.repo.GetForUser(id, userID)
	if err != nil {
		return nil, bookNotFoundOr(err, "failed to find book")
	}

	result := withProgress(*book)
	return &result, nil
}

// Update applies a partial update to an owned book, validates the final
// page counts and recomputes the status before persisting.
func (s *Service) Update(userID, id uint, in UpdateBookInput) (*BookWithProgress, error) {
	book, err := s.repo.GetForUser(id, userID)
	if err != nil {
		return nil, bookNotFoundOr(err, "failed to find book")
	}

	if in.Title.Set {
		if in.Title.Value == nil || *in.Title.Value == "" {
			return nil, apperrors.New(apperrors.KindValidation, "title cannot be empty")
		}
		book.Title = *in.Title.Value
	}
	if in.Author.Set {
		if in.Author.Value == nil || *in.Author.Value == "" {
			return nil, apperrors.New(apperrors.KindValidation, "author cannot be empty")
		}
		book.Author = *in.Author.Value
	}
	if in.NoOfPages.Set {
		if in.NoOfPages.Value == nil {
			return nil, apperrors.New(apperrors.KindValidation, "no_of_pages cannot be null")
		}
		book.NoOfPages = *in.NoOfPages.Value
	}
	if in.CurrentPage.Set {
		if in.CurrentPage.Value == nil {
			return nil, apperrors.New(apperrors.KindValidation, "current_page cannot be null")
		}
		book.CurrentPage = *in.CurrentPage.Value
	}
	if in.PublishedAt.Set {
		if in.PublishedAt.Value == nil {
			return nil, apperrors.New(apperrors.KindValidation, "published_at cannot be null")
		}
		book.PublishedAt = *in.PublishedAt.Value
	}
	if in.CoverImage.Set {
		book.CoverImage = stringOrEmpty(in.CoverImage.Value)
	}
	if in.Genre.Set {
		book.Genre = stringOrEmpty(in.Genre.Value)
	}
	if in.Notes.Set {
		book.Notes = stringOrEmpty(in.Notes.Value)
	}
	if in.StartDate.Set {
		book.StartDate = in.StartDate.Value
	}
	if in.FinishDate.Set {
		book.FinishDate = in.FinishDate.Value
	}

	// Validate the final page counts, not just the incoming ones.
	if book.NoOfPages <= 0 {
		return nil, apperrors.New(apperrors.KindValidation, "no_of_pages must be a positive integer")
	}
	if book.CurrentPage < 0 {
		return nil, apperrors.New(apperrors.KindValidation, "current_page cannot be negative")
	}
	if book.CurrentPage > book.NoOfPages {
		return nil, apperrors.New(apperrors.KindValidation, "current_page cannot exceed the total number of pages")
	}

	book.Status = deriveStatus(book.CurrentPage, book.NoOfPages)

	if err := s.repo.Save(book); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to update book", err)
	}

	result := withProgress(*book)
	return &result, nil
}

// UpdateProgress moves the reading position of an owned book. Only
// current_page and the derived status are persisted.
func (s *Service) UpdateProgress(userID, id uint, currentPage int) (*BookWithProgress, error) {
	book, err := s.repo.GetForUser(id, userID)
	if err != nil {
		return nil, bookNotFoundOr(err, "failed to find book")
	}

	if currentPage < 0 {
		return nil, apperrors.New(apperrors.KindValidation, "current_page cannot be negative")
	}
	if currentPage > book.NoOfPages {
		return nil, apperrors.New(apperrors.KindValidation, "current_page cannot exceed the total number of pages")
	}

	status := deriveStatus(currentPage, book.NoOfPages)
	if err := s.repo.SetProgress(book, currentPage, status); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to update progress", err)
	}

	book.CurrentPage = currentPage
	book.Status = status
	result := withProgress(*book)
	return &result, nil
}

// UpdateRating sets the 0-5 star rating of an owned book.
func (s *Service) UpdateRating(userID, id uint, rating int) (*BookWithProgress, error) {
	if rating < 0 || rating > 5 {
		return nil, apperrors.New(apperrors.KindValidation, "rating must be between 0 and 5")
	}

	book, err := s.repo.GetForUser(id, userID)
	if err != nil {
		return nil, bookNotFoundOr(err, "failed to find book")
	}

	if err := s.repo.SetRating(book, rating); err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to update rating", err)
	}

	book.Rating = &rating
	result := withProgress(*book)
	return &result, nil
}

// Delete removes an owned book.
func (s *Service) Delete(userID, id uint) error {
	book, err := s.repo.GetForUser(id, userID)
	if err != nil {
		return bookNotFoundOr(err, "failed to find book")
	}
	if err := s.repo.Delete(book); err != nil {
		return apperrors.Wrap(apperrors.KindInternal, "failed to delete book", err)
	}
	return nil
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
