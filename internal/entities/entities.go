package entities

import (
	"time"
)

// ReadingStatus classifies a book by how far the owner has read it.
// It is stored, not computed on read: every mutation that touches
// current_page or no_of_pages recomputes it before persisting.
type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "Want to Read"
	StatusReading    ReadingStatus = "Reading"
	StatusRead       ReadingStatus = "Read"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `gorm:"size:100" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Book is a reading record owned by exactly one user. All queries and
// mutations are filtered by UserID; a book is never visible to anyone else.
type Book struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	UserID      uint          `gorm:"index" json:"user_id"`
	Title       string        `gorm:"size:512" json:"title"`
	Author      string        `gorm:"size:256" json:"author"`
	CoverImage  string        `gorm:"size:2048" json:"cover_image,omitempty"`
	NoOfPages   int           `json:"no_of_pages"`
	CurrentPage int           `json:"current_page"`
	PublishedAt Date          `json:"published_at"`
	Genre       string        `gorm:"size:100" json:"genre,omitempty"`
	Notes       string        `gorm:"type:text" json:"notes,omitempty"`
	StartDate   *Date         `json:"start_date"`
	FinishDate  *Date         `json:"finish_date"`
	Status      ReadingStatus `gorm:"size:20" json:"status"`
	Rating      *int          `json:"rating"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
