package model

import (
	"math"
	"time"
)

// Identity is the acting principal of a request.
type Identity struct {
	ID       int64
	FullName string
	Roles    []string
}

type AuditInfo struct {
	CreatedBy int64     `json:"-" db:"created_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Book struct {
	ID        int64   `json:"id" db:"id"`
	Title     string  `json:"title" db:"title"`
	Author    string  `json:"authorName" db:"author_name"`
	ISBN      string  `json:"isbn" db:"isbn"`
	Synopsis  string  `json:"synopsis" db:"synopsis"`
	Cover     string  `json:"cover" db:"book_cover"`
	Archived  bool    `json:"archived" db:"archived"`
	Shareable bool    `json:"shareable" db:"shareable"`
	OwnerID   int64   `json:"ownerId" db:"owner_id"`
	Rate      float64 `json:"rate" db:"rate"`
	AuditInfo
}

type TransactionRecord struct {
	ID              int64 `json:"id" db:"id"`
	BookID          int64 `json:"bookId" db:"book_id"`
	UserID          int64 `json:"userId" db:"user_id"`
	Returned        bool  `json:"returned" db:"returned"`
	ReturnedApprove bool  `json:"returnedApprove" db:"returned_approve"`
	AuditInfo
}

// BorrowedBook is a ledger record joined with its book.
type BorrowedBook struct {
	RecordID         int64   `json:"transactionId" db:"id"`
	BookID           int64   `json:"id" db:"book_id"`
	Title            string  `json:"title" db:"title"`
	Author           string  `json:"authorName" db:"author_name"`
	ISBN             string  `json:"isbn" db:"isbn"`
	Rate             float64 `json:"rate" db:"rate"`
	Returned         bool    `json:"returned" db:"returned"`
	ReturnedApproved bool    `json:"returnedApproved" db:"returned_approve"`
}

type Feedback struct {
	ID      int64   `json:"id" db:"id"`
	BookID  int64   `json:"bookId" db:"book_id"`
	Note    float64 `json:"note" db:"note"`
	Comment string  `json:"comment" db:"comment"`
	AuditInfo
}

type FeedbackResponse struct {
	Note        float64 `json:"note"`
	Comment     string  `json:"comment"`
	OwnFeedback bool    `json:"ownFeedback"`
}

type Role struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Pageable struct {
	Page int
	Size int
}

const (
	DefaultPage = 0
	DefaultSize = 10
	MaxSize     = 100
	// MaxPage keeps Page*Size well inside int32.
	MaxPage = math.MaxInt32 / MaxSize
)

func (p Pageable) Offset() uint64 {
	return uint64(p.Page * p.Size)
}

type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

func NewPage[T any](items []T, p Pageable, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if p.Size > 0 {
		totalPages = int((total + int64(p.Size) - 1) / int64(p.Size))
	}
	return Page[T]{
		Content:       items,
		Number:        p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         p.Page == 0,
		Last:          p.Page+1 >= totalPages,
	}
}

type CreateBookRequest struct {
	Title     string `json:"title" validate:"required,notblank"`
	Author    string `json:"authorName" validate:"required,notblank"`
	ISBN      string `json:"isbn" validate:"required,notblank"`
	Synopsis  string `json:"synopsis" validate:"required,notblank"`
	Shareable bool   `json:"shareable"`
}

type CoverRequest struct {
	Cover string `json:"cover" validate:"required,notblank"`
}

type FeedbackRequest struct {
	Note    *float64 `json:"note" validate:"required"`
	Comment string   `json:"comment"`
	BookID  int64    `json:"bookId" validate:"required"`
}

type IDResponse struct {
	ID int64 `json:"id"`
}

// EventStat aggregates consumed lending events of one type.
type EventStat struct {
	EventType string    `json:"eventType" db:"event_type"`
	Total     int64     `json:"total" db:"total"`
	Books     int64     `json:"books" db:"books"`
	Users     int64     `json:"users" db:"users"`
	LastEvent time.Time `json:"lastEvent" db:"last_event"`
}

type StatsInfo struct {
	Data []EventStat `json:"data"`
}
