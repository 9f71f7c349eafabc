package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/lending/internal/repository"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

var _ repository.Repository = (*memRepo)(nil)

// memRepo keeps the ledger in memory with the same conditional-update semantics as the store.
type memRepo struct {
	mu        sync.Mutex
	seq       int64
	books     map[int64]model.Book
	records   []model.TransactionRecord
	feedbacks []model.Feedback
	roles     []model.Role
	events    map[string]kafka.EventLending
}

func newMemRepo() *memRepo {
	return &memRepo{
		books:  make(map[int64]model.Book),
		events: make(map[string]kafka.EventLending),
	}
}

func (r *memRepo) next() int64 {
	r.seq++
	return r.seq
}

func (r *memRepo) CreateBook(_ context.Context, book model.Book) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	book.ID = r.next()
	book.CreatedAt = time.Now()
	r.books[book.ID] = book
	return book.ID, nil
}

func (r *memRepo) GetBook(_ context.Context, id int64) (model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	book, ok := r.books[id]
	if !ok {
		return model.Book{}, errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	return book, nil
}

func (r *memRepo) listBooks(p model.Pageable, keep func(model.Book) bool) model.Page[model.Book] {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []model.Book
	for _, b := range r.books {
		if keep(b) {
			items = append(items, b)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return paginate(items, p)
}

func paginate[T any](items []T, p model.Pageable) model.Page[T] {
	total := int64(len(items))
	from := int(p.Offset())
	if from > len(items) {
		from = len(items)
	}
	to := from + p.Size
	if to > len(items) {
		to = len(items)
	}
	return model.NewPage(items[from:to], p, total)
}

func (r *memRepo) ListDisplayableBooks(_ context.Context, userID int64, p model.Pageable) (model.Page[model.Book], error) {
	return r.listBooks(p, func(b model.Book) bool {
		return !b.Archived && b.Shareable && b.OwnerID != userID
	}), nil
}

func (r *memRepo) ListBooksByOwner(_ context.Context, ownerID int64, p model.Pageable) (model.Page[model.Book], error) {
	return r.listBooks(p, func(b model.Book) bool { return b.OwnerID == ownerID }), nil
}

func (r *memRepo) updateBook(id int64, fn func(*model.Book)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	book, ok := r.books[id]
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "book %d", id)
	}
	fn(&book)
	r.books[id] = book
	return nil
}

func (r *memRepo) ToggleShareable(_ context.Context, id int64) error {
	return r.updateBook(id, func(b *model.Book) { b.Shareable = !b.Shareable })
}

func (r *memRepo) ToggleArchived(_ context.Context, id int64) error {
	return r.updateBook(id, func(b *model.Book) { b.Archived = !b.Archived })
}

func (r *memRepo) UpdateCover(_ context.Context, id int64, cover string) error {
	return r.updateBook(id, func(b *model.Book) { b.Cover = cover })
}

func (r *memRepo) find(match func(model.TransactionRecord) bool) (int, bool) {
	for i, rec := range r.records {
		if match(rec) {
			return i, true
		}
	}
	return 0, false
}

func unresolvedFor(bookID, userID int64) func(model.TransactionRecord) bool {
	return func(rec model.TransactionRecord) bool {
		return rec.BookID == bookID && rec.UserID == userID && !rec.Returned && !rec.ReturnedApprove
	}
}

func (r *memRepo) returnedFor(bookID, ownerID int64) func(model.TransactionRecord) bool {
	return func(rec model.TransactionRecord) bool {
		return rec.BookID == bookID && r.books[rec.BookID].OwnerID == ownerID && rec.Returned && !rec.ReturnedApprove
	}
}

func (r *memRepo) FindUnresolvedRecord(_ context.Context, bookID, borrowerID int64) (model.TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.find(unresolvedFor(bookID, borrowerID)); ok {
		return r.records[i], nil
	}
	return model.TransactionRecord{}, errs.ErrNotFound
}

func (r *memRepo) FindReturnedUnapproved(_ context.Context, bookID, ownerID int64) (model.TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.find(r.returnedFor(bookID, ownerID)); ok {
		return r.records[i], nil
	}
	return model.TransactionRecord{}, errs.ErrNotFound
}

func (r *memRepo) CreateTransaction(_ context.Context, rec model.TransactionRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.find(unresolvedFor(rec.BookID, rec.UserID)); ok {
		return 0, errs.ErrAlreadyBorrowed
	}
	rec.ID = r.next()
	rec.CreatedAt = time.Now()
	r.records = append(r.records, rec)
	return rec.ID, nil
}

func (r *memRepo) MarkReturned(_ context.Context, bookID, borrowerID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.find(unresolvedFor(bookID, borrowerID))
	if !ok {
		return 0, errs.ErrNotFound
	}
	r.records[i].Returned = true
	return r.records[i].ID, nil
}

func (r *memRepo) ApproveReturn(_ context.Context, bookID, ownerID int64) (model.TransactionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.find(r.returnedFor(bookID, ownerID))
	if !ok {
		return model.TransactionRecord{}, errs.ErrNotFound
	}
	r.records[i].ReturnedApprove = true
	return r.records[i], nil
}

func (r *memRepo) listRecords(p model.Pageable, keep func(model.TransactionRecord) bool) model.Page[model.BorrowedBook] {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []model.BorrowedBook
	for i := len(r.records) - 1; i >= 0; i-- {
		rec := r.records[i]
		if !keep(rec) {
			continue
		}
		book := r.books[rec.BookID]
		items = append(items, model.BorrowedBook{
			RecordID:         rec.ID,
			BookID:           rec.BookID,
			Title:            book.Title,
			Author:           book.Author,
			ISBN:             book.ISBN,
			Returned:         rec.Returned,
			ReturnedApproved: rec.ReturnedApprove,
		})
	}
	return paginate(items, p)
}

func (r *memRepo) ListBorrowedByUser(_ context.Context, userID int64, p model.Pageable) (model.Page[model.BorrowedBook], error) {
	return r.listRecords(p, func(rec model.TransactionRecord) bool { return rec.UserID == userID }), nil
}

func (r *memRepo) ListReturnedForOwner(_ context.Context, ownerID int64, p model.Pageable) (model.Page[model.BorrowedBook], error) {
	return r.listRecords(p, func(rec model.TransactionRecord) bool {
		return r.books[rec.BookID].OwnerID == ownerID
	}), nil
}

func (r *memRepo) CreateFeedback(_ context.Context, f model.Feedback) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = r.next()
	r.feedbacks = append(r.feedbacks, f)
	return f.ID, nil
}

func (r *memRepo) ListFeedbackByBook(_ context.Context, bookID int64, p model.Pageable) (model.Page[model.Feedback], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []model.Feedback
	for i := len(r.feedbacks) - 1; i >= 0; i-- {
		if r.feedbacks[i].BookID == bookID {
			items = append(items, r.feedbacks[i])
		}
	}
	return paginate(items, p), nil
}

func (r *memRepo) SeedRoles(_ context.Context, names []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		exists := false
		for _, role := range r.roles {
			if role.Name == name {
				exists = true
			}
		}
		if !exists {
			r.roles = append(r.roles, model.Role{ID: r.next(), Name: name})
		}
	}
	return nil
}

func (r *memRepo) ListRoles(context.Context) ([]model.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.Role(nil), r.roles...), nil
}

func (r *memRepo) RecordEvent(_ context.Context, event kafka.EventLending) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.EventID]; !ok {
		r.events[event.EventID] = event
	}
	return nil
}

func (r *memRepo) GetStats(context.Context) (model.StatsInfo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byType := make(map[kafka.EventType]*model.EventStat)
	for _, ev := range r.events {
		st, ok := byType[ev.EventType]
		if !ok {
			st = &model.EventStat{EventType: string(ev.EventType)}
			byType[ev.EventType] = st
		}
		st.Total++
		if ev.Timestamp.After(st.LastEvent) {
			st.LastEvent = ev.Timestamp
		}
	}
	info := model.StatsInfo{Data: []model.EventStat{}}
	for _, st := range byType {
		info.Data = append(info.Data, *st)
	}
	sort.Slice(info.Data, func(i, j int) bool { return info.Data[i].EventType < info.Data[j].EventType })
	return info, nil
}
