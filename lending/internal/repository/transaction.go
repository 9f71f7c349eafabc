package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
)

var recordColumns = []string{"h.id", "h.book_id", "h.user_id", "h.returned", "h.returned_approve", "h.created_by", "h.created_at"}

var borrowedColumns = []string{"h.id", "h.book_id", "b.title", "b.author_name", "b.isbn", rateColumn, "h.returned", "h.returned_approve"}

var unresolved = sq.Eq{"h.returned": false, "h.returned_approve": false}

func (r *repository) FindUnresolvedRecord(ctx context.Context, bookID, borrowerID int64) (model.TransactionRecord, error) {
	q := qb.Select(recordColumns...).
		From(historyTableName + " h").
		Where(sq.Eq{"h.book_id": bookID, "h.user_id": borrowerID}).
		Where(unresolved)
	return collectOne[model.TransactionRecord](ctx, r, q,
		fmt.Sprintf("unresolved record book=%d user=%d", bookID, borrowerID))
}

func (r *repository) FindReturnedUnapproved(ctx context.Context, bookID, ownerID int64) (model.TransactionRecord, error) {
	q := qb.Select(recordColumns...).
		From(historyTableName + " h").
		Join(booksTableName + " b on b.id = h.book_id").
		Where(sq.Eq{"h.book_id": bookID, "b.owner_id": ownerID, "h.returned": true, "h.returned_approve": false}).
		OrderBy("h.created_at", "h.id")
	return collectOne[model.TransactionRecord](ctx, r, q,
		fmt.Sprintf("returned record book=%d owner=%d", bookID, ownerID))
}

func (r *repository) CreateTransaction(ctx context.Context, rec model.TransactionRecord) (int64, error) {
	q, args, err := qb.Insert(historyTableName).
		Columns("book_id", "user_id", "returned", "returned_approve", "created_by").
		Values(rec.BookID, rec.UserID, rec.Returned, rec.ReturnedApprove, rec.CreatedBy).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, errors.Wrapf(errs.ErrAlreadyBorrowed, "book %d user %d", rec.BookID, rec.UserID)
		}
		r.log.Error("CreateTransaction", zap.Error(err))
		return 0, err
	}
	return id, nil
}

const markReturnedQuery = `
update book_transaction_history
set returned = true
where book_id = @book_id
  and user_id = @user_id
  and not returned
  and not returned_approve
returning id`

func (r *repository) MarkReturned(ctx context.Context, bookID, borrowerID int64) (int64, error) {
	return r.updateRecord(ctx, markReturnedQuery, pgx.NamedArgs{
		"book_id": bookID,
		"user_id": borrowerID,
	})
}

// The target row is locked by the subquery, so a concurrent approval of the
// same record finds nothing once the first commits.
const approveReturnQuery = `
update book_transaction_history h
set returned_approve = true
where h.id = (
    select t.id
    from book_transaction_history t
    join books b on b.id = t.book_id
    where t.book_id = @book_id
      and b.owner_id = @owner_id
      and t.returned
      and not t.returned_approve
    order by t.created_at, t.id
    limit 1
    for update of t
)
  and not h.returned_approve
returning h.id, h.book_id, h.user_id, h.returned, h.returned_approve, h.created_by, h.created_at`

// ApproveReturn returns the record it approved.
func (r *repository) ApproveReturn(ctx context.Context, bookID, ownerID int64) (model.TransactionRecord, error) {
	rows, err := r.db.Query(ctx, approveReturnQuery, pgx.NamedArgs{
		"book_id":  bookID,
		"owner_id": ownerID,
	})
	if err != nil {
		return model.TransactionRecord{}, errors.Wrap(err, "approve return")
	}
	rec, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.TransactionRecord])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.TransactionRecord{}, errors.Wrapf(errs.ErrNotFound, "record book %d", bookID)
		}
		return model.TransactionRecord{}, errors.Wrap(err, "approve return")
	}
	return rec, nil
}

func (r *repository) updateRecord(ctx context.Context, q string, args pgx.NamedArgs) (int64, error) {
	var id int64
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errors.Wrapf(errs.ErrNotFound, "record book %v", args["book_id"])
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) ListBorrowedByUser(ctx context.Context, userID int64, p model.Pageable) (model.Page[model.BorrowedBook], error) {
	where := sq.Eq{"h.user_id": userID}
	return r.listBorrowed(ctx, where, p)
}

func (r *repository) ListReturnedForOwner(ctx context.Context, ownerID int64, p model.Pageable) (model.Page[model.BorrowedBook], error) {
	where := sq.Eq{"b.owner_id": ownerID}
	return r.listBorrowed(ctx, where, p)
}

func (r *repository) listBorrowed(ctx context.Context, where sq.Sqlizer, p model.Pageable) (model.Page[model.BorrowedBook], error) {
	from := historyTableName + " h"
	join := booksTableName + " b on b.id = h.book_id"
	return collectPage[model.BorrowedBook](ctx, r,
		qb.Select(borrowedColumns...).From(from).Join(join).Where(where).OrderBy("h.created_at desc", "h.id desc"),
		qb.Select("count(*)").From(from).Join(join).Where(where),
		p)
}
