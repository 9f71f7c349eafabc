package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=../service/mocks/repository.go -package=mocks

type Repository interface {
	CreateBook(ctx context.Context, book model.Book) (int64, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListDisplayableBooks(ctx context.Context, userID int64, p model.Pageable) (model.Page[model.Book], error)
	ListBooksByOwner(ctx context.Context, ownerID int64, p model.Pageable) (model.Page[model.Book], error)
	ToggleShareable(ctx context.Context, id int64) error
	ToggleArchived(ctx context.Context, id int64) error
	UpdateCover(ctx context.Context, id int64, cover string) error

	FindUnresolvedRecord(ctx context.Context, bookID, borrowerID int64) (model.TransactionRecord, error)
	FindReturnedUnapproved(ctx context.Context, bookID, ownerID int64) (model.TransactionRecord, error)
	CreateTransaction(ctx context.Context, rec model.TransactionRecord) (int64, error)
	MarkReturned(ctx context.Context, bookID, borrowerID int64) (int64, error)
	ApproveReturn(ctx context.Context, bookID, ownerID int64) (model.TransactionRecord, error)
	ListBorrowedByUser(ctx context.Context, userID int64, p model.Pageable) (model.Page[model.BorrowedBook], error)
	ListReturnedForOwner(ctx context.Context, ownerID int64, p model.Pageable) (model.Page[model.BorrowedBook], error)

	CreateFeedback(ctx context.Context, f model.Feedback) (int64, error)
	ListFeedbackByBook(ctx context.Context, bookID int64, p model.Pageable) (model.Page[model.Feedback], error)

	SeedRoles(ctx context.Context, names []string) error
	ListRoles(ctx context.Context) ([]model.Role, error)

	RecordEvent(ctx context.Context, event kafka.EventLending) error
	GetStats(ctx context.Context) (model.StatsInfo, error)
}

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db pool")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName     = `books`
	historyTableName   = `book_transaction_history`
	feedbacksTableName = `feedbacks`
	rolesTableName     = `roles`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// collectPage runs the page query and the count query concurrently.
func collectPage[T any](ctx context.Context, r *repository, q, count sq.SelectBuilder, p model.Pageable) (model.Page[T], error) {
	query, args, err := q.Limit(uint64(p.Size)).Offset(p.Offset()).ToSql()
	if err != nil {
		return model.Page[T]{}, err
	}
	countQuery, countArgs, err := count.ToSql()
	if err != nil {
		return model.Page[T]{}, err
	}
	r.log.Debug("collectPage", zap.String("query", query), zap.Any("args", args))

	var (
		items []T
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.db.Query(gctx, query, args...)
		if err != nil {
			return err
		}
		items, err = pgx.CollectRows(rows, pgx.RowToStructByName[T])
		if err != nil {
			return errors.Wrap(err, "pgx.CollectRows")
		}
		return nil
	})
	g.Go(func() error {
		return r.db.QueryRow(gctx, countQuery, countArgs...).Scan(&total)
	})
	if err := g.Wait(); err != nil {
		return model.Page[T]{}, err
	}
	return model.NewPage(items, p, total), nil
}

func collectOne[T any](ctx context.Context, r *repository, q sq.SelectBuilder, what string) (T, error) {
	var zero T
	query, args, err := q.Limit(1).ToSql()
	if err != nil {
		return zero, err
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, errors.Wrap(errs.ErrNotFound, what)
		}
		r.log.Error("collectOne", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return zero, err
	}
	return item, nil
}
