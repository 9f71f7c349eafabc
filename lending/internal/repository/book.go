package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/book-network/lending/internal/errs"
	"github.com/Astemirdum/book-network/lending/internal/model"
)

var rateColumn = fmt.Sprintf(
	"coalesce((select round(avg(f.note)::numeric, 1) from %s f where f.book_id = b.id), 0)::float8 as rate",
	feedbacksTableName)

var bookColumns = []string{
	"b.id", "b.title", "b.author_name", "b.isbn", "b.synopsis", "b.book_cover",
	"b.archived", "b.shareable", "b.owner_id", "b.created_by", "b.created_at", rateColumn,
}

func selectBooks() sq.SelectBuilder {
	return qb.Select(bookColumns...).From(booksTableName + " b")
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (int64, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "author_name", "isbn", "synopsis", "book_cover", "archived", "shareable", "owner_id", "created_by").
		Values(book.Title, book.Author, book.ISBN, book.Synopsis, book.Cover, book.Archived, book.Shareable, book.OwnerID, book.CreatedBy).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "CreateBook")
	}
	return id, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return collectOne[model.Book](ctx, r,
		selectBooks().Where(sq.Eq{"b.id": id}),
		fmt.Sprintf("book %d", id))
}

func (r *repository) ListDisplayableBooks(ctx context.Context, userID int64, p model.Pageable) (model.Page[model.Book], error) {
	where := sq.And{
		sq.Eq{"b.archived": false},
		sq.Eq{"b.shareable": true},
		sq.NotEq{"b.owner_id": userID},
	}
	return collectPage[model.Book](ctx, r,
		selectBooks().Where(where).OrderBy("b.created_at desc", "b.id desc"),
		qb.Select("count(*)").From(booksTableName+" b").Where(where),
		p)
}

func (r *repository) ListBooksByOwner(ctx context.Context, ownerID int64, p model.Pageable) (model.Page[model.Book], error) {
	where := sq.Eq{"b.owner_id": ownerID}
	return collectPage[model.Book](ctx, r,
		selectBooks().Where(where).OrderBy("b.created_at desc", "b.id desc"),
		qb.Select("count(*)").From(booksTableName+" b").Where(where),
		p)
}

func (r *repository) ToggleShareable(ctx context.Context, id int64) error {
	return r.updateBook(ctx, `update books set shareable = not shareable where id = @id returning id`,
		pgx.NamedArgs{"id": id})
}

func (r *repository) ToggleArchived(ctx context.Context, id int64) error {
	return r.updateBook(ctx, `update books set archived = not archived where id = @id returning id`,
		pgx.NamedArgs{"id": id})
}

func (r *repository) UpdateCover(ctx context.Context, id int64, cover string) error {
	return r.updateBook(ctx, `update books set book_cover = @cover where id = @id returning id`,
		pgx.NamedArgs{"id": id, "cover": cover})
}

func (r *repository) updateBook(ctx context.Context, q string, args pgx.NamedArgs) error {
	var id int64
	if err := r.db.QueryRow(ctx, q, args).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errors.Wrapf(errs.ErrNotFound, "book %v", args["id"])
		}
		return err
	}
	return nil
}
