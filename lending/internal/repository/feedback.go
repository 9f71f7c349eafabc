package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/Astemirdum/book-network/lending/internal/model"
)

func (r *repository) CreateFeedback(ctx context.Context, f model.Feedback) (int64, error) {
	q, args, err := qb.Insert(feedbacksTableName).
		Columns("book_id", "note", "comment", "created_by").
		Values(f.BookID, f.Note, f.Comment, f.CreatedBy).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "CreateFeedback")
	}
	return id, nil
}

func (r *repository) ListFeedbackByBook(ctx context.Context, bookID int64, p model.Pageable) (model.Page[model.Feedback], error) {
	where := sq.Eq{"f.book_id": bookID}
	return collectPage[model.Feedback](ctx, r,
		qb.Select("f.id", "f.book_id", "f.note", "f.comment", "f.created_by", "f.created_at").
			From(feedbacksTableName+" f").Where(where).OrderBy("f.created_at desc", "f.id desc"),
		qb.Select("count(*)").From(feedbacksTableName+" f").Where(where),
		p)
}
