package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"github.com/Astemirdum/book-network/lending/internal/model"
	"github.com/Astemirdum/book-network/pkg/kafka"
)

// RecordEvent stores a consumed event once; redelivered events are ignored.
func (r *repository) RecordEvent(ctx context.Context, event kafka.EventLending) error {
	const q = `
	insert into lending_events (event_id, event_type, book_id, record_id, user_id, owner_id, occurred_at)
	values (@event_id, @event_type, @book_id, @record_id, @user_id, @owner_id, @occurred_at)
	on conflict (event_id) do nothing`
	args := pgx.NamedArgs{
		"event_id":    event.EventID,
		"event_type":  string(event.EventType),
		"book_id":     event.BookID,
		"record_id":   event.RecordID,
		"user_id":     event.UserID,
		"owner_id":    event.OwnerID,
		"occurred_at": event.Timestamp,
	}
	_, err := r.db.Exec(ctx, q, args)
	return err
}

func (r *repository) GetStats(ctx context.Context) (model.StatsInfo, error) {
	const q = `
	select event_type,
	       count(*)                as total,
	       count(distinct book_id) as books,
	       count(distinct user_id) as users,
	       max(occurred_at)        as last_event
	from lending_events
	group by event_type
	order by event_type`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return model.StatsInfo{}, err
	}
	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.EventStat])
	if err != nil {
		return model.StatsInfo{}, errors.Wrap(err, "pgx.CollectRows")
	}
	if stats == nil {
		stats = []model.EventStat{}
	}
	return model.StatsInfo{Data: stats}, nil
}
