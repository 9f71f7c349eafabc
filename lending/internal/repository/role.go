package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/book-network/lending/internal/model"
)

// SeedRoles inserts the missing roles in one transaction; existing names are kept.
func (r *repository) SeedRoles(ctx context.Context, names []string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, name := range names {
			q, args, err := qb.Insert(rolesTableName).
				Columns("name").
				Values(name).
				Suffix("on conflict (name) do nothing").
				ToSql()
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, q, args...)
			if err != nil {
				return errors.Wrapf(err, "seed role %s", name)
			}
			if tag.RowsAffected() > 0 {
				r.log.Info("role created", zap.String("role", name))
			}
		}
		return nil
	})
}

func (r *repository) ListRoles(ctx context.Context) ([]model.Role, error) {
	q, args, err := qb.Select("id", "name").From(rolesTableName).OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[model.Role])
}
