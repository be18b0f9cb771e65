package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/umalmyha/cases/internal/model"
	"github.com/umalmyha/cases/pkg/db/transactor"
)

type postgresCustomFieldRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresCustomFieldRepository builds CustomFieldRepository backed by postgres
func NewPostgresCustomFieldRepository(trx transactor.PgxWithinTransactionExecutor) CustomFieldRepository {
	return &postgresCustomFieldRepository{trx: trx}
}

func (r *postgresCustomFieldRepository) FindAll(ctx context.Context) ([]*model.CustomField, error) {
	q := "SELECT id, key, label, type, required FROM custom_fields ORDER BY created_at, id"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := make([]*model.CustomField, 0)
	for rows.Next() {
		var f model.CustomField
		var fieldType string
		if err := rows.Scan(&f.ID, &f.Key, &f.Label, &fieldType, &f.Required); err != nil {
			return nil, err
		}
		f.Type = model.FieldType(fieldType)
		fields = append(fields, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *postgresCustomFieldRepository) ExistsByKey(ctx context.Context, key string) (bool, error) {
	var exists bool
	q := "SELECT EXISTS(SELECT 1 FROM custom_fields WHERE key = $1)"
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, key).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresCustomFieldRepository) Create(ctx context.Context, f *model.CustomField) error {
	id := uuid.NewString()
	q := "INSERT INTO custom_fields(id, key, label, type, required, created_at) VALUES($1, $2, $3, $4, $5, $6)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, id, f.Key, f.Label, string(f.Type), f.Required, pgNow()); err != nil {
		return pgErr(err)
	}

	f.ID = id
	return nil
}

func (r *postgresCustomFieldRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	comm, err := r.trx.Executor(ctx).Exec(ctx, "DELETE FROM custom_fields WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}
