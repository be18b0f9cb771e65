package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/cases/internal/model"
	"github.com/umalmyha/cases/pkg/db/transactor"
)

const pgUniqueViolationCode = "23505"

const caseColumns = `id, case_number, subject, description, department, status,
	contact_name, business_name, coid, mid, custom_fields, created_at, updated_at`

type postgresCaseRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresCaseRepository builds CaseRepository backed by postgres
func NewPostgresCaseRepository(trx transactor.PgxWithinTransactionExecutor) CaseRepository {
	return &postgresCaseRepository{trx: trx}
}

func (r *postgresCaseRepository) FindByID(ctx context.Context, id string) (*model.Case, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	q := fmt.Sprintf("SELECT %s FROM cases WHERE id = $1", caseColumns)
	return r.scanRow(r.trx.Executor(ctx).QueryRow(ctx, q, id))
}

func (r *postgresCaseRepository) Find(ctx context.Context, f model.CaseFilter) ([]*model.Case, error) {
	where, args := pgCaseConditions(f)
	q := fmt.Sprintf("SELECT %s FROM cases%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d",
		caseColumns, where, len(args)+1, len(args)+2)
	args = append(args, f.Limit, f.Skip())

	rows, err := r.trx.Executor(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := make([]*model.Case, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return cases, nil
}

func (r *postgresCaseRepository) Count(ctx context.Context, f model.CaseFilter) (int64, error) {
	where, args := pgCaseConditions(f)

	var total int64
	if err := r.trx.Executor(ctx).QueryRow(ctx, "SELECT COUNT(*) FROM cases"+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *postgresCaseRepository) Create(ctx context.Context, c *model.Case) error {
	customFields, err := pgJSONB(c.CustomFields)
	if err != nil {
		return err
	}

	id := uuid.NewString()
	now := pgNow()

	q := `INSERT INTO cases(id, case_number, subject, description, department, status,
			contact_name, business_name, coid, mid, custom_fields, created_at, updated_at)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err = r.trx.Executor(ctx).Exec(ctx, q, id, c.CaseNumber, c.Subject, c.Description, c.Department, string(c.Status),
		c.ContactName, c.BusinessName, c.Coid, c.Mid, customFields, now, now)
	if err != nil {
		return pgErr(err)
	}

	c.ID = id
	c.CreatedAt = now
	c.UpdatedAt = now
	return nil
}

func (r *postgresCaseRepository) Update(ctx context.Context, c *model.Case) (*model.Case, error) {
	if _, err := uuid.Parse(c.ID); err != nil {
		return nil, nil
	}

	customFields, err := pgJSONB(c.CustomFields)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`UPDATE cases SET case_number = $1, subject = $2, description = $3, department = $4, status = $5,
			contact_name = $6, business_name = $7, coid = $8, mid = $9, custom_fields = $10, updated_at = $11
		  WHERE id = $12 RETURNING %s`, caseColumns)
	row := r.trx.Executor(ctx).QueryRow(ctx, q, c.CaseNumber, c.Subject, c.Description, c.Department, string(c.Status),
		c.ContactName, c.BusinessName, c.Coid, c.Mid, customFields, pgNow(), c.ID)

	updated, err := r.scanRow(row)
	if err != nil {
		return nil, pgErr(err)
	}
	return updated, nil
}

func (r *postgresCaseRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}

	comm, err := r.trx.Executor(ctx).Exec(ctx, "DELETE FROM cases WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCaseRepository) scanRow(row pgx.Row) (*model.Case, error) {
	var c model.Case
	var status string
	var customFields pgtype.JSONB

	err := row.Scan(&c.ID, &c.CaseNumber, &c.Subject, &c.Description, &c.Department, &status,
		&c.ContactName, &c.BusinessName, &c.Coid, &c.Mid, &customFields, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	c.Status = model.Status(status)
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()

	if customFields.Status == pgtype.Present {
		if err := customFields.AssignTo(&c.CustomFields); err != nil {
			return nil, err
		}
	}

	if c.CustomFields == nil {
		c.CustomFields = make(map[string]string)
	}
	return &c, nil
}

func pgCaseConditions(f model.CaseFilter) (string, []any) {
	conds := make([]string, 0)
	args := make([]any, 0)

	add := func(expr string, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf(expr, len(args)))
	}

	add("search @@ websearch_to_tsquery('simple', $%d)", f.Search)
	add("business_name = $%d", f.BusinessName)
	add("department = $%d", f.Department)
	add("coid = $%d", f.Coid)
	add("mid = $%d", f.Mid)

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func pgJSONB(v map[string]string) (*pgtype.JSONB, error) {
	if v == nil {
		v = make(map[string]string)
	}

	var j pgtype.JSONB
	if err := j.Set(v); err != nil {
		return nil, err
	}
	return &j, nil
}

func pgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
		return ErrDuplicateKey
	}
	return err
}

// postgres keeps microseconds only
func pgNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
