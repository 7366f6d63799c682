package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"leadassign/internal/model"
	"leadassign/pkg/db/transactor"
)

// AdminRepository keeps owner accounts in postgres. Besides auth it backs
// the uploader-identity resolution of the distribution reporter.
type AdminRepository interface {
	Create(ctx context.Context, a *model.Admin) error
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindByID(ctx context.Context, id string) (*model.Admin, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.Admin, error)
}

type postgresAdminRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

func NewPostgresAdminRepository(trx transactor.PgxWithinTransactionExecutor) AdminRepository {
	return &postgresAdminRepository{trx: trx}
}

func (r *postgresAdminRepository) Create(ctx context.Context, a *model.Admin) error {
	q := "INSERT INTO admins(id, email, password_hash) VALUES($1, $2, $3)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, a.ID, a.Email, a.PasswordHash); err != nil {
		return err
	}
	return nil
}

func (r *postgresAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	q := "SELECT id, email, password_hash FROM admins WHERE lower(email) = lower($1)"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, email)
	return r.scanRow(row)
}

func (r *postgresAdminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	q := "SELECT id, email, password_hash FROM admins WHERE id = $1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresAdminRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Admin, error) {
	admins := make([]*model.Admin, 0, len(ids))
	if len(ids) == 0 {
		return admins, nil
	}

	q := "SELECT id, email, password_hash FROM admins WHERE id = ANY($1)"
	rows, err := r.trx.Executor(ctx).Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Email, &a.PasswordHash); err != nil {
			return nil, err
		}
		admins = append(admins, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *postgresAdminRepository) scanRow(row pgx.Row) (*model.Admin, error) {
	var a model.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
