package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/HoursLedger/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const clientColumns = `id, name, email, telegram_chat_id, packages, created_at, updated_at`

// ClientRepository stores one row per client with the whole package tree
// in a JSONB column. Writes replace the column; the last writer wins.
type ClientRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewClientRepo(db *dbpg.DB) *ClientRepository {
	return &ClientRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) error {
	packages, err := encodePackages(c.Packages)
	if err != nil {
		return err
	}

	query := `INSERT INTO clients (id, name, email, telegram_chat_id, packages, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, nullString(c.Email), c.TelegramChatID, packages, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		// Email уже занят другим клиентом
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert client: %w", err)
	}

	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + `
			  FROM clients
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get client: %w", err)
	}

	return scanClient(row)
}

func (r *ClientRepository) GetByEmail(ctx context.Context, email string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + `
			  FROM clients
			  WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get client by email: %w", err)
	}

	return scanClient(row)
}

func (r *ClientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + `
			  FROM clients
			  ORDER BY name, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *ClientRepository) UpdateProfile(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients
			  SET name = $2, email = $3, telegram_chat_id = $4, updated_at = $5
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, nullString(c.Email), c.TelegramChatID, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update client: %w", err)
	}

	return expectOneRow(res)
}

func (r *ClientRepository) UpdatePackages(ctx context.Context, clientID string, packages []domain.Package) error {
	data, err := encodePackages(packages)
	if err != nil {
		return err
	}

	// Перезаписываем весь массив пакетов целиком
	query := `UPDATE clients
			  SET packages = $2, updated_at = NOW()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, clientID, data)
	if err != nil {
		return fmt.Errorf("update packages: %w", err)
	}

	return expectOneRow(res)
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	return expectOneRow(res)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner) (*domain.Client, error) {
	var (
		c        domain.Client
		email    sql.NullString
		packages []byte
	)
	if err := s.Scan(&c.ID, &c.Name, &email, &c.TelegramChatID, &packages, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("scan client: %w", err)
	}

	c.Email = email.String
	// Пустой JSONB отдаём как пустой список, а не nil
	c.Packages = []domain.Package{}
	if len(packages) > 0 {
		if err := json.Unmarshal(packages, &c.Packages); err != nil {
			return nil, fmt.Errorf("decode packages of client %s: %w", c.ID, err)
		}
	}

	return &c, nil
}

func encodePackages(packages []domain.Package) ([]byte, error) {
	if packages == nil {
		packages = []domain.Package{}
	}
	data, err := json.Marshal(packages)
	if err != nil {
		return nil, fmt.Errorf("encode packages: %w", err)
	}
	return data, nil
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	// Ни одной строки: клиент удалён или не существовал
	if n == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
