package repo

import (
	"context"
	"database/sql"
	"time"
)

// SavedAnalysis is one stored joint evaluation: the spec and the derived
// state as the JSON blobs the calc handlers already speak.
type SavedAnalysis struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Spec      []byte    `json:"spec"`
	Result    []byte    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveAnalysis(ctx context.Context, userID int, name string, spec, result []byte) (int, error)
	ListAnalyses(ctx context.Context, userID int) ([]SavedAnalysis, error)
	GetAnalysis(ctx context.Context, userID, id int) (SavedAnalysis, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveAnalysis(ctx context.Context, userID int, name string, spec, result []byte) (int, error) {
	var id int
	query := "INSERT INTO analyses (user_id, name, spec, result, created_at) VALUES ($1, $2, $3, $4, NOW()) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, spec, result).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListAnalyses(ctx context.Context, userID int) ([]SavedAnalysis, error) {
	query := "SELECT id, name, spec, result, created_at FROM analyses WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SavedAnalysis
	for rows.Next() {
		var a SavedAnalysis
		if err := rows.Scan(&a.ID, &a.Name, &a.Spec, &a.Result, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetAnalysis(ctx context.Context, userID, id int) (SavedAnalysis, error) {
	var a SavedAnalysis
	query := "SELECT id, name, spec, result, created_at FROM analyses WHERE user_id=$1 AND id=$2"
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(&a.ID, &a.Name, &a.Spec, &a.Result, &a.CreatedAt)
	return a, err
}
