package report

import (
	"database/sql"
	"time"

	"github.com/comandareal/comanda-backend/internal/order"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountByStatus(storeID int, status order.Status) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM orders WHERE "storeID" = $1 AND status = $2`,
		storeID, string(status)).Scan(&count)
	return count, err
}

func (r *PostgresRepository) CountSince(storeID int, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM orders WHERE "storeID" = $1 AND "createdAt" >= $2`,
		storeID, since).Scan(&count)
	return count, err
}
