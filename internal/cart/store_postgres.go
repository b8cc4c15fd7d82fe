package cart

import (
	"database/sql"
	"encoding/json"
	"time"
)

// PostgresStore keeps one cart per storefront session in a jsonb column.
type PostgresStore struct {
	db        *sql.DB
	sessionID string
}

func NewPostgresStore(db *sql.DB, sessionID string) *PostgresStore {
	return &PostgresStore{db: db, sessionID: sessionID}
}

func (s *PostgresStore) Load() ([]Line, error) {
	var raw []byte
	err := s.db.QueryRow(`SELECT lines FROM carts WHERE "sessionID" = $1`, s.sessionID).Scan(&raw)
	if err == sql.ErrNoRows {
		return []Line{}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := make([]Line, 0)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &lines); err != nil {
			return nil, err
		}
	}
	return lines, nil
}

func (s *PostgresStore) Save(lines []Line) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`INSERT INTO carts ("sessionID", lines, "updatedAt")
        VALUES ($1, $2, $3)
        ON CONFLICT ("sessionID") DO UPDATE SET lines = $2, "updatedAt" = $3`,
		s.sessionID, raw, time.Now().UTC())
	return err
}
