package merchant

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByID(id int) (Merchant, error) {
	var m Merchant
	err := r.db.QueryRow(`SELECT "merchantID", email, password, name, "storeID", "createdAt"
        FROM merchants WHERE "merchantID" = $1`, id).
		Scan(&m.ID, &m.Email, &m.Password, &m.Name, &m.StoreID, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return Merchant{}, ErrNotFound
	}
	if err != nil {
		return Merchant{}, err
	}
	return m, nil
}

func (r *PostgresRepository) GetByEmail(email string) (Merchant, error) {
	var m Merchant
	err := r.db.QueryRow(`SELECT "merchantID", email, password, name, "storeID", "createdAt"
        FROM merchants WHERE email = $1`, email).
		Scan(&m.ID, &m.Email, &m.Password, &m.Name, &m.StoreID, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return Merchant{}, ErrNotFound
	}
	if err != nil {
		return Merchant{}, err
	}
	return m, nil
}

func (r *PostgresRepository) Create(m Merchant) (Merchant, error) {
	err := r.db.QueryRow(`INSERT INTO merchants (email, password, name, "storeID", "createdAt")
        VALUES ($1,$2,$3,$4,$5) RETURNING "merchantID"`,
		m.Email, m.Password, m.Name, m.StoreID, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		return Merchant{}, err
	}
	return m, nil
}
