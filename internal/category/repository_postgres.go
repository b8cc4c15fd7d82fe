package category

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByStore(storeID int) ([]Category, error) {
	rows, err := r.db.Query(`SELECT "categoryID", "storeID", name, position
        FROM categories WHERE "storeID" = $1 ORDER BY position, "categoryID"`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]Category, 0)
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.StoreID, &cat.Name, &cat.Position); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Category, error) {
	var cat Category
	err := r.db.QueryRow(`SELECT "categoryID", "storeID", name, position
        FROM categories WHERE "categoryID" = $1`, id).
		Scan(&cat.ID, &cat.StoreID, &cat.Name, &cat.Position)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, err
	}
	return cat, nil
}

func (r *PostgresRepository) Create(cat Category) (Category, error) {
	err := r.db.QueryRow(`INSERT INTO categories ("storeID", name, position)
        VALUES ($1,$2,$3) RETURNING "categoryID"`,
		cat.StoreID, cat.Name, cat.Position).Scan(&cat.ID)
	if err != nil {
		return Category{}, err
	}
	return cat, nil
}

func (r *PostgresRepository) Update(id int, cat Category) (Category, error) {
	res, err := r.db.Exec(`UPDATE categories SET name = $1, position = $2 WHERE "categoryID" = $3`,
		cat.Name, cat.Position, id)
	if err != nil {
		return Category{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Category{}, ErrNotFound
	}

	cat.ID = id
	return cat, nil
}

func (r *PostgresRepository) Delete(id int) error {
	res, err := r.db.Exec(`DELETE FROM categories WHERE "categoryID" = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
