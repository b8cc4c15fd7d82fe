package product

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const productColumns = `"productID", "storeID", "categoryID", name, description,
        "priceCents", "imageUrl", sales, status, type, "createdAt"`

func (r *PostgresRepository) ListByStore(storeID int) ([]Product, error) {
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products
        WHERE "storeID" = $1 AND status <> $2 ORDER BY "productID"`, storeID, StatusDeleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *PostgresRepository) ListByCategory(storeID, categoryID int) ([]Product, error) {
	rows, err := r.db.Query(`SELECT `+productColumns+` FROM products
        WHERE "storeID" = $1 AND "categoryID" = $2 AND status <> $3 ORDER BY "productID"`,
		storeID, categoryID, StatusDeleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	var p Product
	err := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE "productID" = $1`, id).
		Scan(&p.ID, &p.StoreID, &p.CategoryID, &p.Name, &p.Description,
			&p.PriceCents, &p.ImageURL, &p.Sales, &p.Status, &p.Type, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	err := r.db.QueryRow(`INSERT INTO products ("storeID", "categoryID", name, description,
        "priceCents", "imageUrl", sales, status, type, "createdAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING "productID"`,
		p.StoreID, p.CategoryID, p.Name, p.Description,
		p.PriceCents, p.ImageURL, p.Sales, p.Status, p.Type, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (r *PostgresRepository) Update(id int, p Product) (Product, error) {
	res, err := r.db.Exec(`UPDATE products SET "categoryID" = $1, name = $2, description = $3,
        "priceCents" = $4, "imageUrl" = $5, status = $6, type = $7
        WHERE "productID" = $8`,
		p.CategoryID, p.Name, p.Description, p.PriceCents, p.ImageURL, p.Status, p.Type, id)
	if err != nil {
		return Product{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Product{}, ErrNotFound
	}

	p.ID = id
	return p, nil
}

func (r *PostgresRepository) SetStatus(id int, status string) error {
	res, err := r.db.Exec(`UPDATE products SET status = $1 WHERE "productID" = $2`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) IncrementSales(id int, n int) error {
	res, err := r.db.Exec(`UPDATE products SET sales = sales + $1 WHERE "productID" = $2`, n, id)
	if err != nil {
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	products := make([]Product, 0)
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.StoreID, &p.CategoryID, &p.Name, &p.Description,
			&p.PriceCents, &p.ImageURL, &p.Sales, &p.Status, &p.Type, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
