package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const orderColumns = `"orderID", "storeID", number, status, items, "totalCents",
        "customerName", "customerPhone", "paymentType", "createdAt",
        "preparationStartedAt", "dispatchStartedAt", "completedAt",
        "preparationSeconds", "dispatchSeconds"`

func (r *PostgresRepository) Create(ord Order) (Order, error) {
	itemsJSON, err := json.Marshal(ord.Items)
	if err != nil {
		return Order{}, err
	}

	err = r.db.QueryRow(`INSERT INTO orders ("storeID", number, status, items, "totalCents",
        "customerName", "customerPhone", "paymentType", "createdAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING "orderID"`,
		ord.StoreID, ord.Number, string(ord.Status), itemsJSON, ord.TotalCents,
		ord.Customer.Name, ord.Customer.Phone, string(ord.PaymentType), ord.CreatedAt).Scan(&ord.ID)
	if err != nil {
		return Order{}, err
	}

	return ord, nil
}

func (r *PostgresRepository) GetByID(id int) (Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE "orderID" = $1`, id)

	ord, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return ord, err
}

func (r *PostgresRepository) ListByStore(storeID int) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE "storeID" = $1 ORDER BY "createdAt" DESC`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *PostgresRepository) ListByStoreAndStatus(storeID int, status Status) ([]Order, error) {
	rows, err := r.db.Query(`SELECT `+orderColumns+` FROM orders WHERE "storeID" = $1 AND status = $2 ORDER BY "createdAt" DESC`,
		storeID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

// UpdateStatus persists a transition patch in one statement so concurrent
// transitions against the same order resolve at the database.
func (r *PostgresRepository) UpdateStatus(ord Order) (Order, error) {
	res, err := r.db.Exec(`UPDATE orders SET status = $1,
        "preparationStartedAt" = $2, "dispatchStartedAt" = $3, "completedAt" = $4,
        "preparationSeconds" = $5, "dispatchSeconds" = $6
        WHERE "orderID" = $7`,
		string(ord.Status), ord.PreparationStartedAt, ord.DispatchStartedAt, ord.CompletedAt,
		ord.PreparationSeconds, ord.DispatchSeconds, ord.ID)
	if err != nil {
		return Order{}, err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Order{}, ErrNotFound
	}
	return ord, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var ord Order
	var status, payment string
	var itemsJSON []byte
	err := row.Scan(&ord.ID, &ord.StoreID, &ord.Number, &status, &itemsJSON, &ord.TotalCents,
		&ord.Customer.Name, &ord.Customer.Phone, &payment, &ord.CreatedAt,
		&ord.PreparationStartedAt, &ord.DispatchStartedAt, &ord.CompletedAt,
		&ord.PreparationSeconds, &ord.DispatchSeconds)
	if err != nil {
		return Order{}, err
	}

	ord.Status = Status(status)
	ord.PaymentType = PaymentType(payment)
	if err := json.Unmarshal(itemsJSON, &ord.Items); err != nil {
		return Order{}, err
	}
	return ord, nil
}

func collectOrders(rows *sql.Rows) ([]Order, error) {
	orders := make([]Order, 0)
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	return orders, rows.Err()
}
