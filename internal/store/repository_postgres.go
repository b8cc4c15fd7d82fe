package store

import (
	"database/sql"
	"encoding/json"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const storeColumns = `"storeID", name, slug, status, whatsapp, "photoUrl", instagram,
        address, "paymentMethods", "acceptsDelivery", "deliveryFeeCents", "minimumOrderCents",
        "servedPostalCodes", "weeklySchedule", "intervalSchedule", "createdAt"`

func (r *PostgresRepository) GetByID(id int) (Store, error) {
	row := r.db.QueryRow(`SELECT `+storeColumns+` FROM stores WHERE "storeID" = $1`, id)
	return scanStore(row)
}

func (r *PostgresRepository) GetBySlug(slug string) (Store, error) {
	row := r.db.QueryRow(`SELECT `+storeColumns+` FROM stores WHERE slug = $1`, slug)
	return scanStore(row)
}

func (r *PostgresRepository) Create(s Store) (Store, error) {
	addressJSON, paymentJSON, weeklyJSON, intervalJSON, err := marshalStoreFields(s)
	if err != nil {
		return Store{}, err
	}

	err = r.db.QueryRow(`INSERT INTO stores (name, slug, status, whatsapp, "photoUrl", instagram,
        address, "paymentMethods", "acceptsDelivery", "deliveryFeeCents", "minimumOrderCents",
        "servedPostalCodes", "weeklySchedule", "intervalSchedule", "createdAt")
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING "storeID"`,
		s.Name, s.Slug, s.Status, s.WhatsApp, s.PhotoURL, s.Instagram,
		addressJSON, paymentJSON, s.AcceptsDelivery, s.DeliveryFeeCents, s.MinimumOrderCents,
		pq.Array(s.ServedPostalCodes), weeklyJSON, intervalJSON, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		return Store{}, err
	}

	return s, nil
}

func (r *PostgresRepository) Update(id int, s Store) (Store, error) {
	addressJSON, paymentJSON, weeklyJSON, intervalJSON, err := marshalStoreFields(s)
	if err != nil {
		return Store{}, err
	}

	res, err := r.db.Exec(`UPDATE stores SET name = $1, slug = $2, status = $3, whatsapp = $4,
        "photoUrl" = $5, instagram = $6, address = $7, "paymentMethods" = $8,
        "acceptsDelivery" = $9, "deliveryFeeCents" = $10, "minimumOrderCents" = $11,
        "servedPostalCodes" = $12, "weeklySchedule" = $13, "intervalSchedule" = $14
        WHERE "storeID" = $15`,
		s.Name, s.Slug, s.Status, s.WhatsApp, s.PhotoURL, s.Instagram,
		addressJSON, paymentJSON, s.AcceptsDelivery, s.DeliveryFeeCents, s.MinimumOrderCents,
		pq.Array(s.ServedPostalCodes), weeklyJSON, intervalJSON, id)
	if err != nil {
		return Store{}, err
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Store{}, ErrNotFound
	}

	s.ID = id
	return s, nil
}

func marshalStoreFields(s Store) (address, payment, weekly, interval []byte, err error) {
	if address, err = json.Marshal(s.Address); err != nil {
		return
	}
	if payment, err = json.Marshal(s.PaymentMethods); err != nil {
		return
	}
	if s.WeeklySchedule != nil {
		if weekly, err = json.Marshal(s.WeeklySchedule); err != nil {
			return
		}
	}
	if len(s.IntervalSchedule) > 0 {
		interval, err = json.Marshal(s.IntervalSchedule)
	}
	return
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStore(row rowScanner) (Store, error) {
	var s Store
	var addressJSON, paymentJSON []byte
	var weeklyJSON, intervalJSON sql.Null[[]byte]
	err := row.Scan(&s.ID, &s.Name, &s.Slug, &s.Status, &s.WhatsApp, &s.PhotoURL, &s.Instagram,
		&addressJSON, &paymentJSON, &s.AcceptsDelivery, &s.DeliveryFeeCents, &s.MinimumOrderCents,
		pq.Array(&s.ServedPostalCodes), &weeklyJSON, &intervalJSON, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return Store{}, ErrNotFound
	}
	if err != nil {
		return Store{}, err
	}

	if err := json.Unmarshal(addressJSON, &s.Address); err != nil {
		return Store{}, err
	}
	if err := json.Unmarshal(paymentJSON, &s.PaymentMethods); err != nil {
		return Store{}, err
	}
	if weeklyJSON.Valid && len(weeklyJSON.V) > 0 {
		if err := json.Unmarshal(weeklyJSON.V, &s.WeeklySchedule); err != nil {
			return Store{}, err
		}
	}
	if intervalJSON.Valid && len(intervalJSON.V) > 0 {
		if err := json.Unmarshal(intervalJSON.V, &s.IntervalSchedule); err != nil {
			return Store{}, err
		}
	}

	return s, nil
}
