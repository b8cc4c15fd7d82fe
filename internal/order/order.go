package order

import "time"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending        Status = "pending"
	StatusInPreparation  Status = "in-preparation"
	StatusDispatched     Status = "dispatched"
	StatusPaymentPending Status = "payment-pending"
	StatusCompleted      Status = "completed"
)

// PaymentType matches the payment options a store can accept.
type PaymentType string

const (
	PaymentCash       PaymentType = "cash"
	PaymentPix        PaymentType = "pix"
	PaymentCreditCard PaymentType = "credit-card"
	PaymentDebitCard  PaymentType = "debit-card"
)

// Item is a single order line. Prices are integer centavos.
type Item struct {
	ProductID      int    `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	Note           string `json:"note,omitempty"`
}

// Customer holds the contact info taken at checkout. Phone is the
// WhatsApp number the store replies to.
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Order represents a customer purchase against a single store.
// The timestamp fields are written exactly once by the matching
// transition; the elapsed-seconds fields are derived when the next
// transition runs.
type Order struct {
	ID          int         `json:"orderId"`
	StoreID     int         `json:"storeId"`
	Number      int64       `json:"number"`
	Status      Status      `json:"status"`
	Items       []Item      `json:"items"`
	TotalCents  int64       `json:"totalCents"`
	Customer    Customer    `json:"customer"`
	PaymentType PaymentType `json:"paymentType"`
	CreatedAt   time.Time   `json:"createdAt"`

	PreparationStartedAt *time.Time `json:"preparationStartedAt,omitempty"`
	DispatchStartedAt    *time.Time `json:"dispatchStartedAt,omitempty"`
	CompletedAt          *time.Time `json:"completedAt,omitempty"`
	PreparationSeconds   *int64     `json:"preparationSeconds,omitempty"`
	DispatchSeconds      *int64     `json:"dispatchSeconds,omitempty"`
}
