package store

import "time"

// Store is the merchant-facing configuration for one shop: profile,
// payment options, delivery area and opening hours.
type Store struct {
	ID        int       `json:"storeId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Status    string    `json:"status"`
	WhatsApp  string    `json:"whatsapp"`
	PhotoURL  string    `json:"photoUrl,omitempty"`
	Instagram string    `json:"instagram,omitempty"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`

	PaymentMethods    PaymentMethods `json:"paymentMethods"`
	AcceptsDelivery   bool           `json:"acceptsDelivery"`
	DeliveryFeeCents  int64          `json:"deliveryFeeCents"`
	MinimumOrderCents int64          `json:"minimumOrderCents"`
	ServedPostalCodes []string       `json:"servedPostalCodes"`

	// WeeklySchedule is the current opening-hours format; IntervalSchedule
	// is the legacy daily-intervals format still found on older stores.
	WeeklySchedule   *WeeklySchedule  `json:"weeklySchedule,omitempty"`
	IntervalSchedule IntervalSchedule `json:"intervalSchedule,omitempty"`
}

const (
	StatusActive    = "active"
	StatusSuspended = "suspended"
	StatusDeleted   = "deleted"
)

type Address struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	CEP        string `json:"cep"`
	Complement string `json:"complement,omitempty"`
}

type PaymentMethods struct {
	Cash        bool `json:"cash"`
	Pix         bool `json:"pix"`
	CreditCard  bool `json:"creditCard"`
	DebitCard   bool `json:"debitCard"`
	MealVoucher bool `json:"mealVoucher"`
}

// DayHours is an opening window for a single weekday, "HH:MM" strings.
type DayHours struct {
	OpensAt  string `json:"opensAt"`
	ClosesAt string `json:"closesAt"`
}

// WeeklySchedule maps each weekday to its opening window. A nil day is
// closed all day.
type WeeklySchedule struct {
	Sunday    *DayHours `json:"sunday,omitempty"`
	Monday    *DayHours `json:"monday,omitempty"`
	Tuesday   *DayHours `json:"tuesday,omitempty"`
	Wednesday *DayHours `json:"wednesday,omitempty"`
	Thursday  *DayHours `json:"thursday,omitempty"`
	Friday    *DayHours `json:"friday,omitempty"`
	Saturday  *DayHours `json:"saturday,omitempty"`
}

func (ws *WeeklySchedule) day(d time.Weekday) *DayHours {
	switch d {
	case time.Sunday:
		return ws.Sunday
	case time.Monday:
		return ws.Monday
	case time.Tuesday:
		return ws.Tuesday
	case time.Wednesday:
		return ws.Wednesday
	case time.Thursday:
		return ws.Thursday
	case time.Friday:
		return ws.Friday
	case time.Saturday:
		return ws.Saturday
	}
	return nil
}

// Interval is a daily opening window. From > To means the window crosses
// midnight, e.g. 18:00 to 02:00.
type Interval struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type IntervalSchedule []Interval
