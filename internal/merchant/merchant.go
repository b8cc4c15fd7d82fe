package merchant

// Merchant is a store owner account. One account owns exactly one store.
type Merchant struct {
	ID        int    `json:"merchantId"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	StoreID   int    `json:"storeId"`
	CreatedAt string `json:"createdAt,omitempty"`
}
