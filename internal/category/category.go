package category

// Category groups menu products, ordered by Position on the storefront.
type Category struct {
	ID       int    `json:"categoryId"`
	StoreID  int    `json:"storeId"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}
