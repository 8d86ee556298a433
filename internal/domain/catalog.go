package domain

// Product is a catalog entry a line item references. BasePrice is in minor
// currency units.
type Product struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	BasePrice int64  `json:"basePrice"`
}

// Size is a product size variant; PriceAdd is charged on top of the base price.
type Size struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PriceAdd int64  `json:"priceAdd"`
}

// Topping is an add-on option priced per unit.
type Topping struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}
