package domain

// LineItem is one configured, quantified entry in a user's cart. Price and
// name fields are snapshots taken from the catalog at add or edit time; a
// later catalog change does not retroactively alter an existing item.
type LineItem struct {
	ID                string   `json:"id"`
	ProductID         string   `json:"productId"`
	ProductName       string   `json:"productName"`
	ProductImage      string   `json:"productImage,omitempty"`
	SizeID            *string  `json:"sizeId,omitempty"`
	SizeName          string   `json:"sizeName,omitempty"`
	SizePriceAdd      int64    `json:"sizePriceAdd"`
	ToppingIDs        []string `json:"toppingIds"`
	ToppingNames      []string `json:"toppingNames"`
	ToppingPriceTotal int64    `json:"toppingPriceTotal"`
	BasePrice         int64    `json:"basePrice"`
	UnitPrice         int64    `json:"unitPrice"`
	Quantity          int      `json:"quantity"`
	LineTotal         int64    `json:"lineTotal"`
}

// SameConfiguration reports whether two items represent the same purchasable
// configuration: same product, same size (both absent counts as same), and
// the same set of toppings regardless of insertion order.
func (li LineItem) SameConfiguration(other LineItem) bool {
	if li.ProductID != other.ProductID {
		return false
	}
	if !sameSize(li.SizeID, other.SizeID) {
		return false
	}
	return sameIDSet(li.ToppingIDs, other.ToppingIDs)
}

func sameSize(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameIDSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}

// Cart is the ordered list of line items belonging to one user. Order is
// meaningful only for display; mutations never reorder surviving items.
type Cart struct {
	UserID string     `json:"userId"`
	Items  []LineItem `json:"items"`
}

// Total is the sum of line totals across the cart.
func (c Cart) Total() int64 {
	var sum int64
	for _, item := range c.Items {
		sum += item.LineTotal
	}
	return sum
}

// ItemCount is the sum of quantities across the cart.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
