package httpserver

import (
	"strconv"

	"cafecart/internal/domain"
)

// badgeCap is the display limit for the cart badge; larger counts render as
// "99+". This is a presentation concern, the engine keeps the exact count.
const badgeCap = 99

type cartView struct {
	Items     []itemView `json:"items"`
	Total     int64      `json:"total"`
	ItemCount int        `json:"itemCount"`
}

type itemView struct {
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

type summaryView struct {
	Total     int64  `json:"total"`
	ItemCount int    `json:"itemCount"`
	Badge     string `json:"badge"`
}

func toCartView(cart domain.Cart) cartView {
	items := make([]itemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, toItemView(item))
	}
	return cartView{
		Items:     items,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}

func toItemView(item domain.LineItem) itemView {
	toppingIDs := item.ToppingIDs
	if toppingIDs == nil {
		toppingIDs = []string{}
	}
	toppingNames := item.ToppingNames
	if toppingNames == nil {
		toppingNames = []string{}
	}
	return itemView{
		ID:                item.ID,
		ProductID:         item.ProductID,
		ProductName:       item.ProductName,
		ProductImage:      item.ProductImage,
		SizeID:            item.SizeID,
		SizeName:          item.SizeName,
		SizePriceAdd:      item.SizePriceAdd,
		ToppingIDs:        toppingIDs,
		ToppingNames:      toppingNames,
		ToppingPriceTotal: item.ToppingPriceTotal,
		BasePrice:         item.BasePrice,
		UnitPrice:         item.UnitPrice,
		Quantity:          item.Quantity,
		LineTotal:         item.LineTotal,
	}
}

func toSummaryView(cart domain.Cart) summaryView {
	count := cart.ItemCount()
	badge := strconv.Itoa(count)
	if count > badgeCap {
		badge = strconv.Itoa(badgeCap) + "+"
	}
	return summaryView{
		Total:     cart.Total(),
		ItemCount: count,
		Badge:     badge,
	}
}
