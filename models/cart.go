package models

type CartLine struct {
	Book     Book `json:"book"`
	Quantity int  `json:"quantity"`
}

// CartSnapshot is the persisted form of a cart.
type CartSnapshot struct {
	Items []CartLine `json:"items"`
}

type CartSummary struct {
	Items             []CartLine `json:"items"`
	TotalItems        int        `json:"totalItems"`
	TotalPrice        float64    `json:"totalPrice"`
	TotalPriceDisplay string     `json:"totalPriceDisplay"`
}
