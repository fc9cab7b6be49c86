package http

// Error is the JSON body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	Items           []CreateOrderItem  `json:"items"`
	Address         CreateOrderAddress `json:"address"`
	PaymentMethod   string             `json:"paymentMethod"`
	DiscountPercent int                `json:"discountPercent"`
}

// CreateOrderItem is one cart line of the checkout payload.
type CreateOrderItem struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	Color          string `json:"color"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// CreateOrderAddress is the shipping address of the checkout payload.
type CreateOrderAddress struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// CreateOrderResponse returns the id of the freshly created order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// PayOrderRequest optionally overrides the payment method chosen at checkout.
type PayOrderRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// ShipOrderRequest names the rider the admin hands the order to.
type ShipOrderRequest struct {
	RiderID string `json:"riderId"`
}
