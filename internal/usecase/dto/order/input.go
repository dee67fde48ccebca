package orderdto

type CreateOrderInput struct {
	// BuyerID is taken from the actor for buyers; admin creates on a buyer's behalf.
	BuyerID         string
	Mode            string
	Quantity        int
	Fabric          string
	Color           string
	DesignURL       string
	SizeBreakdown   string
	ShippingAddress string
	TotalAmount     int64
	Currency        string
}

type ListOrdersInput struct {
	BuyerID        string
	ManufacturerID string
	States         []string
	PaymentStates  []string
	Page           int
	Limit          int
}
