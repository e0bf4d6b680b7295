package domain

// Notification event kinds consumed by the dispatcher. Routing keys on the
// topic exchange use the same literals.
const (
	EventOrderCreated       = "ORDER_CREATED"
	EventOrderStatusChanged = "ORDER_STATUS_CHANGED"
	EventProductReady       = "PRODUCT_READY"
	EventProductPickedUp    = "PRODUCT_PICKED_UP"
	EventContactSeller      = "CONTACT_SELLER"
	EventStockLow           = "STOCK_LOW"
	EventStockOut           = "STOCK_OUT"
)
