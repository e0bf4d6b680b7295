package domain

type OrderStatus string

const (
	StatusPending          OrderStatus = "PENDING"
	StatusPaymentPending   OrderStatus = "PAYMENT_PENDING"
	StatusPaymentConfirmed OrderStatus = "PAYMENT_CONFIRMED"
	StatusPreparing        OrderStatus = "PREPARING"
	StatusReadyForPickup   OrderStatus = "READY_FOR_PICKUP"
	StatusPickedUp         OrderStatus = "PICKED_UP"
	StatusDelivered        OrderStatus = "DELIVERED"
	StatusCancelled        OrderStatus = "CANCELLED"
)

// validNext is the single legality table every transition consults.
// CANCELLED is reachable from every state that still allows cancellation;
// once an order is picked up it can only move to DELIVERED.
var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusPending: {
		StatusPaymentPending:   true,
		StatusPaymentConfirmed: true,
		StatusPreparing:        true,
		StatusCancelled:        true,
	},
	StatusPaymentPending: {
		StatusPaymentConfirmed: true,
		StatusCancelled:        true,
	},
	StatusPaymentConfirmed: {
		StatusPreparing: true,
		StatusCancelled: true,
	},
	StatusPreparing: {
		StatusReadyForPickup: true,
		StatusCancelled:      true,
	},
	StatusReadyForPickup: {
		StatusPickedUp:  true,
		StatusCancelled: true,
	},
	StatusPickedUp: {
		StatusDelivered: true,
	},
	StatusDelivered: {},
	StatusCancelled: {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

func IsTerminal(s OrderStatus) bool {
	return len(validNext[s]) == 0
}
