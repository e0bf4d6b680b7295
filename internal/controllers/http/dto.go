package http

type CreateOrderRequest struct {
	ProductID       string `json:"productId" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required,min=1"`
	DeliveryMode    string `json:"deliveryMode" binding:"required,oneof=PICKUP DELIVERY"`
	BranchID        string `json:"branchId"`
	DeliveryAddress string `json:"deliveryAddress"`
	Note            string `json:"note"`
}

type ConfirmPaymentRequest struct {
	Method string `json:"method" binding:"required"`
}

type ScanRequest struct {
	QRCode string `json:"qrCode" binding:"required"`
}

type ConfirmPickupRequest struct {
	PickupCode string `json:"pickupCode" binding:"required,len=6"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type SetStockRequest struct {
	Stock *int `json:"stock" binding:"required,min=0"`
}
