package services

import (
	"context"
	"log"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/infra"
	"marketplace-service/internal/qr"
	"marketplace-service/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// OrderService owns the order status state machine. Every transition checks
// the legality table, then applies a compare-and-set on the stored status so
// concurrent writers cannot regress an order.
type OrderService struct {
	orders   repository.OrderRepository
	branches repository.BranchRepository
	stats    repository.SellerStatsRepository
	admins   repository.AdminRepository
	stock    *StockService
	codec    *qr.Codec
	notifier infra.Notifier
}

func NewOrderService(
	orders repository.OrderRepository,
	branches repository.BranchRepository,
	stats repository.SellerStatsRepository,
	admins repository.AdminRepository,
	stock *StockService,
	codec *qr.Codec,
	notifier infra.Notifier,
) *OrderService {
	return &OrderService{
		orders:   orders,
		branches: branches,
		stats:    stats,
		admins:   admins,
		stock:    stock,
		codec:    codec,
		notifier: notifier,
	}
}

type CreateOrderInput struct {
	BuyerID         string
	ProductID       string
	Quantity        int
	DeliveryMode    domain.DeliveryMode
	BranchID        string
	DeliveryAddress string
	Note            string
}

// CreateOrder reserves stock, mints the pickup token and persists the order
// in PENDING. The total is frozen at creation and never recomputed.
func (s *OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	var branchID *string
	if in.DeliveryMode == domain.DeliveryModePickup {
		branch, err := s.resolveBranch(in.BranchID)
		if err != nil {
			return nil, err
		}
		branchID = &branch.ID
	}

	product, err := s.stock.Reserve(ctx, in.ProductID, in.Quantity)
	if err != nil {
		return nil, err
	}

	orderID := uuid.NewString()
	payload, secret, err := s.codec.Mint(orderID)
	if err != nil {
		s.compensateStock(ctx, in.ProductID, in.Quantity)
		return nil, err
	}

	order := &domain.Order{
		ID:              orderID,
		BuyerID:         in.BuyerID,
		SellerID:        product.SellerID,
		ProductID:       product.ID,
		Quantity:        in.Quantity,
		Total:           product.Price.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Status:          domain.StatusPending,
		DeliveryMode:    in.DeliveryMode,
		DeliveryAddress: in.DeliveryAddress,
		BranchID:        branchID,
		QRCode:          payload,
		QRSecretToken:   secret,
		Note:            in.Note,
	}

	if err := s.orders.Save(order); err != nil {
		s.compensateStock(ctx, in.ProductID, in.Quantity)
		return nil, err
	}

	go s.notifyOrderCreated(order)

	return order, nil
}

// ConfirmPayment moves an order to PAYMENT_CONFIRMED after the seller saw the
// money. Payment itself happens out of band.
func (s *OrderService) ConfirmPayment(ctx context.Context, orderID, sellerID, method string) (*domain.Order, error) {
	o, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if o.Status != domain.StatusPending && o.Status != domain.StatusPaymentPending {
		return nil, domain.ErrInvalidTransition
	}

	ok, err := s.orders.UpdateStatus(o.ID, o.Status, domain.StatusPaymentConfirmed, map[string]any{
		"payment_method": method,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	o.Status = domain.StatusPaymentConfirmed
	o.PaymentMethod = method
	go s.notifyStatusChanged(o)
	return o, nil
}

// DeliverToBranch re-mints the pickup token bound to the real order id and
// moves the order to PREPARING. The previous secret stops validating because
// only the latest one is stored.
func (s *OrderService) DeliverToBranch(ctx context.Context, orderID, sellerID string) (*domain.Order, error) {
	o, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	if o.Status != domain.StatusPending && o.Status != domain.StatusPaymentConfirmed {
		return nil, domain.ErrInvalidTransition
	}

	payload, secret, err := s.codec.Mint(o.ID)
	if err != nil {
		return nil, err
	}

	ok, err := s.orders.UpdateStatus(o.ID, o.Status, domain.StatusPreparing, map[string]any{
		"qr_code":         payload,
		"qr_secret_token": secret,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	o.Status = domain.StatusPreparing
	o.QRCode = payload
	o.QRSecretToken = secret
	go s.notifyStatusChanged(o)
	return o, nil
}

// ScanForPickupReady validates a scanned token and moves the order to
// READY_FOR_PICKUP, generating the pickup code the buyer will present. Only
// desk admins may scan. A second scan of the same token fails with
// ErrInvalidTransition, not a duplicate success.
func (s *OrderService) ScanForPickupReady(ctx context.Context, scannedToken, adminID string) (*domain.Order, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}
	t, err := s.codec.Decode(scannedToken)
	if err != nil {
		return nil, err
	}
	o, err := s.loadOrder(t.OrderID)
	if err != nil {
		return nil, err
	}
	if _, err := s.codec.Validate(scannedToken, o.QRSecretToken); err != nil {
		return nil, err
	}
	if o.Status != domain.StatusPreparing {
		return nil, domain.ErrInvalidTransition
	}

	code, err := qr.GeneratePickupCode()
	if err != nil {
		return nil, err
	}

	ok, err := s.orders.UpdateStatus(o.ID, domain.StatusPreparing, domain.StatusReadyForPickup, map[string]any{
		"pickup_code": code,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	o.Status = domain.StatusReadyForPickup
	o.PickupCode = code
	go s.notify(o.BuyerID, domain.EventProductReady, map[string]any{
		"orderId":    o.ID,
		"pickupCode": code,
	})
	return o, nil
}

// ConfirmPickup checks the presented 6-digit code and finishes the handoff.
// Only desk admins may confirm; a wrong code leaves the order at
// READY_FOR_PICKUP.
func (s *OrderService) ConfirmPickup(ctx context.Context, orderID, presentedCode, adminID string) (*domain.Order, error) {
	if err := s.requireAdmin(adminID); err != nil {
		return nil, err
	}
	o, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if o.Status != domain.StatusReadyForPickup {
		return nil, domain.ErrInvalidTransition
	}
	if presentedCode != o.PickupCode {
		return nil, domain.ErrInvalidCode
	}

	ok, err := s.orders.UpdateStatus(o.ID, domain.StatusReadyForPickup, domain.StatusPickedUp, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	o.Status = domain.StatusPickedUp
	go s.notify(o.SellerID, domain.EventProductPickedUp, map[string]any{
		"orderId": o.ID,
	})
	return o, nil
}

// SetStatus is the generic guarded transition, used for DELIVERED, CANCELLED
// and the payment-pending step. Entering DELIVERED bumps the seller
// aggregates; entering CANCELLED restores the reserved stock.
func (s *OrderService) SetStatus(ctx context.Context, orderID string, target domain.OrderStatus, actorID string) (*domain.Order, error) {
	o, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	if actorID != o.BuyerID && actorID != o.SellerID {
		return nil, domain.ErrForbidden
	}
	if !domain.CanTransition(o.Status, target) {
		return nil, domain.ErrInvalidTransition
	}

	ok, err := s.orders.UpdateStatus(o.ID, o.Status, target, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	o.Status = target
	switch target {
	case domain.StatusDelivered:
		if err := s.stats.RecordSale(o.SellerID, o.Total, o.Quantity); err != nil {
			log.Printf("record sale for order %s: %v", o.ID, err)
		}
	case domain.StatusCancelled:
		if err := s.stock.Restore(ctx, o.ProductID, o.Quantity); err != nil {
			log.Printf("restore stock for order %s: %v", o.ID, err)
		}
	}

	go s.notifyStatusChanged(o)
	return o, nil
}

func (s *OrderService) GetOrderByID(id string) (*domain.Order, error) {
	return s.loadOrder(id)
}

func (s *OrderService) GetOrdersByBuyer(buyerID string) ([]domain.Order, error) {
	return s.orders.FindByBuyerID(buyerID)
}

func (s *OrderService) requireAdmin(actorID string) error {
	ok, err := s.admins.IsAdmin(actorID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}

func (s *OrderService) loadOrder(id string) (*domain.Order, error) {
	o, err := s.orders.FindByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) resolveBranch(branchID string) (*domain.Branch, error) {
	if branchID != "" {
		b, err := s.branches.FindByID(branchID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			return nil, domain.ErrBranchNotFound
		}
		if !b.IsActive {
			return nil, domain.ErrBranchInactive
		}
		return b, nil
	}
	b, err := s.branches.FirstActive()
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrBranchNotFound
	}
	return b, nil
}

func (s *OrderService) compensateStock(ctx context.Context, productID string, qty int) {
	if err := s.stock.Restore(ctx, productID, qty); err != nil {
		log.Printf("compensate stock for product %s: %v", productID, err)
	}
}

// notifyOrderCreated fans out to both parties: the seller learns about the
// order, the buyer is told to contact the seller for payment.
func (s *OrderService) notifyOrderCreated(o *domain.Order) {
	ctx := context.Background()
	var g errgroup.Group
	g.Go(func() error {
		return s.notifier.Notify(ctx, o.SellerID, domain.EventOrderCreated, map[string]any{
			"orderId":   o.ID,
			"productId": o.ProductID,
			"quantity":  o.Quantity,
			"total":     o.Total,
		})
	})
	g.Go(func() error {
		return s.notifier.Notify(ctx, o.BuyerID, domain.EventContactSeller, map[string]any{
			"orderId":  o.ID,
			"sellerId": o.SellerID,
		})
	})
	if err := g.Wait(); err != nil {
		log.Printf("notify order created %s: %v", o.ID, err)
	}
}

func (s *OrderService) notifyStatusChanged(o *domain.Order) {
	s.notify(o.BuyerID, domain.EventOrderStatusChanged, map[string]any{
		"orderId": o.ID,
		"status":  o.Status,
	})
}

func (s *OrderService) notify(userID, kind string, payload map[string]any) {
	if err := s.notifier.Notify(context.Background(), userID, kind, payload); err != nil {
		log.Printf("notify %s %s: %v", kind, userID, err)
	}
}
