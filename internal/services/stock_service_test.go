package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"marketplace-service/internal/domain"
	"marketplace-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStockService_Reserve(t *testing.T) {
	tests := []struct {
		name          string
		qty           int
		setupMocks    func(*mocks.MockProductRepository, *mocks.MockNotifier)
		expectedError error
		expectedStock int
	}{
		{
			name: "successful reservation, no signal",
			qty:  2,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				repo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 10), nil)
				repo.On("DecrementStock", TestProductID, 2).Return(8, true, nil)
			},
			expectedStock: 8,
		},
		{
			name: "reservation crossing the low threshold",
			qty:  2,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				repo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 6), nil)
				repo.On("DecrementStock", TestProductID, 2).Return(4, true, nil)
				n.On("Notify", mock.Anything, TestSellerID, domain.EventStockLow, mock.Anything).Return(nil)
			},
			expectedStock: 4,
		},
		{
			name: "reservation emptying the stock",
			qty:  2,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				repo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 2), nil)
				repo.On("DecrementStock", TestProductID, 2).Return(0, true, nil)
				n.On("Notify", mock.Anything, TestSellerID, domain.EventStockOut, mock.Anything).Return(nil)
			},
			expectedStock: 0,
		},
		{
			name: "insufficient stock fails closed",
			qty:  5,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				repo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 3), nil)
				repo.On("DecrementStock", TestProductID, 5).Return(3, false, nil)
			},
			expectedError: domain.ErrInsufficientStock,
		},
		{
			name: "inactive product",
			qty:  1,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				p := CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 10)
				p.IsActive = false
				repo.On("FindByID", TestProductID).Return(p, nil)
			},
			expectedError: domain.ErrProductInactive,
		},
		{
			name: "missing product",
			qty:  1,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				repo.On("FindByID", TestProductID).Return(nil, nil)
			},
			expectedError: domain.ErrProductNotFound,
		},
		{
			name:          "zero quantity rejected",
			qty:           0,
			setupMocks:    func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {},
			expectedError: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockProductRepository)
			notifier := new(mocks.MockNotifier)
			tt.setupMocks(repo, notifier)

			svc := NewStockService(repo, notifier)
			p, err := svc.Reserve(context.Background(), TestProductID, tt.qty)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStock, p.Stock)
			}

			repo.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestStockService_CheckAvailable(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	notifier := new(mocks.MockNotifier)
	repo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 3), nil)

	svc := NewStockService(repo, notifier)

	assert.NoError(t, svc.CheckAvailable(context.Background(), TestProductID, 3))
	assert.ErrorIs(t, svc.CheckAvailable(context.Background(), TestProductID, 4), domain.ErrInsufficientStock)
	assert.ErrorIs(t, svc.CheckAvailable(context.Background(), TestProductID, 0), domain.ErrInvalidQuantity)

	// read-only: no decrement may have happened
	repo.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything)
}

func TestStockService_ManualSet(t *testing.T) {
	tests := []struct {
		name          string
		ownerID       string
		newStock      int
		setupMocks    func(*mocks.MockProductRepository, *mocks.MockNotifier)
		expectedError error
	}{
		{
			name:     "owner sets stock and signals re-evaluate",
			ownerID:  TestSellerID,
			newStock: 3,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				repo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 10), nil)
				repo.On("SetStock", TestProductID, 3).Return(nil)
				n.On("Notify", mock.Anything, TestSellerID, domain.EventStockLow, mock.Anything).Return(nil)
			},
		},
		{
			name:     "owner sets stock to zero",
			ownerID:  TestSellerID,
			newStock: 0,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				repo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 10), nil)
				repo.On("SetStock", TestProductID, 0).Return(nil)
				n.On("Notify", mock.Anything, TestSellerID, domain.EventStockOut, mock.Anything).Return(nil)
			},
		},
		{
			name:     "non-owner is rejected",
			ownerID:  "someone-else",
			newStock: 3,
			setupMocks: func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {
				repo.On("FindByID", TestProductID).Return(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 10), nil)
			},
			expectedError: domain.ErrForbidden,
		},
		{
			name:          "negative stock rejected",
			ownerID:       TestSellerID,
			newStock:      -1,
			setupMocks:    func(repo *mocks.MockProductRepository, n *mocks.MockNotifier) {},
			expectedError: domain.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockProductRepository)
			notifier := new(mocks.MockNotifier)
			tt.setupMocks(repo, notifier)

			svc := NewStockService(repo, notifier)
			err := svc.ManualSet(context.Background(), TestProductID, tt.newStock, tt.ownerID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				repo.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			repo.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestStockService_Restore(t *testing.T) {
	repo := new(mocks.MockProductRepository)
	notifier := new(mocks.MockNotifier)
	repo.On("IncrementStock", TestProductID, 2).Return(7, nil)

	svc := NewStockService(repo, notifier)
	assert.NoError(t, svc.Restore(context.Background(), TestProductID, 2))

	repo.AssertExpectations(t)
	// restoring stock never emits signals
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestStockService_ReserveConcurrent races N reservers over the last units:
// only as many succeed as stock allows, stock never goes negative, and the
// out-of-stock signal fires exactly once.
func TestStockService_ReserveConcurrent(t *testing.T) {
	repo := newFakeProductRepo(CreateTestProduct(TestProductID, TestSellerID, TestProductPrice, 5))
	notifier := &countingNotifier{}
	svc := NewStockService(repo, notifier)

	const workers = 20
	var wg sync.WaitGroup
	results := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(context.Background(), TestProductID, 1)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded, exhausted := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientStock):
			exhausted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, workers-5, exhausted)
	assert.Equal(t, 0, repo.stock(TestProductID))
	assert.Equal(t, 1, notifier.count(domain.EventStockOut))
	assert.Equal(t, 4, notifier.count(domain.EventStockLow)) // stock 4,3,2,1
}
