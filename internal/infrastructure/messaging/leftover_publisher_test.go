package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookstock/internal/domain/ledger"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	return m.Called(ctx, routingKey, message).Error(0)
}

func TestLeftoverPublisher(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	event := &ledger.StockEvent{ID: 11, BookID: 3, Quantity: -2, Timestamp: ts}

	pub := new(mockPublisher)
	pub.On("Publish", ctx, RoutingKeyLeftoverRecorded, LeftoverRecorded{
		EventID:  11,
		BookID:   3,
		Quantity: -2,
		Date:     ts,
	}).Return(nil)

	require.NoError(t, NewLeftoverPublisher(pub).PublishRecorded(ctx, event))
	pub.AssertExpectations(t)
}

func TestLeftoverPublisher_Error(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	err := NewLeftoverPublisher(pub).PublishRecorded(context.Background(), &ledger.StockEvent{})
	assert.ErrorIs(t, err, assert.AnError)
}
