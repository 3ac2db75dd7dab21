package commands_test

import (
	"context"
	"testing"
	"time"

	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/core/domain/model/kernel"
	"orderlifecycle/internal/core/domain/model/lifecycle"
	"orderlifecycle/internal/core/domain/model/order"
	"orderlifecycle/internal/core/domain/model/redelivery"
	"orderlifecycle/internal/core/domain/model/routing"
	"orderlifecycle/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, d routing.Destination, msg lifecycle.Message) error {
	args := m.Called(ctx, d, msg)
	return args.Error(0)
}

type MockRedeliveryRepository struct{ mock.Mock }

func (m *MockRedeliveryRepository) Add(ctx context.Context, entry *redelivery.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRedeliveryRepository) Update(ctx context.Context, entry *redelivery.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockRedeliveryRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRedeliveryRepository) GetDue(ctx context.Context, now time.Time, limit int) ([]*redelivery.Entry, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*redelivery.Entry), args.Error(1)
}

type MockRedeliveryUoW struct{ mock.Mock }

func (m *MockRedeliveryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRedeliveryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRedeliveryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRedeliveryUoW) RedeliveryRepository() ports.RedeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.RedeliveryRepository)
}

type MockRedeliveryUoWFactory struct{ mock.Mock }

func (m *MockRedeliveryUoWFactory) Create() commands.RedeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.RedeliveryUoW)
}

var eventDate = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newMessage(t *testing.T, status order.Status, payload lifecycle.Payload) lifecycle.Message {
	t.Helper()

	base := lifecycle.NewBase("ord-42", "OrderEvent", eventDate, "cus-7", status)
	require.True(t, base.IsSuccess(), base.Message())
	b, _ := base.Value()

	msg := lifecycle.New(b, payload)
	require.True(t, msg.IsSuccess(), msg.Message())
	m, _ := msg.Value()
	return m
}

func readyMessage(t *testing.T) lifecycle.Message {
	return newMessage(t, order.Ready, lifecycle.Ready{UpdatedBy: "kitchen", ReadyAt: eventDate})
}

func destinationOf(t *testing.T, msg lifecycle.Message) routing.Destination {
	t.Helper()
	d := msg.Destination()
	require.True(t, d.IsSuccess(), d.Message())
	return d.ValueOrDefault(routing.Destination{})
}
