package tests

import (
	"context"
	"testing"

	"platepilot/internal/domain"
	"platepilot/internal/mocks"
	"platepilot/internal/service"

	"github.com/stretchr/testify/mock"
)

func TestConsumer_ProcessEvent(t *testing.T) {
	delivered := orderA()

	tests := []struct {
		name          string
		event         domain.OrderEvent
		expectedCalls int
	}{
		{name: "create", event: domain.NewOrderEvent(domain.ActionCreate, &delivered), expectedCalls: 1},
		{name: "update", event: domain.NewOrderEvent(domain.ActionUpdate, &delivered), expectedCalls: 1},
		{name: "delete_is_ignored", event: domain.NewOrderEvent(domain.ActionDelete, &delivered)},
		{name: "clear_all_is_ignored", event: domain.NewOrderEvent(domain.ActionClearAll, nil)},
		{name: "missing_order", event: domain.OrderEvent{Type: domain.OrdersUpdateEvent, Action: domain.ActionUpdate}},
		{name: "unknown_type", event: domain.OrderEvent{Type: "dish:update", Action: domain.ActionUpdate, Order: &delivered}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ctx := context.Background()
			tracker := mocks.NewSalesTrackerInterface(t)
			if testCase.expectedCalls > 0 {
				tracker.On("HandleStatusChange", ctx, mock.MatchedBy(func(o domain.Order) bool {
					return o.ID == delivered.ID
				})).Return().Once()
			}

			consumer := &service.Consumer{Tracker: tracker, Log: nullLogger()}
			consumer.ProcessEvent(ctx, testCase.event)

			tracker.AssertNumberOfCalls(t, "HandleStatusChange", testCase.expectedCalls)
		})
	}
}
