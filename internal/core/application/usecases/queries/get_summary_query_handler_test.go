package queries_test

import (
	"fmt"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
)

type GetSummaryQueryHandlerTestSuite struct {
	suite.Suite
	env     *testEnv
	handler queries.GetSummaryQueryHandler
}

func (s *GetSummaryQueryHandlerTestSuite) SetupTest() {
	s.env = newTestEnv(s.T(), "John", "Sarah", "Mike")
	s.handler = queries.NewGetSummaryQueryHandler(
		fullQueryUoWFactory{s.env.factory},
		func() time.Time { return s.env.now },
	)
}

func (s *GetSummaryQueryHandlerTestSuite) handle() queries.GetSummaryQueryResponse {
	response, err := s.handler.Handle(s.T().Context(), queries.NewGetSummaryQuery())
	s.Require().NoError(err)
	return response
}

func (s *GetSummaryQueryHandlerTestSuite) TestHandle_EmptySystem() {
	summary := s.handle()

	s.Empty(summary.PendingOrders)
	s.Empty(summary.ActiveOrders)
	s.Empty(summary.RecentCompleted)
	s.Zero(summary.PendingCount)
	s.Zero(summary.ActiveCount)
	s.Zero(summary.CompletedCount)
	s.Zero(summary.OlderCompletedCount)

	s.Require().Len(summary.Drivers, 3)
	s.Equal("DRV1", summary.Drivers[0].ID)
	s.Equal("John", summary.Drivers[0].Name)
	s.True(summary.Drivers[0].Available)
	s.Equal("Sarah", summary.Drivers[1].Name)
	s.Equal("Mike", summary.Drivers[2].Name)
}

func (s *GetSummaryQueryHandlerTestSuite) TestHandle_PendingOrdersListedFrontToBack() {
	s.env.placeOrder("1 Main St", "Burger")
	s.env.placeOrder("2 Oak Ave", "Pizza", "Cola")

	summary := s.handle()

	s.Require().Len(summary.PendingOrders, 2)
	s.Equal("ORD1", summary.PendingOrders[0].ID)
	s.Equal("1 Main St", summary.PendingOrders[0].DeliveryAddress)
	s.Equal(1, summary.PendingOrders[0].ItemCount)
	s.Equal("ORD2", summary.PendingOrders[1].ID)
	s.Equal(2, summary.PendingOrders[1].ItemCount)
	s.Equal(2, summary.PendingCount)
}

func (s *GetSummaryQueryHandlerTestSuite) TestHandle_ActiveOrdersJoinDriverNames() {
	s.env.placeOrder("1 Main St", "Burger")
	s.env.placeOrder("2 Oak Ave", "Pizza")
	s.env.assignNext()
	s.env.assignNext()

	summary := s.handle()

	s.Empty(summary.PendingOrders)
	s.Require().Len(summary.ActiveOrders, 2)
	s.Equal("ORD1", summary.ActiveOrders[0].ID)
	s.Equal("DRV1", summary.ActiveOrders[0].DriverID)
	s.Equal("John", summary.ActiveOrders[0].DriverName)
	s.Equal("ORD2", summary.ActiveOrders[1].ID)
	s.Equal("DRV2", summary.ActiveOrders[1].DriverID)
	s.Equal("Sarah", summary.ActiveOrders[1].DriverName)
	s.Equal(2, summary.ActiveCount)
}

func (s *GetSummaryQueryHandlerTestSuite) TestHandle_RecentCompletedNewestFirstCapped() {
	for i := 1; i <= 7; i++ {
		placed := s.env.placeOrder(fmt.Sprintf("%d Main St", i))
		s.env.assignNext()
		s.env.completeOrder(placed.ID())
	}

	summary := s.handle()

	s.Equal(7, summary.CompletedCount)
	s.Equal(2, summary.OlderCompletedCount)
	s.Require().Len(summary.RecentCompleted, 5)
	s.Equal("ORD7", summary.RecentCompleted[0].ID)
	s.Equal("ORD6", summary.RecentCompleted[1].ID)
	s.Equal("ORD5", summary.RecentCompleted[2].ID)
	s.Equal("ORD4", summary.RecentCompleted[3].ID)
	s.Equal("ORD3", summary.RecentCompleted[4].ID)
	s.NotEmpty(summary.RecentCompleted[0].DriverID)
}

func (s *GetSummaryQueryHandlerTestSuite) TestHandle_DriverAvailabilityTracksClock() {
	s.env.placeOrder("1 Main St", "Burger")
	s.env.assignNext()

	summary := s.handle()
	s.Require().Len(summary.Drivers, 3)
	s.False(summary.Drivers[0].Available)
	s.True(summary.Drivers[0].NextAvailableAt.Equal(s.env.now.Add(services.DefaultDeliveryDuration)))
	s.True(summary.Drivers[1].Available)
	s.True(summary.Drivers[2].Available)

	// The busy window has elapsed once the clock reaches the delivery time
	s.env.now = s.env.now.Add(services.DefaultDeliveryDuration)
	summary = s.handle()
	s.True(summary.Drivers[0].Available)
}

func (s *GetSummaryQueryHandlerTestSuite) TestHandle_ValidationError() {
	_, err := s.handler.Handle(s.T().Context(), queries.GetSummaryQuery{})

	s.Require().Error(err)
	s.Require().ErrorIs(err, queries.ErrGetSummaryQueryIsNotConstructed)
}

func TestGetSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetSummaryQueryHandlerTestSuite))
}
