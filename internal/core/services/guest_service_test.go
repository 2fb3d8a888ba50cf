package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
	"github.com/nuevatoledo/hotel_pms_app/internal/core/services"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"
)

type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) FindGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) FindGuestByDocumentID(ctx context.Context, documentID string) (*domain.Guest, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guest), args.Error(1)
}

func (m *MockGuestRepository) SaveGuest(ctx context.Context, guest domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}

func (m *MockGuestRepository) UpdateGuest(ctx context.Context, guest domain.Guest) error {
	args := m.Called(ctx, guest)
	return args.Error(0)
}

// --- Test Suite ---

type GuestServiceTestSuite struct {
	suite.Suite
	mockRepo *MockGuestRepository
	service  *services.GuestService
}

func (suite *GuestServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockGuestRepository)
	suite.service = services.NewGuestService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *GuestServiceTestSuite) TestUpsertFromRegistration_NewGuest() {
	ctx := context.Background()
	req := dto.CheckInRequest{FirstName: "Maria", LastName: "Perez", DocumentID: "V-12345678"}

	suite.mockRepo.On("FindGuestByDocumentID", ctx, "V-12345678").Return(nil, nil).Once()
	suite.mockRepo.On("SaveGuest", ctx, mock.MatchedBy(func(g domain.Guest) bool {
		return g.DocumentID == "V-12345678" && g.Tier == domain.TierBronze && g.Stays == 0
	})).Return(nil).Once()

	guest, err := suite.service.UpsertFromRegistration(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.NotEmpty(guest.GuestID)
	suite.Equal(domain.TierBronze, guest.Tier)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *GuestServiceTestSuite) TestUpsertFromRegistration_ReturningGuestKeepsHistory() {
	ctx := context.Background()
	existing := &domain.Guest{
		GuestID:    "guest-1",
		DocumentID: "V-12345678",
		FirstName:  "María",
		Stays:      4,
		TotalSpent: dec("1500"),
		Tier:       domain.TierSilver,
	}
	req := dto.CheckInRequest{FirstName: "Maria", LastName: "Perez", DocumentID: "V-12345678", Phone: "0414-5551234"}

	suite.mockRepo.On("FindGuestByDocumentID", ctx, "V-12345678").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateGuest", ctx, mock.MatchedBy(func(g domain.Guest) bool {
		return g.GuestID == "guest-1" && g.Stays == 4 && g.Phone == "0414-5551234" && g.FirstName == "Maria"
	})).Return(nil).Once()

	guest, err := suite.service.UpsertFromRegistration(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("guest-1", guest.GuestID)
	suite.Equal(4, guest.Stays)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveGuest", mock.Anything, mock.Anything)
}

func (suite *GuestServiceTestSuite) TestFinalizeStay_ReachesTierByStayCount() {
	ctx := context.Background()
	guest := &domain.Guest{GuestID: "guest-1", Stays: 2, TotalSpent: dec("300"), Tier: domain.TierBronze}

	suite.mockRepo.On("FindGuestByID", ctx, "guest-1").Return(guest, nil).Once()
	suite.mockRepo.On("UpdateGuest", ctx, mock.Anything).Return(nil).Once()

	updated, err := suite.service.FinalizeStay(ctx, "guest-1", dec("120"), "2026-08-31", "user-1")

	suite.Require().NoError(err)
	suite.Equal(3, updated.Stays)
	suite.Equal(domain.TierSilver, updated.Tier)
	suite.Equal("2026-08-31", updated.LastCheckout)
}

func (suite *GuestServiceTestSuite) TestFinalizeStay_ReachesTierBySpend() {
	ctx := context.Background()
	guest := &domain.Guest{GuestID: "guest-1", Stays: 1, TotalSpent: dec("4800"), Tier: domain.TierGold}

	suite.mockRepo.On("FindGuestByID", ctx, "guest-1").Return(guest, nil).Once()
	suite.mockRepo.On("UpdateGuest", ctx, mock.Anything).Return(nil).Once()

	updated, err := suite.service.FinalizeStay(ctx, "guest-1", dec("250"), "2026-08-31", "user-1")

	suite.Require().NoError(err)
	suite.True(updated.TotalSpent.Equal(dec("5050")))
	suite.Equal(domain.TierPlatinum, updated.Tier)
}

func (suite *GuestServiceTestSuite) TestFinalizeStay_TierNeverRegresses() {
	ctx := context.Background()
	// Manually granted platinum; two cheap stays keep the computed tier at
	// bronze, but the stored tier must stand.
	guest := &domain.Guest{GuestID: "guest-1", Stays: 1, TotalSpent: dec("100"), Tier: domain.TierPlatinum}

	suite.mockRepo.On("FindGuestByID", ctx, "guest-1").Return(guest, nil).Once()
	suite.mockRepo.On("UpdateGuest", ctx, mock.MatchedBy(func(g domain.Guest) bool {
		return g.Tier == domain.TierPlatinum
	})).Return(nil).Once()

	updated, err := suite.service.FinalizeStay(ctx, "guest-1", dec("50"), "2026-08-31", "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.TierPlatinum, updated.Tier)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestGuestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GuestServiceTestSuite))
}
