package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
	"github.com/nuevatoledo/hotel_pms_app/internal/core/services"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"
)

// --- Mock repositories ---

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) FindReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	args := m.Called(ctx, reservationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListReservations(ctx context.Context, status *domain.ReservationStatus) ([]domain.Reservation, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) SaveReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) UpdateReservation(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) FindMethodByID(ctx context.Context, methodID string) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, methodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) ListMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) GetRate(ctx context.Context) (*domain.ExchangeRateSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRateSetting), args.Error(1)
}

func (m *MockExchangeRateRepository) SetRate(ctx context.Context, setting domain.ExchangeRateSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) NextDocumentNumbers(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockSequenceRepository) PeekDocumentNumbers(ctx context.Context) (int64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// --- Mock collaborating services ---

type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) GetRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) ListRooms(ctx context.Context, status *domain.RoomStatus) ([]domain.Room, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomService) AddRoom(ctx context.Context, req dto.AddRoomRequest, creatorUserID string) (*domain.Room, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) ChangeStatus(ctx context.Context, roomID string, status domain.RoomStatus, userID string) (*domain.Room, error) {
	args := m.Called(ctx, roomID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) Occupy(ctx context.Context, roomID string, guestID string, userID string) error {
	args := m.Called(ctx, roomID, guestID, userID)
	return args.Error(0)
}

func (m *MockRoomService) ReleaseToCleaning(ctx context.Context, roomID string, userID string) error {
	args := m.Called(ctx, roomID, userID)
	return args.Error(0)
}

func (m *MockRoomService) MarkCleaned(ctx context.Context, roomID string, userID string) error {
	args := m.Called(ctx, roomID, userID)
	return args.Error(0)
}

func (m *MockRoomService) FindAvailableByType(ctx context.Context, roomType string) (*domain.Room, error) {
	args := m.Called(ctx, roomType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockGuestService struct {
	mock.Mock
}

func (m *MockGuestService) GetGuestByID(ctx context.Context, guestID string) (*domain.Guest, error) {
	args := m.Called(ctx, guestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestService) ListGuests(ctx context.Context) ([]domain.Guest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Guest), args.Error(1)
}

func (m *MockGuestService) UpsertFromRegistration(ctx context.Context, req dto.CheckInRequest, userID string) (*domain.Guest, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

func (m *MockGuestService) FinalizeStay(ctx context.Context, guestID string, spent decimal.Decimal, checkoutDate string, userID string) (*domain.Guest, error) {
	args := m.Called(ctx, guestID, spent, checkoutDate, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guest), args.Error(1)
}

type MockHousekeepingService struct {
	mock.Mock
}

func (m *MockHousekeepingService) CreateCheckoutTask(ctx context.Context, roomID string) (*domain.HousekeepingTask, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HousekeepingTask), args.Error(1)
}

func (m *MockHousekeepingService) AdvanceTask(ctx context.Context, taskID string, userID string) (*domain.HousekeepingTask, error) {
	args := m.Called(ctx, taskID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HousekeepingTask), args.Error(1)
}

func (m *MockHousekeepingService) ListTasks(ctx context.Context, status *domain.HousekeepingStatus) ([]domain.HousekeepingTask, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.HousekeepingTask), args.Error(1)
}

// --- Test Suite ---

type ReservationServiceTestSuite struct {
	suite.Suite
	mockResRepo    *MockReservationRepository
	mockMethodRepo *MockPaymentMethodRepository
	mockRateRepo   *MockExchangeRateRepository
	mockSeqRepo    *MockSequenceRepository
	mockRoomSvc    *MockRoomService
	mockGuestSvc   *MockGuestService
	mockHkSvc      *MockHousekeepingService
	calc           *services.SettlementCalculator
	service        *services.ReservationService
}

func (suite *ReservationServiceTestSuite) SetupTest() {
	suite.mockResRepo = new(MockReservationRepository)
	suite.mockMethodRepo = new(MockPaymentMethodRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockSeqRepo = new(MockSequenceRepository)
	suite.mockRoomSvc = new(MockRoomService)
	suite.mockGuestSvc = new(MockGuestService)
	suite.mockHkSvc = new(MockHousekeepingService)
	suite.calc = services.NewSettlementCalculator(dec("0.16"), dec("0.03"))

	suite.service = services.NewReservationService(
		suite.mockResRepo,
		suite.mockMethodRepo,
		suite.mockRateRepo,
		suite.mockSeqRepo,
		suite.mockRoomSvc,
		suite.mockGuestSvc,
		suite.mockHkSvc,
		suite.calc,
		services.ReservationServiceConfig{
			SettlementTolerance: dec("0.05"),
			ControlNumberPrefix: "00",
			HotelName:           "Nueva Toledo Suites & Hotel",
			HotelTaxID:          "J-00144822-4",
		},
	)
}

func (suite *ReservationServiceTestSuite) makeReservation(status domain.ReservationStatus, folio ...domain.FolioEntry) *domain.Reservation {
	roomID := "101"
	return &domain.Reservation{
		ReservationID: uuid.NewString(),
		GuestID:       "guest-1",
		GuestName:     "Maria Perez",
		RoomID:        &roomID,
		RoomType:      "Doble",
		CheckIn:       "2026-08-28",
		CheckOut:      "2026-08-30",
		Status:        status,
		Channel:       "directo",
		NightlyRate:   dec("50"),
		Billing:       domain.BillingProfile{Type: domain.BillingPersonal},
		Folio:         folio,
	}
}

func (suite *ReservationServiceTestSuite) paidLocalEntry(amount string) domain.FolioEntry {
	base, vat, fxTax := suite.calc.SplitPayment(domain.RegimeLocal, dec(amount))
	return domain.FolioEntry{
		EntryID:      uuid.NewString(),
		Description:  "Pago Efectivo Bolívares",
		Amount:       dec(amount).Neg(),
		Bucket:       domain.BucketA,
		IsPayment:    true,
		MethodID:     "ves_cash",
		Regime:       domain.RegimeLocal,
		BasePortion:  base,
		VATPortion:   vat,
		FXTaxPortion: fxTax,
		RecordedAt:   time.Now(),
	}
}

var localCash = &domain.PaymentMethod{
	MethodID: "ves_cash", Name: "Efectivo Bolívares", Regime: domain.RegimeLocal, Active: true,
}

// --- Test Cases ---

func (suite *ReservationServiceTestSuite) TestCreateReservation_SeedsNightlyCharges() {
	ctx := context.Background()
	req := dto.CreateReservationRequest{
		GuestName:   "Maria Perez",
		CheckIn:     "2026-08-28",
		CheckOut:    "2026-08-30",
		RoomType:    "Doble",
		NightlyRate: dec("50"),
	}

	suite.mockResRepo.On("SaveReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.Status == domain.ReservationConfirmed && len(r.Folio) == 2 && r.Folio[0].Amount.Equal(dec("50"))
	})).Return(nil).Once()

	res, err := suite.service.CreateReservation(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Len(res.Folio, 2)
	suite.Nil(res.InvoiceNumber)

	settlement := suite.calc.Compute(res.Folio)
	suite.True(settlement.BaseDue.Equal(dec("100")))
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCreateReservation_RejectsInvertedDates() {
	ctx := context.Background()
	req := dto.CreateReservationRequest{
		GuestName:   "Maria Perez",
		CheckIn:     "2026-08-30",
		CheckOut:    "2026-08-28",
		RoomType:    "Doble",
		NightlyRate: dec("50"),
	}

	_, err := suite.service.CreateReservation(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.mockResRepo.AssertNotCalled(suite.T(), "SaveReservation", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestRecordPayment_UnknownMethod() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockMethodRepo.On("FindMethodByID", ctx, "nope").Return(nil, nil).Once()

	_, err := suite.service.RecordPayment(ctx, res.ReservationID, dto.RecordPaymentRequest{
		Amount: dec("10"), MethodID: "nope",
	}, "user-1")

	suite.Require().ErrorIs(err, services.ErrUnknownMethod)
}

func (suite *ReservationServiceTestSuite) TestRecordPayment_OverpaymentBlocked() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockMethodRepo.On("FindMethodByID", ctx, "ves_cash").Return(localCash, nil).Once()

	// Regime ceiling for 100 base under 16% VAT is 116.
	_, err := suite.service.RecordPayment(ctx, res.ReservationID, dto.RecordPaymentRequest{
		Amount: dec("200"), MethodID: "ves_cash",
	}, "user-1")

	suite.Require().ErrorIs(err, services.ErrOverpaymentBlocked)
	suite.mockResRepo.AssertNotCalled(suite.T(), "UpdateReservation", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestRecordPayment_DebtMethodSkipsCeiling() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"))
	credit := &domain.PaymentMethod{
		MethodID: "credit", Name: "Crédito Empresarial", Regime: domain.RegimeLocal, AllowsDebt: true, Active: true,
	}

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockMethodRepo.On("FindMethodByID", ctx, "credit").Return(credit, nil).Once()
	suite.mockRateRepo.On("GetRate", ctx).Return(&domain.ExchangeRateSetting{Rate: dec("36.50")}, nil).Once()
	suite.mockSeqRepo.On("NextDocumentNumbers", ctx).Return(int64(1001), int64(1), nil).Once()
	suite.mockResRepo.On("UpdateReservation", ctx, mock.Anything).Return(nil).Once()

	settlement, err := suite.service.RecordPayment(ctx, res.ReservationID, dto.RecordPaymentRequest{
		Amount: dec("200"), MethodID: "credit",
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(settlement.NetBalance.IsZero())
	suite.True(settlement.FinalBalance.IsNegative())
}

func (suite *ReservationServiceTestSuite) TestRecordPayment_AssignsDocumentNumbersOnFirst() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockMethodRepo.On("FindMethodByID", ctx, "ves_cash").Return(localCash, nil).Once()
	suite.mockRateRepo.On("GetRate", ctx).Return(&domain.ExchangeRateSetting{Rate: dec("36.50")}, nil).Once()
	suite.mockSeqRepo.On("NextDocumentNumbers", ctx).Return(int64(1001), int64(1), nil).Once()
	suite.mockResRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.InvoiceNumber != nil && *r.InvoiceNumber == 1001 && *r.ControlNumber == 1
	})).Return(nil).Once()

	settlement, err := suite.service.RecordPayment(ctx, res.ReservationID, dto.RecordPaymentRequest{
		Amount: dec("58"), MethodID: "ves_cash",
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(settlement.BasePaid.Sub(dec("50")).Abs().LessThan(dec("0.0001")))
	suite.mockSeqRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestRecordPayment_NumbersAreImmutable() {
	ctx := context.Background()
	invoice, control := int64(1001), int64(1)
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"))
	res.InvoiceNumber = &invoice
	res.ControlNumber = &control

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockMethodRepo.On("FindMethodByID", ctx, "ves_cash").Return(localCash, nil).Once()
	suite.mockRateRepo.On("GetRate", ctx).Return(&domain.ExchangeRateSetting{Rate: dec("36.50")}, nil).Once()
	suite.mockResRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.InvoiceNumber != nil && *r.InvoiceNumber == 1001
	})).Return(nil).Once()

	_, err := suite.service.RecordPayment(ctx, res.ReservationID, dto.RecordPaymentRequest{
		Amount: dec("58"), MethodID: "ves_cash",
	}, "user-1")

	suite.Require().NoError(err)
	suite.mockSeqRepo.AssertNotCalled(suite.T(), "NextDocumentNumbers", mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestRecordWithholding_RequiresAccruedVAT() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()

	_, err := suite.service.RecordWithholding(ctx, res.ReservationID, dto.RecordWithholdingRequest{
		Amount: dec("5"),
	}, "user-1")

	suite.Require().ErrorIs(err, services.ErrNoTaxAccrued)
}

func (suite *ReservationServiceTestSuite) TestRecordWithholding_DescriptionCarriesPercentage() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"), suite.paidLocalEntry("58"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	// Accrued VAT is 8; a 6 voucher is the common 75% retention.
	suite.mockResRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		last := r.Folio[len(r.Folio)-1]
		return last.IsWithholding && last.Description == "Retención IVA (75%)"
	})).Return(nil).Once()

	settlement, err := suite.service.RecordWithholding(ctx, res.ReservationID, dto.RecordWithholdingRequest{
		Amount: dec("6"), Reference: "2026-000123",
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(settlement.TotalWithheld.Equal(dec("6")))
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestRecordWithholding_AcceptsAmountAboveAccruedVAT() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"), suite.paidLocalEntry("58"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockResRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		last := r.Folio[len(r.Folio)-1]
		return last.IsWithholding && last.Description == "Retención IVA (125%)"
	})).Return(nil).Once()

	// The voucher states the withheld amount; vouchers above the accrued
	// VAT are recorded as presented.
	settlement, err := suite.service.RecordWithholding(ctx, res.ReservationID, dto.RecordWithholdingRequest{
		Amount: dec("10"),
	}, "user-1")

	suite.Require().NoError(err)
	suite.True(settlement.TotalWithheld.Equal(dec("10")))
}

func (suite *ReservationServiceTestSuite) TestMoveEntry_ReassignsBucketByID() {
	ctx := context.Background()
	entry := charge("50")
	res := suite.makeReservation(domain.ReservationCheckedIn, entry)

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockResRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.Folio[0].Bucket == domain.BucketB
	})).Return(nil).Once()

	err := suite.service.MoveEntry(ctx, res.ReservationID, entry.EntryID, domain.BucketB, "user-1")

	suite.Require().NoError(err)
	suite.mockResRepo.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestMoveEntry_UnknownID() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("50"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()

	err := suite.service.MoveEntry(ctx, res.ReservationID, "no-such-entry", domain.BucketB, "user-1")

	suite.Require().ErrorIs(err, services.ErrEntryNotFound)
}

func (suite *ReservationServiceTestSuite) TestCheckIn_RequiresIdentification() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationConfirmed)
	res.GuestID = ""

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()

	_, err := suite.service.CheckIn(ctx, res.ReservationID, dto.CheckInRequest{
		FirstName: "Maria",
	}, "user-1")

	suite.Require().ErrorIs(err, services.ErrMissingIdentification)
}

func (suite *ReservationServiceTestSuite) TestCheckIn_AutoAssignsRoom() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationConfirmed)
	res.RoomID = nil
	guest := &domain.Guest{GuestID: "guest-1", FirstName: "Maria", LastName: "Perez", DocumentID: "V-12345678"}

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockGuestSvc.On("UpsertFromRegistration", ctx, mock.Anything, "user-1").Return(guest, nil).Once()
	suite.mockRoomSvc.On("FindAvailableByType", ctx, "Doble").Return(&domain.Room{RoomID: "205", Type: "Doble", Status: domain.RoomAvailable}, nil).Once()
	suite.mockRoomSvc.On("Occupy", ctx, "205", "guest-1", "user-1").Return(nil).Once()
	suite.mockResRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.Status == domain.ReservationCheckedIn && r.RoomID != nil && *r.RoomID == "205"
	})).Return(nil).Once()

	updated, err := suite.service.CheckIn(ctx, res.ReservationID, dto.CheckInRequest{
		FirstName: "Maria", LastName: "Perez", DocumentID: "V-12345678",
	}, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationCheckedIn, updated.Status)
	suite.Equal("205", *updated.RoomID)
	suite.mockRoomSvc.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCheckout_BlockedWhenUnsettled() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()

	_, err := suite.service.Checkout(ctx, res.ReservationID, "user-1")

	suite.Require().Error(err)
	var outstanding *services.BalanceOutstandingError
	suite.Require().ErrorAs(err, &outstanding)
	suite.True(outstanding.Remaining.Equal(dec("100")))
	suite.mockResRepo.AssertNotCalled(suite.T(), "UpdateReservation", mock.Anything, mock.Anything)
}

func (suite *ReservationServiceTestSuite) TestCheckout_CompletesStay() {
	ctx := context.Background()
	invoice, control := int64(1001), int64(1)
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("50"), suite.paidLocalEntry("58"))
	res.InvoiceNumber = &invoice
	res.ControlNumber = &control

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockResRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return r.Status == domain.ReservationCompleted
	})).Return(nil).Once()
	suite.mockRoomSvc.On("ReleaseToCleaning", ctx, "101", "user-1").Return(nil).Once()
	suite.mockHkSvc.On("CreateCheckoutTask", ctx, "101").Return(&domain.HousekeepingTask{TaskID: "task-1", RoomID: "101"}, nil).Once()
	suite.mockGuestSvc.On("FinalizeStay", ctx, "guest-1", mock.MatchedBy(func(spent decimal.Decimal) bool {
		return spent.Sub(dec("58")).Abs().LessThan(dec("0.0001"))
	}), mock.Anything, "user-1").Return(&domain.Guest{GuestID: "guest-1", Stays: 1}, nil).Once()

	updated, err := suite.service.Checkout(ctx, res.ReservationID, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ReservationCompleted, updated.Status)
	suite.mockRoomSvc.AssertExpectations(suite.T())
	suite.mockHkSvc.AssertExpectations(suite.T())
	suite.mockGuestSvc.AssertExpectations(suite.T())
}

func (suite *ReservationServiceTestSuite) TestCheckout_RequiresCheckedIn() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationConfirmed)

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()

	_, err := suite.service.Checkout(ctx, res.ReservationID, "user-1")

	suite.Require().ErrorIs(err, services.ErrNotCheckedIn)
}

func (suite *ReservationServiceTestSuite) TestExtendStay_PostsNightlyCharges() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("50"), charge("50"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockResRepo.On("UpdateReservation", ctx, mock.MatchedBy(func(r domain.Reservation) bool {
		return len(r.Folio) == 4 && r.CheckOut == "2026-09-01"
	})).Return(nil).Once()

	updated, err := suite.service.ExtendStay(ctx, res.ReservationID, dto.ExtendStayRequest{Nights: 2}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("2026-09-01", updated.CheckOut)

	settlement := suite.calc.Compute(updated.Folio)
	suite.True(settlement.BaseDue.Equal(dec("200")))
}

func (suite *ReservationServiceTestSuite) TestAppendCharge_ClosedReservation() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCompleted, charge("50"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()

	_, err := suite.service.AppendCharge(ctx, res.ReservationID, dto.AppendChargeRequest{
		Description: "Minibar", Amount: dec("10"),
	}, "user-1")

	suite.Require().ErrorIs(err, services.ErrReservationClosed)
}

func (suite *ReservationServiceTestSuite) TestForeignTopUpQuote_MixedRegime() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"), suite.paidLocalEntry("58"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()

	quote, err := suite.service.ForeignTopUpQuote(ctx, res.ReservationID)

	suite.Require().NoError(err)
	suite.True(quote.Due.Sub(dec("51.5464")).Abs().LessThan(dec("0.0001")))
}

func (suite *ReservationServiceTestSuite) TestInvoice_RequiresNumbers() {
	ctx := context.Background()
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("100"))

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()

	_, err := suite.service.Invoice(ctx, res.ReservationID)

	suite.Require().ErrorIs(err, services.ErrNotNumbered)
}

func (suite *ReservationServiceTestSuite) TestInvoice_FormatsDocumentNumbers() {
	ctx := context.Background()
	invoice, control := int64(1001), int64(1)
	res := suite.makeReservation(domain.ReservationCheckedIn, charge("50"), charge("50"), suite.paidLocalEntry("116"))
	res.InvoiceNumber = &invoice
	res.ControlNumber = &control

	suite.mockResRepo.On("FindReservationByID", ctx, res.ReservationID).Return(res, nil).Once()
	suite.mockRateRepo.On("GetRate", ctx).Return(&domain.ExchangeRateSetting{Rate: dec("36.50")}, nil).Once()
	suite.mockMethodRepo.On("FindMethodByID", ctx, "ves_cash").Return(localCash, nil).Once()

	inv, err := suite.service.Invoice(ctx, res.ReservationID)

	suite.Require().NoError(err)
	suite.Equal("001001", inv.InvoiceNumber)
	suite.Equal("00-000001", inv.ControlNumber)
	// Two identical nightly charges collapse into one quantity line.
	suite.Require().Len(inv.Items, 1)
	suite.Equal(2, inv.Items[0].Quantity)
	suite.Require().Len(inv.Payments, 1)
	suite.Equal("Efectivo Bolívares", inv.Payments[0].Method)
}

func TestReservationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}
