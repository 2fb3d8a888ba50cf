package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nuevatoledo/hotel_pms_app/internal/apperrors"
	portsrepo "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/repositories"
	portsservices "github.com/nuevatoledo/hotel_pms_app/internal/core/ports/services"
	"github.com/nuevatoledo/hotel_pms_app/internal/dto"
	"github.com/nuevatoledo/hotel_pms_app/internal/middleware"
	"github.com/nuevatoledo/hotel_pms_app/internal/utils"

	"github.com/nuevatoledo/hotel_pms_app/internal/core/domain"
)

const dayLayout = "2006-01-02"

// ReservationServiceConfig carries the fiscal constants the reservation
// service needs.
type ReservationServiceConfig struct {
	SettlementTolerance decimal.Decimal
	ControlNumberPrefix string
	HotelName           string
	HotelTaxID          string
	HotelAddress        string
	HotelPhone          string
}

// ReservationService implements the folio ledger and reservation lifecycle.
// All folio mutations on one reservation are serialized through a keyed
// mutex, so concurrent payments cannot double-spend the remaining base or
// race the document numbering.
type ReservationService struct {
	resRepo    portsrepo.ReservationRepositoryFacade
	methodRepo portsrepo.PaymentMethodRepositoryFacade
	rateRepo   portsrepo.ExchangeRateRepositoryFacade

	roomSvc  portsservices.RoomSvcFacade
	guestSvc portsservices.GuestSvcFacade
	hkSvc    portsservices.HousekeepingSvcFacade

	calc      *SettlementCalculator
	ledger    *folioLedger
	numbering *numberingService
	locks     utils.KeyedMutex
	cfg       ReservationServiceConfig
}

func NewReservationService(
	resRepo portsrepo.ReservationRepositoryFacade,
	methodRepo portsrepo.PaymentMethodRepositoryFacade,
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	seqRepo portsrepo.SequenceRepositoryFacade,
	roomSvc portsservices.RoomSvcFacade,
	guestSvc portsservices.GuestSvcFacade,
	hkSvc portsservices.HousekeepingSvcFacade,
	calc *SettlementCalculator,
	cfg ReservationServiceConfig,
) *ReservationService {
	return &ReservationService{
		resRepo:    resRepo,
		methodRepo: methodRepo,
		rateRepo:   rateRepo,
		roomSvc:    roomSvc,
		guestSvc:   guestSvc,
		hkSvc:      hkSvc,
		calc:       calc,
		ledger:     newFolioLedger(calc),
		numbering:  newNumberingService(seqRepo),
		cfg:        cfg,
	}
}

// --- reads ---

func (s *ReservationService) GetReservationByID(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	res, err := s.resRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reservation %s: %w", reservationID, err)
	}
	if res == nil {
		return nil, apperrors.ErrNotFound
	}
	return res, nil
}

func (s *ReservationService) ListReservations(ctx context.Context, status *domain.ReservationStatus) ([]domain.Reservation, error) {
	list, err := s.resRepo.ListReservations(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	if list == nil {
		return []domain.Reservation{}, nil
	}
	return list, nil
}

func (s *ReservationService) ComputeSettlement(ctx context.Context, reservationID string) (*domain.Settlement, error) {
	res, err := s.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	settlement := s.calc.Compute(res.Folio)
	return &settlement, nil
}

func (s *ReservationService) ForeignTopUpQuote(ctx context.Context, reservationID string) (*dto.ForeignTopUpQuote, error) {
	settlement, err := s.ComputeSettlement(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	due := s.calc.ForeignTopUpDue(*settlement)
	base, _, fxTax := s.calc.SplitPayment(domain.RegimeForeign, due)
	return &dto.ForeignTopUpQuote{
		Due:          due,
		BasePortion:  base,
		FXTaxPortion: fxTax,
	}, nil
}

// Invoice assembles the printable fiscal document. The reservation must
// already carry its numbers; printing never assigns them.
func (s *ReservationService) Invoice(ctx context.Context, reservationID string) (*dto.InvoiceResponse, error) {
	res, err := s.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !res.Numbered() {
		return nil, ErrNotNumbered
	}

	settlement := s.calc.Compute(res.Folio)

	rate := decimal.Zero
	if setting, err := s.rateRepo.GetRate(ctx); err == nil && setting != nil {
		rate = setting.Rate
	}

	billToName := res.Billing.Name
	if billToName == "" {
		billToName = res.GuestName
	}

	inv := &dto.InvoiceResponse{
		InvoiceNumber: fmt.Sprintf("%06d", *res.InvoiceNumber),
		ControlNumber: fmt.Sprintf("%s-%06d", s.cfg.ControlNumberPrefix, *res.ControlNumber),

		HotelName:    s.cfg.HotelName,
		HotelTaxID:   s.cfg.HotelTaxID,
		HotelAddress: s.cfg.HotelAddress,
		HotelPhone:   s.cfg.HotelPhone,

		BillToName:    billToName,
		BillToTaxID:   res.Billing.TaxID,
		BillToAddress: res.Billing.Address,
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,

		Subtotal:      settlement.BaseDue,
		VAT:           settlement.AccruedVAT,
		FXTax:         settlement.AccruedFXTax,
		GrandTotal:    settlement.GrossTotal,
		TotalWithheld: settlement.TotalWithheld,
		Balance:       settlement.FinalBalance,

		ExchangeRate:    rate,
		SubtotalLocal:   settlement.BaseDue.Mul(rate),
		VATLocal:        settlement.AccruedVAT.Mul(rate),
		GrandTotalLocal: settlement.GrossTotal.Mul(rate),
	}

	inv.Items = groupInvoiceLines(res.Folio)
	for _, e := range res.Folio {
		if !e.IsPayment {
			continue
		}
		method := e.Description
		if m, err := s.methodRepo.FindMethodByID(ctx, e.MethodID); err == nil && m != nil {
			method = m.Name
		}
		inv.Payments = append(inv.Payments, dto.InvoicePayment{
			Method:    method,
			Reference: e.Reference,
			Amount:    e.Amount.Abs(),
		})
	}
	return inv, nil
}

// groupInvoiceLines collapses charges that share a description and unit
// amount into quantity rows.
func groupInvoiceLines(folio []domain.FolioEntry) []dto.InvoiceLine {
	lines := []dto.InvoiceLine{}
	index := map[string]int{}
	for _, e := range folio {
		if !e.IsCharge() {
			continue
		}
		key := e.Description + "|" + e.Amount.String()
		if i, ok := index[key]; ok {
			lines[i].Quantity++
			lines[i].Total = lines[i].Total.Add(e.Amount)
			continue
		}
		index[key] = len(lines)
		lines = append(lines, dto.InvoiceLine{
			Description: e.Description,
			Quantity:    1,
			UnitAmount:  e.Amount,
			Total:       e.Amount,
		})
	}
	return lines
}

// --- folio writes ---

func (s *ReservationService) AppendCharge(ctx context.Context, reservationID string, req dto.AppendChargeRequest, userID string) (*domain.FolioEntry, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.writableReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	entry := s.ledger.newCharge(req.Description, req.Amount, bucketOrDefault(req.Bucket))
	res.Folio = append(res.Folio, entry)
	s.touch(res, userID)

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to append charge to %s: %w", reservationID, err)
	}
	return &entry, nil
}

// RecordPayment records an already-confirmed payment event. The tax split
// is fixed here; a payment also pins the reservation's fiscal identity, so
// the invoice and control numbers are assigned on the first one.
func (s *ReservationService) RecordPayment(ctx context.Context, reservationID string, req dto.RecordPaymentRequest, userID string) (*domain.Settlement, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.writableReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	method, err := s.methodRepo.FindMethodByID(ctx, req.MethodID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up payment method: %w", err)
	}
	if method == nil || !method.Active {
		return nil, ErrUnknownMethod
	}

	// A payment may not exceed what the regime accepts against the
	// remaining base, except for deferred-debt methods.
	current := s.calc.Compute(res.Folio)
	remaining := current.BaseDue.Sub(current.BasePaid)
	maxAmount := s.calc.MaxPayment(method.Regime, remaining)
	if req.Amount.GreaterThan(maxAmount.Add(s.cfg.SettlementTolerance)) && !method.AllowsDebt {
		return nil, ErrOverpaymentBlocked
	}

	rate := decimal.Zero
	if setting, err := s.rateRepo.GetRate(ctx); err == nil && setting != nil {
		rate = setting.Rate
	}

	entry := s.ledger.newPayment(*method, req.Amount, bucketOrDefault(req.Bucket), req.Reference, rate)
	res.Folio = append(res.Folio, entry)

	assigned, err := s.numbering.EnsureNumbered(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("failed to number reservation %s: %w", reservationID, err)
	}
	s.touch(res, userID)

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to record payment on %s: %w", reservationID, err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Payment recorded",
		slog.String("reservation_id", reservationID),
		slog.String("method", method.MethodID),
		slog.String("amount", req.Amount.String()),
	)
	if assigned {
		logger.Info("Fiscal documents numbered",
			slog.String("reservation_id", reservationID),
			slog.Int64("invoice_number", *res.InvoiceNumber),
		)
	}

	settlement := s.calc.Compute(res.Folio)
	return &settlement, nil
}

// RecordWithholding records a payer-side VAT withholding voucher. It is
// only meaningful once local-regime payments accrued VAT; the voucher
// amount itself is whatever the payer's certificate states.
func (s *ReservationService) RecordWithholding(ctx context.Context, reservationID string, req dto.RecordWithholdingRequest, userID string) (*domain.Settlement, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.writableReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	current := s.calc.Compute(res.Folio)
	if !current.AccruedVAT.IsPositive() {
		return nil, ErrNoTaxAccrued
	}

	entry := s.ledger.newWithholding(req.Amount, current.AccruedVAT, domain.BucketA, req.Reference)
	res.Folio = append(res.Folio, entry)
	s.touch(res, userID)

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to record withholding on %s: %w", reservationID, err)
	}

	settlement := s.calc.Compute(res.Folio)
	return &settlement, nil
}

func (s *ReservationService) MoveEntry(ctx context.Context, reservationID string, entryID string, target domain.FolioBucket, userID string) error {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.writableReservation(ctx, reservationID)
	if err != nil {
		return err
	}
	if !target.Valid() {
		return fmt.Errorf("invalid bucket %q: %w", target, apperrors.ErrValidation)
	}
	if err := s.ledger.moveEntry(res, entryID, target); err != nil {
		return err
	}
	s.touch(res, userID)

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return fmt.Errorf("failed to move entry on %s: %w", reservationID, err)
	}
	return nil
}

// --- lifecycle ---

func (s *ReservationService) CreateReservation(ctx context.Context, req dto.CreateReservationRequest, creatorUserID string) (*domain.Reservation, error) {
	nights, err := nightsBetween(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !req.NightlyRate.IsPositive() {
		return nil, ErrInvalidAmount
	}

	channel := req.Channel
	if channel == "" {
		channel = "directo"
	}

	now := time.Now()
	res := domain.Reservation{
		ReservationID:   uuid.New().String(),
		GuestName:       req.GuestName,
		GuestDocumentID: req.DocumentID,
		Notes:           req.Notes,
		RoomID:          req.RoomID,
		RoomType:        req.RoomType,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Status:          domain.ReservationConfirmed,
		Channel:         channel,
		NightlyRate:     req.NightlyRate,
		Billing:         domain.BillingProfile{Type: domain.BillingPersonal},
		Folio:           []domain.FolioEntry{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Seed one nightly charge per night so extensions and invoice grouping
	// work off uniform lines.
	desc := fmt.Sprintf("Alojamiento Hab. %s", req.RoomType)
	for i := 0; i < nights; i++ {
		res.Folio = append(res.Folio, s.ledger.newCharge(desc, req.NightlyRate, domain.BucketA))
	}

	if err := s.resRepo.SaveReservation(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to save reservation: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Reservation created",
		slog.String("reservation_id", res.ReservationID),
		slog.Int("nights", nights),
	)
	return &res, nil
}

// PreCheckIn applies the guest self-service registration that can happen
// before arrival. It never assigns a room.
func (s *ReservationService) PreCheckIn(ctx context.Context, reservationID string, req dto.PreCheckInRequest) (*domain.Reservation, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationConfirmed {
		return nil, fmt.Errorf("reservation %s is not awaiting arrival: %w", reservationID, apperrors.ErrConflict)
	}

	guest, err := s.guestSvc.UpsertFromRegistration(ctx, dto.CheckInRequest{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DocumentID:  req.DocumentID,
		Nationality: req.Nationality,
		Phone:       req.Phone,
	}, "self-service")
	if err != nil {
		return nil, err
	}

	res.GuestID = guest.GuestID
	if name := guest.FullName(); name != "" {
		res.GuestName = name
	}
	res.Status = domain.ReservationPreChecked
	s.touch(res, "self-service")

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to pre-check-in %s: %w", reservationID, err)
	}
	return res, nil
}

// CheckIn registers the guest and moves the reservation in-house. A room
// of the reserved type is auto-assigned when none was picked.
func (s *ReservationService) CheckIn(ctx context.Context, reservationID string, req dto.CheckInRequest, userID string) (*domain.Reservation, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationConfirmed && res.Status != domain.ReservationPreChecked {
		return nil, fmt.Errorf("reservation %s cannot check in from %s: %w", reservationID, res.Status, apperrors.ErrConflict)
	}

	if req.DocumentID == "" {
		req.DocumentID = res.GuestDocumentID
	}
	if req.DocumentID == "" {
		// Pre-check-in may have captured the document already.
		if res.GuestID == "" {
			return nil, ErrMissingIdentification
		}
		guest, err := s.guestSvc.GetGuestByID(ctx, res.GuestID)
		if err != nil {
			return nil, err
		}
		if guest.DocumentID == "" {
			return nil, ErrMissingIdentification
		}
		req.DocumentID = guest.DocumentID
	}

	guest, err := s.guestSvc.UpsertFromRegistration(ctx, req, userID)
	if err != nil {
		return nil, err
	}

	roomID := res.RoomID
	if roomID == nil {
		room, err := s.roomSvc.FindAvailableByType(ctx, res.RoomType)
		if err != nil {
			return nil, err
		}
		roomID = &room.RoomID
	}
	if err := s.roomSvc.Occupy(ctx, *roomID, guest.GuestID, userID); err != nil {
		return nil, err
	}

	res.RoomID = roomID
	res.GuestID = guest.GuestID
	res.GuestName = guest.FullName()
	res.Status = domain.ReservationCheckedIn
	s.touch(res, userID)

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to check in %s: %w", reservationID, err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Guest checked in",
		slog.String("reservation_id", reservationID),
		slog.String("room_id", *roomID),
	)
	return res, nil
}

// Checkout completes the stay. It is gated on the folio being settled
// within tolerance; on success the room goes to cleaning, a departure task
// opens, and the guest's loyalty counters advance.
func (s *ReservationService) Checkout(ctx context.Context, reservationID string, userID string) (*domain.Reservation, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationCheckedIn {
		return nil, ErrNotCheckedIn
	}

	settlement := s.calc.Compute(res.Folio)
	if !settlement.Settled(s.cfg.SettlementTolerance) {
		return nil, &BalanceOutstandingError{Remaining: settlement.FinalBalance}
	}

	if _, err := s.numbering.EnsureNumbered(ctx, res); err != nil {
		return nil, fmt.Errorf("failed to number reservation %s: %w", reservationID, err)
	}

	res.Status = domain.ReservationCompleted
	s.touch(res, userID)
	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to complete reservation %s: %w", reservationID, err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)

	if res.RoomID != nil {
		if err := s.roomSvc.ReleaseToCleaning(ctx, *res.RoomID, userID); err != nil {
			logger.Error("Failed to release room after checkout", slog.String("room_id", *res.RoomID), slog.String("error", err.Error()))
		} else if _, err := s.hkSvc.CreateCheckoutTask(ctx, *res.RoomID); err != nil {
			logger.Error("Failed to create checkout cleaning task", slog.String("room_id", *res.RoomID), slog.String("error", err.Error()))
		}
	}

	if res.GuestID != "" {
		spent := settlement.GrossTotal.Sub(settlement.TotalWithheld)
		today := time.Now().Format(dayLayout)
		if _, err := s.guestSvc.FinalizeStay(ctx, res.GuestID, spent, today, userID); err != nil {
			logger.Error("Failed to finalize guest stay", slog.String("guest_id", res.GuestID), slog.String("error", err.Error()))
		}
	}

	logger.Info("Reservation completed", slog.String("reservation_id", reservationID))
	return res, nil
}

// ExtendStay pushes the checkout date and posts one nightly charge per
// extra night at the reservation's rate.
func (s *ReservationService) ExtendStay(ctx context.Context, reservationID string, req dto.ExtendStayRequest, userID string) (*domain.Reservation, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationCheckedIn {
		return nil, ErrNotCheckedIn
	}
	if req.Nights < 1 {
		return nil, fmt.Errorf("nights must be at least 1: %w", apperrors.ErrValidation)
	}

	out, err := time.Parse(dayLayout, res.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("reservation %s has malformed checkout date: %w", reservationID, apperrors.ErrInternal)
	}
	res.CheckOut = out.AddDate(0, 0, req.Nights).Format(dayLayout)

	desc := fmt.Sprintf("Alojamiento Hab. %s", res.RoomType)
	for i := 0; i < req.Nights; i++ {
		res.Folio = append(res.Folio, s.ledger.newCharge(desc, res.NightlyRate, domain.BucketA))
	}
	s.touch(res, userID)

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to extend %s: %w", reservationID, err)
	}
	return res, nil
}

func (s *ReservationService) Cancel(ctx context.Context, reservationID string, userID string) (*domain.Reservation, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status != domain.ReservationConfirmed && res.Status != domain.ReservationPreChecked {
		return nil, fmt.Errorf("reservation %s cannot be cancelled from %s: %w", reservationID, res.Status, apperrors.ErrConflict)
	}

	res.Status = domain.ReservationCancelled
	s.touch(res, userID)

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to cancel %s: %w", reservationID, err)
	}
	return res, nil
}

func (s *ReservationService) UpdateBilling(ctx context.Context, reservationID string, req dto.UpdateBillingRequest, userID string) (*domain.Reservation, error) {
	unlock := s.locks.Lock(reservationID)
	defer unlock()

	res, err := s.writableReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	res.Billing = domain.BillingProfile{
		Type:    domain.BillingProfileType(req.Type),
		Name:    req.Name,
		TaxID:   req.TaxID,
		Phone:   req.Phone,
		Address: req.Address,
	}
	s.touch(res, userID)

	if err := s.resRepo.UpdateReservation(ctx, *res); err != nil {
		return nil, fmt.Errorf("failed to update billing on %s: %w", reservationID, err)
	}
	return res, nil
}

// --- helpers ---

// writableReservation fetches a reservation that still accepts folio or
// billing mutations.
func (s *ReservationService) writableReservation(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	res, err := s.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.Status == domain.ReservationCompleted || res.Status == domain.ReservationCancelled {
		return nil, ErrReservationClosed
	}
	return res, nil
}

func (s *ReservationService) touch(res *domain.Reservation, userID string) {
	res.LastUpdatedAt = time.Now()
	res.LastUpdatedBy = userID
}

func bucketOrDefault(bucket string) domain.FolioBucket {
	if bucket == "" {
		return domain.BucketA
	}
	return domain.FolioBucket(bucket)
}

func nightsBetween(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dayLayout, checkIn)
	if err != nil {
		return 0, fmt.Errorf("invalid check-in date: %w", apperrors.ErrValidation)
	}
	out, err := time.Parse(dayLayout, checkOut)
	if err != nil {
		return 0, fmt.Errorf("invalid check-out date: %w", apperrors.ErrValidation)
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 1 {
		return 0, fmt.Errorf("check-out must be after check-in: %w", apperrors.ErrValidation)
	}
	return nights, nil
}
