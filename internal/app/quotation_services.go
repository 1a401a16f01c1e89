package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/notifications"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/google/uuid"
)

// maxNumberAttempts bounds how often Create picks a new number after losing it to a concurrent create
const maxNumberAttempts = 3

// quotationService implements the QuotationService interface
type quotationService struct {
	quotationRepository quotations.QuotationRepository
	calculator          quotations.PriceCalculator
	renderer            quotations.PDFRenderer
	mailer              notifications.Mailer
	validityDays        int
	logger              logger.Logger
}

// NewQuotationService creates a new instance of QuotationService
func NewQuotationService(
	quotationRepository quotations.QuotationRepository,
	calculator quotations.PriceCalculator,
	renderer quotations.PDFRenderer,
	mailer notifications.Mailer,
	validityDays int,
	logger logger.Logger,
) (quotations.QuotationService, error) {
	if validityDays <= 0 {
		return nil, fmt.Errorf("quotation validity must be at least one day, got %d", validityDays)
	}
	return &quotationService{
		quotationRepository: quotationRepository,
		calculator:          calculator,
		renderer:            renderer,
		mailer:              mailer,
		validityDays:        validityDays,
		logger:              logger,
	}, nil
}

// Calculate previews the price of input
func (s *quotationService) Calculate(_ context.Context, input *quotations.PricingInput) (*quotations.Price, error) {
	price, err := s.calculator.Calculate(input)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return price, nil
}

// Create prices the quotation, numbers it within its issue year and stores it as a draft
func (s *quotationService) Create(ctx context.Context, quotation *quotations.Quotation) (*quotations.Quotation, error) {
	quotation.ID = uuid.NewString()
	quotation.Status = quotations.StatusDraft
	quotation.DateTimeCreated = clock()
	quotation.DateTimeUpdated = quotation.DateTimeCreated
	s.applyDates(quotation)

	if err := s.price(quotation); err != nil {
		return nil, err
	}
	// a concurrent create may take the number between lookup and insert
	for attempt := 1; ; attempt++ {
		number, err := s.nextNumber(ctx, quotation.IssueDate.Year())
		if err != nil {
			return nil, err
		}
		quotation.QuotationNumber = number

		err = s.quotationRepository.Create(ctx, quotation)
		if err == nil {
			return quotation, nil
		}
		if !errors.Is(err, apperrors.ErrConflict) || attempt == maxNumberAttempts {
			return nil, fmt.Errorf("%w", err)
		}
		s.logger.Warn("quotation number ", number, " taken, retrying")
	}
}

// List returns a page of quotations with their effective status
func (s *quotationService) List(ctx context.Context, query *quotations.QuotationQuery) ([]*quotations.Quotation, int64, error) {
	list, total, err := s.quotationRepository.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("%w", err)
	}
	now := clock()
	for _, q := range list {
		q.Status = q.EffectiveStatus(now)
	}
	return list, total, nil
}

// GetByID retrieves a quotation with its effective status
func (s *quotationService) GetByID(ctx context.Context, quotationID string) (*quotations.Quotation, error) {
	quotation, err := s.quotationRepository.GetByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	quotation.Status = quotation.EffectiveStatus(clock())
	return quotation, nil
}

// Update replaces the editable fields and recalculates the price
func (s *quotationService) Update(ctx context.Context, quotation *quotations.Quotation) (*quotations.Quotation, error) {
	existing, err := s.quotationRepository.GetByID(ctx, quotation.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	quotation.QuotationNumber = existing.QuotationNumber
	quotation.Status = existing.Status
	quotation.DateTimeCreated = existing.DateTimeCreated
	quotation.DateTimeUpdated = clock()
	if quotation.IssueDate.IsZero() {
		quotation.IssueDate = existing.IssueDate
	}
	s.applyDates(quotation)

	if err := s.price(quotation); err != nil {
		return nil, err
	}
	if err := s.quotationRepository.UpdateByID(ctx, quotation); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	quotation.Status = quotation.EffectiveStatus(clock())
	return quotation, nil
}

// UpdateStatus applies a transition from the effective status
func (s *quotationService) UpdateStatus(ctx context.Context, quotationID, status string) (*quotations.Quotation, error) {
	quotation, err := s.quotationRepository.GetByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.transition(ctx, quotation, strings.ToLower(strings.TrimSpace(status)))
}

// DeleteByID removes a quotation
func (s *quotationService) DeleteByID(ctx context.Context, quotationID string) error {
	if _, err := s.quotationRepository.GetByID(ctx, quotationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	if err := s.quotationRepository.DeleteByID(ctx, quotationID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// RenderPDF renders the quotation document
func (s *quotationService) RenderPDF(ctx context.Context, quotationID string) ([]byte, *quotations.Quotation, error) {
	quotation, err := s.GetByID(ctx, quotationID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.renderer.RenderQuotation(quotation)
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}
	return data, quotation, nil
}

// Send emails the PDF to the client and marks a draft as sent
func (s *quotationService) Send(ctx context.Context, quotationID string) (*quotations.Quotation, error) {
	if s.mailer == nil {
		return nil, fmt.Errorf("%w: mail is not configured", apperrors.ErrUnavailable)
	}
	data, quotation, err := s.RenderPDF(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if quotation.ClientEmail == "" {
		return nil, fmt.Errorf("%w: quotation %s has no client email", apperrors.ErrValidation, quotation.QuotationNumber)
	}
	if quotation.Status == quotations.StatusExpired || quotation.Status == quotations.StatusRejected {
		return nil, fmt.Errorf("%w: a %s quotation cannot be sent", apperrors.ErrValidation, quotation.Status)
	}

	message := &notifications.Message{
		To:      quotation.ClientEmail,
		Subject: fmt.Sprintf("Orçamento %s", quotation.QuotationNumber),
		Body: fmt.Sprintf("Caro(a) %s,\n\nSegue em anexo o orçamento %s, no valor de %s €, válido até %s.\n\nCom os melhores cumprimentos,\nMaria Faz",
			quotation.ClientName, quotation.QuotationNumber, quotation.TotalPrice.StringFixed(2), quotation.ValidUntil.Format("02/01/2006")),
		Attachments: []notifications.Attachment{
			{FileName: quotation.QuotationNumber + ".pdf", ContentType: "application/pdf", Data: data},
		},
	}
	if err := s.mailer.Send(ctx, message); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if quotation.Status != quotations.StatusDraft {
		return quotation, nil
	}
	return s.transition(ctx, quotation, quotations.StatusSent)
}

func (s *quotationService) transition(ctx context.Context, quotation *quotations.Quotation, status string) (*quotations.Quotation, error) {
	current := quotation.EffectiveStatus(clock())
	if !quotations.CanTransition(current, status) {
		return nil, fmt.Errorf("%w: cannot change quotation status from %s to %s", apperrors.ErrValidation, current, status)
	}
	quotation.Status = status
	quotation.DateTimeUpdated = clock()
	if err := s.quotationRepository.UpdateByID(ctx, quotation); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	s.logger.With("quotation_id", quotation.ID, "status", status).Info("quotation status changed")
	return quotation, nil
}

func (s *quotationService) applyDates(quotation *quotations.Quotation) {
	if quotation.IssueDate.IsZero() {
		quotation.IssueDate = today()
	}
	if quotation.ValidUntil.IsZero() {
		quotation.ValidUntil = quotation.IssueDate.AddDate(0, 0, s.validityDays)
	}
}

func (s *quotationService) price(quotation *quotations.Quotation) error {
	price, err := s.calculator.Calculate(&quotation.PricingInput)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	quotation.Price = *price
	return nil
}

// nextNumber returns the number following the highest one issued in year
func (s *quotationService) nextNumber(ctx context.Context, year int) (string, error) {
	prefix := quotations.NumberPrefixForYear(year)
	last, err := s.quotationRepository.LastNumberWithPrefix(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("%w", err)
	}
	seq := 0
	if last != "" {
		seq, err = strconv.Atoi(strings.TrimPrefix(last, prefix))
		if err != nil {
			return "", fmt.Errorf("unexpected quotation number %q: %w", last, err)
		}
	}
	return quotations.FormatNumber(year, seq+1), nil
}
