package finance

import (
	"context"

	"github.com/travelworks/backend/internal/domain/finance"
	"github.com/travelworks/backend/internal/domain/shared/valueobject"
)

// ExchangeRateService manages the stored rates for ordered currency pairs
type ExchangeRateService struct {
	rateRepo finance.ExchangeRateRepository
}

// NewExchangeRateService creates a new ExchangeRateService
func NewExchangeRateService(rateRepo finance.ExchangeRateRepository) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

// Put creates the rate for an ordered pair, or updates it if the pair
// already has a record. The reverse pair is untouched.
func (s *ExchangeRateService) Put(ctx context.Context, req PutExchangeRateRequest) (*ExchangeRateResponse, error) {
	from := valueobject.Currency(req.FromCurrency)
	to := valueobject.Currency(req.ToCurrency)

	existing, err := s.rateRepo.FindByPair(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var rate *finance.ExchangeRate
	if existing != nil {
		if err := existing.UpdateRate(req.Rate); err != nil {
			return nil, err
		}
		rate = existing
	} else {
		rate, err = finance.NewExchangeRate(from, to, req.Rate)
		if err != nil {
			return nil, err
		}
	}

	if err := s.rateRepo.Save(ctx, rate); err != nil {
		return nil, err
	}

	response := ToExchangeRateResponse(rate)
	return &response, nil
}

// List returns all configured exchange rates
func (s *ExchangeRateService) List(ctx context.Context) ([]ExchangeRateResponse, error) {
	rates, err := s.rateRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToExchangeRateResponses(rates), nil
}
