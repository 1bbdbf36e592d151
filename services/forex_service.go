package services

import (
	"context"
	"fmt"

	"github.com/purchasing/models"
	"gorm.io/gorm"
)

// ForexService stores exchange-rate snapshots. It does no conversion.
type ForexService struct {
	db *gorm.DB
}

// NewForexService creates a forex service on the given database
func NewForexService(db *gorm.DB) *ForexService {
	return &ForexService{db: db}
}

// RecordRate stores a snapshot as given; an empty date means today
func (s *ForexService) RecordRate(ctx context.Context, rate *models.ForexRate) error {
	if err := s.db.WithContext(ctx).Create(rate).Error; err != nil {
		return wrapStoreError(fmt.Sprintf("record %s rate", rate.Code), err)
	}
	return nil
}

// LatestRate returns the most recent snapshot for a currency code
func (s *ForexService) LatestRate(ctx context.Context, code string) (*models.ForexRate, error) {
	var rate models.ForexRate
	err := s.db.WithContext(ctx).
		Where("code = ?", code).
		Order("date DESC, id DESC").
		First(&rate).Error
	if err != nil {
		return nil, wrapStoreError(fmt.Sprintf("latest %s rate", code), err)
	}
	return &rate, nil
}

// ListRates returns snapshots newest first, optionally for one code
func (s *ForexService) ListRates(ctx context.Context, code string) ([]models.ForexRate, error) {
	query := s.db.WithContext(ctx).Order("date DESC, id DESC")
	if code != "" {
		query = query.Where("code = ?", code)
	}

	var rates []models.ForexRate
	if err := query.Find(&rates).Error; err != nil {
		return nil, wrapStoreError("list rates", err)
	}
	return rates, nil
}
