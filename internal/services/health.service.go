package services

import (
	"context"

	"github.com/mkarimi/customer-ledger/pkg/db"
)

type HealthService struct {
	db *db.DB
}

func NewHealthService(database *db.DB) *HealthService {
	return &HealthService{db: database}
}

func (s *HealthService) Get() error {
	sqlDB, err := s.db.Read(context.Background()).DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
