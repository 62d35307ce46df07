package bootstrap

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/flogin/flogin-api/internal/domain/entity"
	"github.com/flogin/flogin-api/internal/domain/repository"
	"github.com/flogin/flogin-api/pkg/logger"
)

// Seeder inserts the fixture accounts and sample products on startup.
// Users are inserted when absent by username; products only when the catalog
// is completely empty.
type Seeder struct {
	users    repository.UserRepository
	products repository.ProductRepository
	log      *logger.Logger
}

// NewSeeder builds the seeder.
func NewSeeder(users repository.UserRepository, products repository.ProductRepository, log *logger.Logger) *Seeder {
	return &Seeder{users: users, products: products, log: log}
}

// Run seeds users and products. Must run before the credential cache loads,
// so the fixture accounts can log in without a restart.
func (s *Seeder) Run() error {
	if err := s.seedUsers(); err != nil {
		return err
	}
	return s.seedProducts()
}

func (s *Seeder) seedUsers() error {
	fixtures := []*entity.User{
		{Username: "testuser", Password: "Test123", Email: "test@example.com", FullName: "Test User"},
		{Username: "user123", Password: "Password123", Email: "user123@example.com", FullName: "User 123"},
	}

	for _, u := range fixtures {
		exists, err := s.users.ExistsByUsername(u.Username)
		if err != nil {
			return fmt.Errorf("check user %s: %w", u.Username, err)
		}
		if exists {
			continue
		}
		if err := s.users.Create(u); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		s.log.Info().Str("username", u.Username).Msg("seeded user")
	}
	return nil
}

func (s *Seeder) seedProducts() error {
	count, err := s.products.Count()
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		s.log.Debug().Int64("count", count).Msg("products already exist, skipping seed")
		return nil
	}

	samples := []*entity.Product{
		{Name: "Laptop Dell XPS", Price: decimal.NewFromInt(25000000), Quantity: 10, Category: "Electronics", Description: "High-end laptop"},
		{Name: "iPhone 15 Pro", Price: decimal.NewFromInt(30000000), Quantity: 5, Category: "Electronics", Description: "Apple smartphone"},
		{Name: "Mechanical Keyboard", Price: decimal.NewFromInt(1500000), Quantity: 20, Category: "Accessories", Description: "Gaming keyboard"},
	}
	for _, p := range samples {
		if err := s.products.Create(p); err != nil {
			return fmt.Errorf("seed product %s: %w", p.Name, err)
		}
	}
	s.log.Info().Int("count", len(samples)).Msg("seeded sample products")
	return nil
}
