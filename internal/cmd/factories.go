package cmd

import (
	"fmt"

	adapterclock "github.com/rentdesk/rentdesk/internal/adapters/clock"
	adapterstorage "github.com/rentdesk/rentdesk/internal/adapters/storage"
	"github.com/rentdesk/rentdesk/internal/ports"
	"github.com/rentdesk/rentdesk/internal/services"
	"github.com/rentdesk/rentdesk/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	Clock ports.Clock

	// Services
	AnalyticsService   *services.AnalyticsService
	CustomerService    *services.CustomerService
	ItemService        *services.ItemService
	RentalService      *services.RentalService
	ReservationService *services.ReservationService
	SearchService      *services.SearchService

	// Internal - for cleanup only
	repo *adapterstorage.SQLiteRepository
}

// NewContainer opens the database at dbPath and wires the services
func NewContainer(dbPath string, clock ports.Clock) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if clock == nil {
		clock = adapterclock.SystemClock{}
	}

	return &Container{
		AnalyticsService:   services.NewAnalyticsService(repo, clock),
		Clock:              clock,
		CustomerService:    services.NewCustomerService(repo, clock),
		ItemService:        services.NewItemService(repo),
		RentalService:      services.NewRentalService(repo, repo, repo, clock),
		ReservationService: services.NewReservationService(repo, repo, repo, clock),
		SearchService:      services.NewSearchService(repo, repo),
		repo:               repo,
	}, nil
}

// UIServices returns the services the dashboard reads and writes through
func (c *Container) UIServices() ui.Services {
	return ui.Services{
		Analytics:    c.AnalyticsService,
		Customers:    c.CustomerService,
		Items:        c.ItemService,
		Rentals:      c.RentalService,
		Reservations: c.ReservationService,
		Search:       c.SearchService,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
