package bootstrap

import (
	"context"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brewery/backend/internal/domain/catalog"
	"github.com/brewery/backend/internal/domain/ordering"
	"github.com/brewery/backend/internal/infrastructure/config"
)

const maxSeedNameLength = 50

// Loader seeds the store on startup when the beer table is empty
type Loader struct {
	beers     catalog.BeerRepository
	customers ordering.CustomerRepository
	cfg       config.BootstrapConfig
	logger    *zap.Logger
}

// NewLoader creates a new bootstrap loader
func NewLoader(beers catalog.BeerRepository, customers ordering.CustomerRepository, cfg config.BootstrapConfig, logger *zap.Logger) *Loader {
	return &Loader{
		beers:     beers,
		customers: customers,
		cfg:       cfg,
		logger:    logger.Named("bootstrap"),
	}
}

// Run loads the canonical seed beers and customers, then the CSV
// catalog, skipping entirely when data is already present
func (l *Loader) Run(ctx context.Context) error {
	count, err := l.beers.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		l.logger.Info("Store already seeded, skipping bootstrap", zap.Int64("beers", count))
		return nil
	}

	if err := l.seedBeers(ctx); err != nil {
		return err
	}
	if err := l.seedCustomers(ctx); err != nil {
		return err
	}
	if err := l.loadCSV(ctx); err != nil {
		return err
	}

	total, err := l.beers.Count(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("Bootstrap complete", zap.Int64("beers", total))
	return nil
}

func (l *Loader) seedBeers(ctx context.Context) error {
	seeds := []struct {
		name  string
		style catalog.BeerStyle
		upc   string
		qty   int
		price string
	}{
		{"Galaxy Cat", catalog.StylePaleAle, "12356", 122, "12.99"},
		{"Crank", catalog.StylePaleAle, "12356222", 392, "11.99"},
		{"Sunshine City", catalog.StyleIPA, "12356", 144, "13.99"},
	}

	for _, seed := range seeds {
		qty := seed.qty
		price, err := decimal.NewFromString(seed.price)
		if err != nil {
			return err
		}
		beer, err := catalog.NewBeer(seed.name, seed.style, seed.upc, &qty, price)
		if err != nil {
			return err
		}
		if err := l.beers.Save(ctx, beer); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) seedCustomers(ctx context.Context) error {
	for _, name := range []string{"Customer 1", "Customer 2", "Customer 3"} {
		customer, err := ordering.NewCustomer(name, "")
		if err != nil {
			return err
		}
		if err := l.customers.Save(ctx, customer); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadCSV(ctx context.Context) error {
	if _, err := os.Stat(l.cfg.CSVPath); err != nil {
		l.logger.Warn("Seed CSV not found, skipping catalog load", zap.String("path", l.cfg.CSVPath))
		return nil
	}

	records, err := ReadBeerRecords(l.cfg.CSVPath, l.cfg.RecordLimit)
	if err != nil {
		return err
	}

	loaded := 0
	for _, record := range records {
		if record.Name == "" {
			continue
		}
		name := record.Name
		if len(name) > maxSeedNameLength {
			name = name[:maxSeedNameLength]
		}
		qty := record.Count
		beer, err := catalog.NewBeer(name, MapStyle(record.Style), strconv.Itoa(record.Row), &qty, decimal.NewFromInt(10))
		if err != nil {
			l.logger.Warn("Skipping invalid seed record",
				zap.Int("row", record.Row),
				zap.Error(err),
			)
			continue
		}
		if err := l.beers.Save(ctx, beer); err != nil {
			return err
		}
		loaded++
	}

	l.logger.Info("Seed CSV loaded", zap.Int("records", loaded), zap.String("path", l.cfg.CSVPath))
	return nil
}
