package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/brewery/backend/internal/domain/catalog"
	"github.com/brewery/backend/internal/domain/ordering"
	"github.com/brewery/backend/internal/domain/shared"
	"github.com/brewery/backend/internal/infrastructure/config"
	"github.com/brewery/backend/internal/infrastructure/persistence"
)

const sampleCSV = `row,count,abv,ibu,id,beer,style,brewery_id,ounces
1,50,0.05,26,1436,Pub Beer,American Pale Lager,408,12.0
2,66,0.066,58,2265,Devil's Cup,American Pale Ale (APA),177,12.0
3,71,0.071,65,2264,Rise of the Phoenix,American IPA,177,12.0
4,44,0.09,60,2263,Sinister,American Double / Imperial IPA,177,12.0
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beers.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0644))
	return path
}

func newCustomerRepo(t *testing.T) ordering.CustomerRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&ordering.Customer{}))
	return persistence.NewGormCustomerRepository(db)
}

func TestLoader_Run_SeedsEmptyStore(t *testing.T) {
	beers := persistence.NewMemoryBeerRepository()
	customers := newCustomerRepo(t)
	loader := NewLoader(beers, customers, config.BootstrapConfig{
		CSVPath:     writeSampleCSV(t),
		RecordLimit: 2410,
	}, zap.NewNop())

	require.NoError(t, loader.Run(context.Background()))

	count, err := beers.Count(context.Background())
	require.NoError(t, err)
	// 3 canonical seeds + 4 CSV rows
	assert.Equal(t, int64(7), count)

	page, err := customers.FindAll(context.Background(), shared.PageRequest{Number: 0, Size: 25})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalElements)
}

func TestLoader_Run_SkipsSeededStore(t *testing.T) {
	beers := persistence.NewMemoryBeerRepository()
	customers := newCustomerRepo(t)
	loader := NewLoader(beers, customers, config.BootstrapConfig{
		CSVPath:     writeSampleCSV(t),
		RecordLimit: 2410,
	}, zap.NewNop())

	require.NoError(t, loader.Run(context.Background()))
	require.NoError(t, loader.Run(context.Background()))

	count, err := beers.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestLoader_Run_RespectsRecordLimit(t *testing.T) {
	beers := persistence.NewMemoryBeerRepository()
	loader := NewLoader(beers, newCustomerRepo(t), config.BootstrapConfig{
		CSVPath:     writeSampleCSV(t),
		RecordLimit: 2,
	}, zap.NewNop())

	require.NoError(t, loader.Run(context.Background()))

	count, err := beers.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestReadBeerRecords_MissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0644))

	_, err := ReadBeerRecords(path, 0)
	assert.Error(t, err)
}

func TestMapStyle(t *testing.T) {
	assert.Equal(t, catalog.StyleLager, MapStyle("American Pale Lager"))
	assert.Equal(t, catalog.StyleIPA, MapStyle("Belgian IPA"))
	assert.Equal(t, catalog.StyleSaison, MapStyle("Saison / Farmhouse Ale"))
	assert.Equal(t, catalog.StylePaleAle, MapStyle("English Pale Ale"))
	assert.Equal(t, catalog.StylePilsner, MapStyle("Something Unrecognized"))
}
