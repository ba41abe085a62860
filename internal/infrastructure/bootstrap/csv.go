package bootstrap

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/brewery/backend/internal/domain/catalog"
)

// BeerRecord is one row of the seed CSV
type BeerRecord struct {
	Row   int
	Count int
	Name  string
	Style string
}

// ReadBeerRecords parses the seed CSV. The file carries a header row;
// columns are matched by name so column order does not matter.
func ReadBeerRecords(path string, limit int) ([]BeerRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"row", "count", "beer", "style"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("seed csv missing column %q", required)
		}
	}

	var records []BeerRecord
	for limit <= 0 || len(records) < limit {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		row, _ := strconv.Atoi(fields[col["row"]])
		count, _ := strconv.Atoi(fields[col["count"]])
		records = append(records, BeerRecord{
			Row:   row,
			Count: count,
			Name:  strings.TrimSpace(fields[col["beer"]]),
			Style: strings.TrimSpace(fields[col["style"]]),
		})
	}
	return records, nil
}

// MapStyle folds the free-text CSV style names onto the catalog enum
func MapStyle(raw string) catalog.BeerStyle {
	switch raw {
	case "American Pale Lager":
		return catalog.StyleLager
	case "American Pale Ale (APA)", "American Black Ale", "Belgian Dark Ale", "American Blonde Ale":
		return catalog.StyleAle
	case "American IPA", "American Double / Imperial IPA", "Belgian IPA":
		return catalog.StyleIPA
	case "American Porter":
		return catalog.StylePorter
	case "Oatmeal Stout", "American Stout":
		return catalog.StyleStout
	case "Saison / Farmhouse Ale":
		return catalog.StyleSaison
	case "Fruit / Vegetable Beer", "Winter Warmer", "Berliner Weissbier":
		return catalog.StyleWheat
	case "English Pale Ale":
		return catalog.StylePaleAle
	default:
		return catalog.StylePilsner
	}
}
