package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/brewery/backend/internal/domain/shared"
)

const (
	maxBeerNameLength = 50
	maxUPCLength      = 255
)

// Beer is the catalog aggregate root. Categories are owned
// unidirectionally: the category side carries no beer collection and
// reverse lookups go through BeerRepository.FindByCategoryID.
type Beer struct {
	shared.BaseAggregateRoot
	BeerName       string          `gorm:"size:50;not null;index"`
	BeerStyle      BeerStyle       `gorm:"size:32;not null;index"`
	UPC            string          `gorm:"size:255;not null"`
	QuantityOnHand *int
	Price          decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Categories     []Category      `gorm:"many2many:beer_category;"`
}

// TableName returns the database table name
func (Beer) TableName() string {
	return "beer"
}

// NewBeer creates a new beer with server-assigned identity, version and
// timestamps
func NewBeer(name string, style BeerStyle, upc string, quantityOnHand *int, price decimal.Decimal) (*Beer, error) {
	b := &Beer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BeerName:          name,
		BeerStyle:         style,
		UPC:               upc,
		QuantityOnHand:    quantityOnHand,
		Price:             price,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Beer) validate() error {
	if strings.TrimSpace(b.BeerName) == "" {
		return shared.NewDomainError("INVALID_INPUT", "beer name must not be blank")
	}
	// Length limits count runes, matching the binding-layer max tags
	if utf8.RuneCountInString(b.BeerName) > maxBeerNameLength {
		return shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("beer name must not exceed %d characters", maxBeerNameLength))
	}
	if !b.BeerStyle.IsValid() {
		return shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("unknown beer style %q", string(b.BeerStyle)))
	}
	if strings.TrimSpace(b.UPC) == "" {
		return shared.NewDomainError("INVALID_INPUT", "upc must not be blank")
	}
	if utf8.RuneCountInString(b.UPC) > maxUPCLength {
		return shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("upc must not exceed %d characters", maxUPCLength))
	}
	if b.QuantityOnHand != nil && *b.QuantityOnHand < 0 {
		return shared.NewDomainError("INVALID_INPUT", "quantity on hand must not be negative")
	}
	return nil
}

// Replace overwrites all mutable fields unconditionally, refreshes the
// update timestamp and advances the version
func (b *Beer) Replace(name string, style BeerStyle, upc string, quantityOnHand *int, price decimal.Decimal) error {
	prev := *b
	b.BeerName = name
	b.BeerStyle = style
	b.UPC = upc
	b.QuantityOnHand = quantityOnHand
	b.Price = price
	if err := b.validate(); err != nil {
		*b = prev
		return err
	}
	b.Touch()
	b.IncrementVersion()
	return nil
}

// BeerPatch carries the optional fields of a partial update. String
// fields apply only when non-blank; the rest apply when non-nil.
type BeerPatch struct {
	BeerName       *string
	BeerStyle      *BeerStyle
	UPC            *string
	QuantityOnHand *int
	Price          *decimal.Decimal
}

// ApplyPatch merges the supplied fields into the beer. The version
// advances once per successful patch regardless of how many fields
// changed.
func (b *Beer) ApplyPatch(patch BeerPatch) error {
	prev := *b
	if patch.BeerName != nil && strings.TrimSpace(*patch.BeerName) != "" {
		b.BeerName = *patch.BeerName
	}
	if patch.BeerStyle != nil {
		b.BeerStyle = *patch.BeerStyle
	}
	if patch.UPC != nil && strings.TrimSpace(*patch.UPC) != "" {
		b.UPC = *patch.UPC
	}
	if patch.QuantityOnHand != nil {
		b.QuantityOnHand = patch.QuantityOnHand
	}
	if patch.Price != nil {
		b.Price = *patch.Price
	}
	if err := b.validate(); err != nil {
		*b = prev
		return err
	}
	b.Touch()
	b.IncrementVersion()
	return nil
}

// RedactInventory hides the stock level from output
func (b *Beer) RedactInventory() {
	b.QuantityOnHand = nil
}

// AddCategory attaches the beer to a category if not already present
func (b *Beer) AddCategory(c Category) {
	for _, existing := range b.Categories {
		if existing.ID == c.ID {
			return
		}
	}
	b.Categories = append(b.Categories, c)
	b.Touch()
}

// RemoveCategory detaches the beer from a category
func (b *Beer) RemoveCategory(c Category) {
	for i, existing := range b.Categories {
		if existing.ID == c.ID {
			b.Categories = append(b.Categories[:i], b.Categories[i+1:]...)
			b.Touch()
			return
		}
	}
}
