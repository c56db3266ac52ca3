package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/enum"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// DemoProducts is the sample catalog loaded by SeedDemoData
func DemoProducts() []entity.Product {
	return []entity.Product{
		{
			ID:              "prod-1",
			Name:            "Acne-Aid Liquid Cleanser 100ml",
			Barcode:         strPtr("6001234567890"),
			BasePrice:       "89.00",
			ProductDiscount: "40.00",
			BonusPattern:    strPtr("1@40%"),
			Category:        strPtr("Skincare"),
			Active:          true,
		},
		{
			ID:              "prod-2",
			Name:            "Bioderma Sensibio H2O 250ml",
			Barcode:         strPtr("3401345935571"),
			BasePrice:       "245.00",
			ProductDiscount: "30.00",
			Category:        strPtr("Skincare"),
			Active:          true,
		},
	}
}

// DemoCustomers is the sample customer list loaded by SeedDemoData
func DemoCustomers() []entity.Customer {
	return []entity.Customer{
		{
			ID:             "cust-1",
			Name:           "Windhoek Pharmacy",
			Email:          strPtr("orders@windhoekpharmacy.na"),
			LogFeeDiscount: "5.00",
			CustomerType:   enum.CustomerTypeRetail,
			Active:         true,
		},
		{
			ID:             "cust-2",
			Name:           "Swakopmund Wholesale",
			Email:          strPtr("buying@swakopwholesale.na"),
			LogFeeDiscount: "7.50",
			CustomerType:   enum.CustomerTypeWholesale,
			Active:         true,
		},
	}
}

// SeedDemoData inserts the sample catalog and customers. Existing rows are left untouched.
func SeedDemoData(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("seeding demo data")

	for _, p := range DemoProducts() {
		p := p
		if err := db.Where("id = ?", p.ID).FirstOrCreate(&p).Error; err != nil {
			return fmt.Errorf("seed product %s: %w", p.ID, err)
		}
	}

	for _, c := range DemoCustomers() {
		c := c
		if err := db.Where("id = ?", c.ID).FirstOrCreate(&c).Error; err != nil {
			return fmt.Errorf("seed customer %s: %w", c.ID, err)
		}
	}

	return nil
}
