package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunDB builds statements without a database connection
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test password=test dbname=test port=5432 sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

func TestEligibleAt_Query(t *testing.T) {
	db := dryRunDB(t)
	asOf := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []entity.Promotion
		return eligibleAt(tx, asOf).Find(&out)
	})

	assert.Contains(t, sql, `FROM "promotions"`)
	assert.Contains(t, sql, "start_date <=")
	assert.Contains(t, sql, "end_date >=")

	p := strings.Index(sql, "priority DESC")
	c := strings.Index(sql, "created_at DESC")
	i := strings.Index(sql, "id DESC")
	require.True(t, p >= 0 && c >= 0 && i >= 0, sql)
	assert.True(t, p < c && c < i, sql)
}

func TestSearchScope(t *testing.T) {
	db := dryRunDB(t)

	t.Run("builds an OR over the columns", func(t *testing.T) {
		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var out []entity.Customer
			return tx.Model(&entity.Customer{}).Scopes(SearchScope("Windhoek", "name", "email")).Find(&out)
		})
		assert.Contains(t, sql, "LOWER(name) LIKE '%windhoek%' ESCAPE '!' OR LOWER(email) LIKE '%windhoek%' ESCAPE '!'")
	})

	t.Run("wildcards in the search match literally", func(t *testing.T) {
		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var out []entity.Product
			return tx.Model(&entity.Product{}).Scopes(SearchScope("10%_off!", "name")).Find(&out)
		})
		assert.Contains(t, sql, "LOWER(name) LIKE '%10!%!_off!!%' ESCAPE '!'")
	})

	t.Run("blank search adds nothing", func(t *testing.T) {
		sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
			var out []entity.Customer
			return tx.Model(&entity.Customer{}).Scopes(SearchScope("  ", "name")).Find(&out)
		})
		assert.NotContains(t, sql, "LIKE")
	})
}

func TestRecentFirst(t *testing.T) {
	db := dryRunDB(t)

	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []entity.PricingAudit
		return tx.Scopes(RecentFirst).Limit(50).Find(&out)
	})

	assert.Contains(t, sql, `FROM "pricing_audit"`)
	assert.Contains(t, sql, "created_at DESC")
	assert.Contains(t, sql, "LIMIT 50")
}
