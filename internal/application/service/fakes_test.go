package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sangkips/cospharm-api/internal/domain/entity"
	"github.com/sangkips/cospharm-api/internal/domain/repository"
	"github.com/sangkips/cospharm-api/pkg/pagination"
	"github.com/sangkips/cospharm-api/pkg/utils"
)

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]entity.Product
	getErr   error
	writeErr error
	gets     int
	patches  map[string]repository.ProductPatch
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: map[string]entity.Product{}, patches: map[string]repository.ProductPatch{}}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	if r.getErr != nil {
		return nil, r.getErr
	}
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	r.products[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) UpdateFields(ctx context.Context, id string, patch repository.ProductPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.writeErr != nil {
		return r.writeErr
	}
	p := r.products[id]
	if patch.BasePrice != nil {
		p.BasePrice = *patch.BasePrice
	}
	if patch.ProductDiscount != nil {
		p.ProductDiscount = *patch.ProductDiscount
	}
	if patch.BonusPattern != nil {
		p.BonusPattern = patch.BonusPattern
	}
	if patch.Active != nil {
		p.Active = *patch.Active
	}
	r.products[id] = p
	r.patches[id] = patch
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, 0, r.getErr
	}
	var out []entity.Product
	for _, p := range r.products {
		if params.ActiveOnly && !p.Active {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, int64(len(out)), nil
}

type fakeCustomerRepo struct {
	customers map[string]entity.Customer
	getErr    error
	gets      int
}

func newFakeCustomerRepo(customers ...entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: map[string]entity.Customer{}}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	if c.ID == "" {
		c.ID = utils.NewID()
	}
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	r.gets++
	if r.getErr != nil {
		return nil, r.getErr
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	r.customers[c.ID] = *c
	return nil
}

func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, int64(len(out)), nil
}

type fakePromotionRepo struct {
	promotions []entity.Promotion
	listErr    error
	lists      int
}

func (r *fakePromotionRepo) Create(ctx context.Context, p *entity.Promotion) error {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	r.promotions = append(r.promotions, *p)
	return nil
}

func (r *fakePromotionRepo) GetByID(ctx context.Context, id string) (*entity.Promotion, error) {
	for i := range r.promotions {
		if r.promotions[i].ID == id {
			p := r.promotions[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePromotionRepo) Delete(ctx context.Context, id string) error {
	out := r.promotions[:0]
	for _, p := range r.promotions {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.promotions = out
	return nil
}

func (r *fakePromotionRepo) List(ctx context.Context, params *pagination.PaginationParams, activeOnly bool) ([]entity.Promotion, int64, error) {
	return r.promotions, int64(len(r.promotions)), nil
}

// ListEligible returns the stored promotions unfiltered so that selection
// in the service is exercised on its own.
func (r *fakePromotionRepo) ListEligible(ctx context.Context, asOf time.Time) ([]entity.Promotion, error) {
	r.lists++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.promotions, nil
}

type fakeAuditRepo struct {
	mu        sync.Mutex
	audits    []entity.PricingAudit
	appendErr error
	listErr   error
	lastLimit int
}

func (r *fakeAuditRepo) Append(ctx context.Context, a *entity.PricingAudit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.audits = append(r.audits, *a)
	return nil
}

func (r *fakeAuditRepo) ListRecent(ctx context.Context, limit int) ([]entity.PricingAudit, error) {
	r.lastLimit = limit
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.audits, nil
}

func (r *fakeAuditRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]entity.PricingAudit, error) {
	r.lastLimit = limit
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []entity.PricingAudit
	for _, a := range r.audits {
		if a.ProductID == productID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	updates   []entity.BulkPriceUpdate
	createErr error
}

func (r *fakeHistoryRepo) Create(ctx context.Context, u *entity.BulkPriceUpdate) error {
	if r.createErr != nil {
		return r.createErr
	}
	if u.ID == "" {
		u.ID = utils.NewID()
	}
	r.updates = append(r.updates, *u)
	return nil
}

func (r *fakeHistoryRepo) ListRecent(ctx context.Context, limit int) ([]entity.BulkPriceUpdate, error) {
	return r.updates, nil
}

func strPtr(s string) *string { return &s }
