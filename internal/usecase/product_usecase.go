package usecase

import (
	"errors"
	"fmt"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/cost"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/idgen"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/metrics"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	SubmitDraft(draft *domain.Draft) (*domain.Product, error)
	GetProductByID(id string) (*domain.Product, error)
	DeleteProduct(id string) error
	ListProducts(query string) ([]domain.Product, error)
	Summary() (*domain.InventorySummary, error)
}

type ProductService struct {
	productRepo domain.ProductRepository
	keys        idgen.Generator
	metrics     *metrics.Recorder
	log         *logrus.Logger
}

var _ ProductUseCase = (*ProductService)(nil)

// NewProductUseCase wires the store with the generator used for permanent
// material keys.
func NewProductUseCase(repo domain.ProductRepository, keys idgen.Generator, recorder *metrics.Recorder, logger *logrus.Logger) *ProductService {
	return &ProductService{
		productRepo: repo,
		keys:        keys,
		metrics:     recorder,
		log:         logger,
	}
}

// SubmitDraft validates the draft and, when valid, stores it with its total
// cost. New drafts are added; drafts of an existing product replace it.
// Invalid drafts return domain.ValidationErrors and leave the store as is.
func (uc *ProductService) SubmitDraft(draft *domain.Draft) (*domain.Product, error) {
	if errs := draft.Validate(); len(errs) > 0 {
		uc.metrics.ObserveValidationFailure()
		uc.log.Warnf("Use Case: Draft for product '%s' rejected: %v", draft.Name, errs)
		return nil, errs
	}

	product := uc.finalize(draft)

	if draft.IsNew() {
		uc.log.Infof("Use Case: Attempting to add product '%s'", product.Name)
		created, err := uc.productRepo.AddProduct(product)
		if err != nil {
			uc.metrics.ObserveMutation(metrics.OpAdd, outcomeOf(err))
			uc.log.Errorf("Use Case: Repository failed to add product '%s': %v", product.Name, err)
			return nil, err
		}
		uc.metrics.ObserveMutation(metrics.OpAdd, metrics.OutcomeOK)
		uc.RefreshMetrics()
		uc.log.Infof("Use Case: Product '%s' added with ID %s, total cost %s", created.Name, created.ID, created.TotalCost)
		return created, nil
	}

	uc.log.Infof("Use Case: Attempting to update product ID %s", product.ID)
	updated, err := uc.productRepo.UpdateProduct(product)
	if err != nil {
		uc.metrics.ObserveMutation(metrics.OpUpdate, outcomeOf(err))
		uc.log.Warnf("Use Case: Repository failed to update product ID %s: %v", product.ID, err)
		return nil, err
	}
	uc.metrics.ObserveMutation(metrics.OpUpdate, metrics.OutcomeOK)
	uc.RefreshMetrics()
	uc.log.Infof("Use Case: Product updated successfully for ID %s", updated.ID)
	return updated, nil
}

// finalize turns a valid draft into a product record: materials without a
// permanent key get one, and the total cost snapshot is taken.
func (uc *ProductService) finalize(draft *domain.Draft) domain.Product {
	used := make(map[domain.MaterialKey]struct{}, len(draft.Materials))
	for _, m := range draft.Materials {
		if m.Key.IsPermanent() {
			used[m.Key] = struct{}{}
		}
	}

	materials := make([]domain.Material, 0, len(draft.Materials))
	for _, m := range draft.Materials {
		if !m.Key.IsPermanent() {
			m.Key = uc.newPermanentKey(used)
		}
		materials = append(materials, m)
	}

	return domain.Product{
		ID:            draft.ProductID,
		Name:          draft.Name,
		UnitOfMeasure: draft.UnitOfMeasure,
		Category:      draft.Category,
		ExpiryDate:    draft.ExpiryDate,
		Materials:     materials,
		TotalCost:     cost.ProductTotalCost(materials),
	}
}

func (uc *ProductService) newPermanentKey(used map[domain.MaterialKey]struct{}) domain.MaterialKey {
	for {
		key := domain.NewPermanentKey(uc.keys.NewID())
		if _, taken := used[key]; !taken {
			used[key] = struct{}{}
			return key
		}
	}
}

func (uc *ProductService) GetProductByID(id string) (*domain.Product, error) {
	if id == "" {
		uc.log.Warn("Use Case: Attempted to get product with empty ID")
		return nil, domain.ErrEmptyProductID
	}
	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %s: %v", id, err)
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes the product. Callers are expected to have obtained
// the user's confirmation first.
func (uc *ProductService) DeleteProduct(id string) error {
	if id == "" {
		uc.log.Warn("Use Case: Attempted delete with empty product ID")
		return domain.ErrEmptyProductID
	}
	uc.log.Infof("Use Case: Attempting to delete product ID %s", id)
	if err := uc.productRepo.DeleteProduct(id); err != nil {
		uc.metrics.ObserveMutation(metrics.OpDelete, outcomeOf(err))
		uc.log.Warnf("Use Case: Repository failed to delete product ID %s: %v", id, err)
		return err
	}
	uc.metrics.ObserveMutation(metrics.OpDelete, metrics.OutcomeOK)
	uc.RefreshMetrics()
	uc.log.Infof("Use Case: Product deleted successfully for ID %s", id)
	return nil
}

// ListProducts returns the products matching query in store order; an empty
// query matches everything.
func (uc *ProductService) ListProducts(query string) ([]domain.Product, error) {
	products, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	matched := Search(products, query)
	uc.log.Infof("Use Case: Retrieved %d of %d products for query %q", len(matched), len(products), query)
	return matched, nil
}

func (uc *ProductService) Summary() (*domain.InventorySummary, error) {
	products, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for summary: %v", err)
		return nil, fmt.Errorf("could not summarise inventory: %w", err)
	}
	return &domain.InventorySummary{
		TotalProducts: len(products),
		TotalValue:    cost.InventoryValue(products),
	}, nil
}

// RefreshMetrics sets the product count and inventory value gauges from
// the store. Call it once after the store is seeded.
func (uc *ProductService) RefreshMetrics() {
	summary, err := uc.Summary()
	if err != nil {
		uc.log.Warnf("Use Case: Could not refresh inventory gauges: %v", err)
		return
	}
	uc.metrics.SetInventory(summary.TotalProducts, summary.TotalValue)
}

func outcomeOf(err error) string {
	if errors.Is(err, domain.ErrProductNotFound) {
		return metrics.OutcomeNotFound
	}
	return metrics.OutcomeError
}
