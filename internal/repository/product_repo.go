package repository

import (
	"fmt"
	"sync"

	"github.com/ironman07017-lang/vibeosys-inventory/internal/domain"
	"github.com/ironman07017-lang/vibeosys-inventory/internal/idgen"

	"github.com/sirupsen/logrus"
)

// InMemoryProductRepository holds the inventory state and feeds every
// mutation through Reduce.
type InMemoryProductRepository struct {
	mu    sync.RWMutex
	state InventoryState
	ids   idgen.Generator
	log   *logrus.Logger
}

var _ domain.ProductRepository = (*InMemoryProductRepository)(nil)

func NewInMemoryProductRepository(ids idgen.Generator, logger *logrus.Logger) *InMemoryProductRepository {
	return &InMemoryProductRepository{
		ids: ids,
		log: logger,
	}
}

// Init replaces the collection with seed, assigning fresh ids in order.
func (r *InMemoryProductRepository) Init(seed []domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := InventoryState{}
	for _, p := range seed {
		p.ID = r.ids.NewID()
		next, err := Reduce(state, AddProductAction(p))
		if err != nil {
			r.log.Errorf("Repository: Failed to seed product '%s': %v", p.Name, err)
			return fmt.Errorf("could not seed products: %w", err)
		}
		state = next
	}
	r.state = state
	r.log.Infof("Repository: Store initialised with %d products", len(seed))
	return nil
}

func (r *InMemoryProductRepository) dispatch(action Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := Reduce(r.state, action)
	if err != nil {
		return err
	}
	r.state = next
	return nil
}

func (r *InMemoryProductRepository) AddProduct(product domain.Product) (*domain.Product, error) {
	product.ID = r.ids.NewID()
	if err := r.dispatch(AddProductAction(product)); err != nil {
		r.log.Errorf("Repository: Failed to add product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not add product: %w", err)
	}
	r.log.Infof("Repository: Product added with ID: %s, Name: %s", product.ID, product.Name)
	created := product.Clone()
	return &created, nil
}

func (r *InMemoryProductRepository) GetProductByID(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.state.indexOf(id)
	if i < 0 {
		r.log.Warnf("Repository: Product with ID %s not found", id)
		return nil, fmt.Errorf("%w: id %s", domain.ErrProductNotFound, id)
	}
	p := r.state.Products[i].Clone()
	return &p, nil
}

func (r *InMemoryProductRepository) UpdateProduct(product domain.Product) (*domain.Product, error) {
	if err := r.dispatch(UpdateProductAction(product)); err != nil {
		r.log.Warnf("Repository: Failed to update product ID %s: %v", product.ID, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	r.log.Infof("Repository: Product ID %s replaced", product.ID)
	updated := product.Clone()
	return &updated, nil
}

func (r *InMemoryProductRepository) DeleteProduct(id string) error {
	if err := r.dispatch(DeleteProductAction(id)); err != nil {
		r.log.Warnf("Repository: Failed to delete product ID %s: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	r.log.Infof("Repository: Product deleted with ID: %s", id)
	return nil
}

func (r *InMemoryProductRepository) ListProducts() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, 0, len(r.state.Products))
	for _, p := range r.state.Products {
		products = append(products, p.Clone())
	}
	r.log.Debugf("Repository: Listed %d products", len(products))
	return products, nil
}
