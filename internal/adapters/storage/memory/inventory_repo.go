package memory

import (
	"context"
	"sort"
	"sync"

	"vet-clinic-api/internal/domain/inventory"
)

type productRepo struct {
	mu     sync.RWMutex
	byID   map[int64]inventory.Product
	nextID int64
}

func NewProductRepo() inventory.Repository {
	return &productRepo{
		byID: make(map[int64]inventory.Product),
	}
}

func (r *productRepo) Create(ctx context.Context, p inventory.Product) (inventory.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (inventory.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return inventory.Product{}, inventory.ErrNotFound
	}
	return p, nil
}

func (r *productRepo) List(ctx context.Context) ([]inventory.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *productRepo) Update(ctx context.Context, p inventory.Product) (inventory.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return inventory.Product{}, inventory.ErrNotFound
	}
	r.byID[p.ID] = p
	return p, nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

func (r *productRepo) ListLowStock(ctx context.Context) ([]inventory.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Product, 0)
	for _, p := range r.byID {
		if p.Quantity <= p.ReorderLevel {
			out = append(out, p)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	return out, nil
}
