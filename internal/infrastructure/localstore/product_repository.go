package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/normalize"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador de repository.ProductRepository sobre el almacén
// local. Carga la colección una sola vez al construirse, aplica la
// migración a forma canónica y reescribe en cada mutación.
type ProductRepo struct {
	store    repository.Store
	products []entity.Product
}

// NewProductRepository construye el adaptador y carga la colección.
// Si los datos persistidos traen campos fuera de forma canónica (registros
// de versiones anteriores), se normalizan y se reescriben de inmediato; la
// migración es idempotente.
func NewProductRepository(store repository.Store) (*ProductRepo, error) {
	r := &ProductRepo{store: store}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProductRepo) load() error {
	raw, found, err := r.store.Get(productsKey)
	if err != nil {
		return fmt.Errorf("cargar productos: %w", err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(raw, &r.products); err != nil {
		return fmt.Errorf("decodificar productos: %w", err)
	}

	// Migración única a MAYÚSCULAS de los datos ya persistidos.
	changed := false
	for i := range r.products {
		p := &r.products[i]
		if n := normalize.Canonical(p.Name); n != p.Name {
			p.Name = n
			changed = true
		}
		if d := normalize.Canonical(p.Description); d != p.Description {
			p.Description = d
			changed = true
		}
		if rn := normalize.Canonical(p.ResponsibleName); rn != p.ResponsibleName {
			p.ResponsibleName = rn
			changed = true
		}
	}
	if changed {
		return r.persist()
	}
	return nil
}

func (r *ProductRepo) persist() error {
	list := r.products
	if list == nil {
		list = []entity.Product{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("codificar productos: %w", err)
	}
	if err := r.store.Put(productsKey, raw); err != nil {
		return fmt.Errorf("guardar productos: %w", err)
	}
	return nil
}

// List devuelve una copia de todos los productos en orden de inserción.
func (r *ProductRepo) List() []entity.Product {
	out := make([]entity.Product, len(r.products))
	copy(out, r.products)
	return out
}

// GetByID devuelve una copia del producto o nil si no existe.
func (r *ProductRepo) GetByID(id string) *entity.Product {
	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p
		}
	}
	return nil
}

// FindByName busca por igualdad trim+minúsculas, robusta frente a
// mayúsculas mezcladas y espacios accidentales.
func (r *ProductRepo) FindByName(name string) *entity.Product {
	for i := range r.products {
		if normalize.Equal(r.products[i].Name, name) {
			p := r.products[i]
			return &p
		}
	}
	return nil
}

// Create agrega el producto y persiste. Si la escritura falla, el estado
// en memoria se revierte para no divergir del almacén.
func (r *ProductRepo) Create(product entity.Product) error {
	r.products = append(r.products, product)
	if err := r.persist(); err != nil {
		r.products = r.products[:len(r.products)-1]
		return err
	}
	return nil
}

// Update reemplaza el producto con el mismo ID y persiste.
func (r *ProductRepo) Update(product entity.Product) error {
	for i := range r.products {
		if r.products[i].ID == product.ID {
			previous := r.products[i]
			r.products[i] = product
			if err := r.persist(); err != nil {
				r.products[i] = previous
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el producto de forma física y persiste.
func (r *ProductRepo) Delete(id string) error {
	for i := range r.products {
		if r.products[i].ID == id {
			removed := r.products[i]
			r.products = append(r.products[:i], r.products[i+1:]...)
			if err := r.persist(); err != nil {
				r.products = append(r.products[:i], append([]entity.Product{removed}, r.products[i:]...)...)
				return err
			}
			return nil
		}
	}
	return domain.ErrNotFound
}
