// Package inventory contiene el núcleo del almoxarifado: el ledger de
// productos, los dos historiales (unificado y legado de salidas) y los
// flujos que los mantienen consistentes entre sí.
package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/normalize"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

// ProductLedger es la colección autoritativa de productos y sus cantidades.
// Deduplica por nombre (trim + minúsculas para comparar, MAYÚSCULAS para
// guardar) y es la última línea de defensa del invariante Quantity >= 0.
type ProductLedger struct {
	repo repository.ProductRepository
}

// NewProductLedger construye el ledger.
func NewProductLedger(repo repository.ProductRepository) *ProductLedger {
	return &ProductLedger{repo: repo}
}

// MergeResult resultado de AddOrMerge: el estado autoritativo posterior a
// la mutación más la información de si se creó un registro nuevo.
type MergeResult struct {
	Product       entity.Product
	IsNew         bool
	AddedQuantity int
}

// AddOrMerge registra stock para un nombre de producto. Si ya existe un
// producto con el mismo nombre normalizado, solo suma la cantidad al
// registro existente (descripción, unidad y responsable quedan intactos);
// si no, crea un registro nuevo con los campos en forma canónica.
func (l *ProductLedger) AddOrMerge(name, description, unit string, quantity int, responsibleName string) (MergeResult, error) {
	if quantity < 0 {
		return MergeResult{}, domain.ErrNegativeQuantity
	}

	formattedName := normalize.Canonical(name)
	if existing := l.repo.FindByName(formattedName); existing != nil {
		merged := *existing
		merged.Quantity += quantity
		if err := l.repo.Update(merged); err != nil {
			return MergeResult{}, err
		}
		return MergeResult{Product: merged, IsNew: false, AddedQuantity: quantity}, nil
	}

	product := entity.Product{
		ID:              uuid.New().String(),
		Name:            formattedName,
		Description:     normalize.Canonical(description),
		Unit:            unit,
		Quantity:        quantity,
		ResponsibleName: normalize.Canonical(responsibleName),
		CreatedAt:       time.Now(),
	}
	if err := l.repo.Create(product); err != nil {
		return MergeResult{}, err
	}
	return MergeResult{Product: product, IsNew: true, AddedQuantity: quantity}, nil
}

// AdjustQuantityBy aplica un cambio relativo (positivo o negativo) a la
// cantidad. No valida que el resultado sea no negativo: los flujos de
// salida verifican disponibilidad antes de llamar, porque esta primitiva
// sirve tanto para entradas como para salidas.
func (l *ProductLedger) AdjustQuantityBy(productID string, delta int) error {
	product := l.repo.GetByID(productID)
	if product == nil {
		return domain.ErrNotFound
	}
	updated := *product
	updated.Quantity += delta
	return l.repo.Update(updated)
}

// SetQuantity fija la cantidad en un valor exacto y devuelve la cantidad
// anterior para que el caller calcule la diferencia del historial.
// Rechaza valores negativos; nunca los recorta a cero.
func (l *ProductLedger) SetQuantity(productID string, newQuantity int) (previousQuantity int, err error) {
	if newQuantity < 0 {
		return 0, domain.ErrNegativeQuantity
	}
	product := l.repo.GetByID(productID)
	if product == nil {
		return 0, domain.ErrNotFound
	}
	previousQuantity = product.Quantity
	updated := *product
	updated.Quantity = newQuantity
	if err := l.repo.Update(updated); err != nil {
		return 0, err
	}
	return previousQuantity, nil
}

// Delete elimina el producto de forma física y devuelve la instantánea
// previa a la eliminación para que el caller la registre en el historial.
func (l *ProductLedger) Delete(productID string) (entity.Product, error) {
	product := l.repo.GetByID(productID)
	if product == nil {
		return entity.Product{}, domain.ErrNotFound
	}
	snapshot := *product
	if err := l.repo.Delete(productID); err != nil {
		return entity.Product{}, err
	}
	return snapshot, nil
}

// Get devuelve el producto por ID o nil si no existe.
func (l *ProductLedger) Get(productID string) *entity.Product {
	return l.repo.GetByID(productID)
}

// FindByName busca por nombre ignorando mayúsculas y espacios alrededor.
func (l *ProductLedger) FindByName(name string) *entity.Product {
	return l.repo.FindByName(name)
}

// List devuelve todos los productos en orden de inserción.
func (l *ProductLedger) List() []entity.Product {
	return l.repo.List()
}
