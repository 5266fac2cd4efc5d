package repository

import "github.com/jhoicas/almoxarifado/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven copias, nunca referencias al estado interno.
type ProductRepository interface {
	// List devuelve todos los productos en orden de inserción.
	List() []entity.Product
	// GetByID devuelve el producto o nil si no existe.
	GetByID(id string) *entity.Product
	// FindByName busca por igualdad de nombre ignorando mayúsculas y
	// espacios alrededor. Devuelve nil si no hay coincidencia.
	FindByName(name string) *entity.Product
	// Create agrega un producto nuevo y persiste la colección.
	Create(product entity.Product) error
	// Update reemplaza el producto con el mismo ID y persiste.
	Update(product entity.Product) error
	// Delete elimina el producto de forma física y persiste.
	// Devuelve domain.ErrNotFound si el ID no existe.
	Delete(id string) error
}
