package repository

import "github.com/jhoicas/almoxarifado/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el historial
// unificado de movimientos. La colección es append-only y se guarda del
// más reciente al más antiguo.
type MovementRepository interface {
	// List devuelve el historial completo, más reciente primero.
	List() []entity.StockMovement
	// Prepend inserta el movimiento al inicio del historial y persiste.
	Prepend(movement entity.StockMovement) error
}
