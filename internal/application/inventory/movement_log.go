package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

// MovementLog historial unificado de movimientos. Su única responsabilidad
// es registrar fielmente, en orden y de forma durable: la validación del
// negocio ocurre antes, en los flujos; un borrador bien formado nunca se
// rechaza aquí.
type MovementLog struct {
	repo repository.MovementRepository
}

// NewMovementLog construye el log.
func NewMovementLog(repo repository.MovementRepository) *MovementLog {
	return &MovementLog{repo: repo}
}

// Append asigna ID y CreatedAt, inserta al inicio del historial, persiste
// y devuelve el registro final.
func (g *MovementLog) Append(draft entity.StockMovement) (entity.StockMovement, error) {
	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now()
	if err := g.repo.Prepend(draft); err != nil {
		return entity.StockMovement{}, err
	}
	return draft, nil
}

// All devuelve el historial completo, más reciente primero.
func (g *MovementLog) All() []entity.StockMovement {
	return g.repo.List()
}

// ByType filtra por tipo de movimiento conservando el orden del historial.
func (g *MovementLog) ByType(movementType string) []entity.StockMovement {
	var out []entity.StockMovement
	for _, m := range g.repo.List() {
		if m.Type == movementType {
			out = append(out, m)
		}
	}
	return out
}

// ByProduct filtra por producto conservando el orden del historial.
func (g *MovementLog) ByProduct(productID string) []entity.StockMovement {
	var out []entity.StockMovement
	for _, m := range g.repo.List() {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}
