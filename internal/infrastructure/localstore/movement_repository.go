package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/normalize"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo adaptador del historial unificado de movimientos sobre el
// almacén local. La colección se guarda del más reciente al más antiguo y
// nunca se modifica una entrada ya escrita.
type MovementRepo struct {
	store     repository.Store
	movements []entity.StockMovement
}

// NewMovementRepository construye el adaptador, carga el historial y aplica
// la migración a forma canónica de los campos de texto.
func NewMovementRepository(store repository.Store) (*MovementRepo, error) {
	r := &MovementRepo{store: store}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MovementRepo) load() error {
	raw, found, err := r.store.Get(movementsKey)
	if err != nil {
		return fmt.Errorf("cargar movimientos: %w", err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(raw, &r.movements); err != nil {
		return fmt.Errorf("decodificar movimientos: %w", err)
	}

	// Migración única a MAYÚSCULAS. Solo toca la forma del texto; las
	// cantidades históricas jamás se recalculan.
	changed := false
	for i := range r.movements {
		m := &r.movements[i]
		if n := normalize.Canonical(m.ProductName); n != m.ProductName {
			m.ProductName = n
			changed = true
		}
		if rn := normalize.Canonical(m.ResponsibleName); rn != m.ResponsibleName {
			m.ResponsibleName = rn
			changed = true
		}
		if d := normalize.Canonical(m.Destination); d != m.Destination {
			m.Destination = d
			changed = true
		}
	}
	if changed {
		return r.persist()
	}
	return nil
}

func (r *MovementRepo) persist() error {
	list := r.movements
	if list == nil {
		list = []entity.StockMovement{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("codificar movimientos: %w", err)
	}
	if err := r.store.Put(movementsKey, raw); err != nil {
		return fmt.Errorf("guardar movimientos: %w", err)
	}
	return nil
}

// List devuelve una copia del historial, más reciente primero.
func (r *MovementRepo) List() []entity.StockMovement {
	out := make([]entity.StockMovement, len(r.movements))
	copy(out, r.movements)
	return out
}

// Prepend inserta el movimiento al inicio del historial y persiste.
func (r *MovementRepo) Prepend(movement entity.StockMovement) error {
	r.movements = append([]entity.StockMovement{movement}, r.movements...)
	if err := r.persist(); err != nil {
		r.movements = r.movements[1:]
		return err
	}
	return nil
}
