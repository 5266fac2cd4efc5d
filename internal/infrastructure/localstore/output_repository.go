package localstore

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/normalize"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

var _ repository.OutputRepository = (*OutputRepo)(nil)

// OutputRepo adaptador del historial legado de salidas. Existe solo por
// compatibilidad con datos escritos antes del historial unificado; cada
// salida nueva se sigue escribiendo aquí además del log de movimientos.
type OutputRepo struct {
	store   repository.Store
	outputs []entity.Output
}

// NewOutputRepository construye el adaptador y carga el historial.
func NewOutputRepository(store repository.Store) (*OutputRepo, error) {
	r := &OutputRepo{store: store}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *OutputRepo) load() error {
	raw, found, err := r.store.Get(outputsKey)
	if err != nil {
		return fmt.Errorf("cargar salidas: %w", err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal(raw, &r.outputs); err != nil {
		return fmt.Errorf("decodificar salidas: %w", err)
	}

	// Migración única a MAYÚSCULAS de los datos ya persistidos.
	changed := false
	for i := range r.outputs {
		o := &r.outputs[i]
		if n := normalize.Canonical(o.ProductName); n != o.ProductName {
			o.ProductName = n
			changed = true
		}
		if d := normalize.Canonical(o.Destination); d != o.Destination {
			o.Destination = d
			changed = true
		}
		if rn := normalize.Canonical(o.ResponsibleName); rn != o.ResponsibleName {
			o.ResponsibleName = rn
			changed = true
		}
	}
	if changed {
		return r.persist()
	}
	return nil
}

func (r *OutputRepo) persist() error {
	list := r.outputs
	if list == nil {
		list = []entity.Output{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("codificar salidas: %w", err)
	}
	if err := r.store.Put(outputsKey, raw); err != nil {
		return fmt.Errorf("guardar salidas: %w", err)
	}
	return nil
}

// List devuelve una copia del historial, más reciente primero.
func (r *OutputRepo) List() []entity.Output {
	out := make([]entity.Output, len(r.outputs))
	copy(out, r.outputs)
	return out
}

// Prepend inserta la salida al inicio del historial y persiste.
func (r *OutputRepo) Prepend(output entity.Output) error {
	r.outputs = append([]entity.Output{output}, r.outputs...)
	if err := r.persist(); err != nil {
		r.outputs = r.outputs[1:]
		return err
	}
	return nil
}
