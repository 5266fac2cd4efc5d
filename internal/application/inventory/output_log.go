package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

// OutputLog historial legado de salidas. Anterior al historial unificado;
// se mantiene en paralelo para no romper los datos ya persistidos.
type OutputLog struct {
	repo repository.OutputRepository
}

// NewOutputLog construye el log.
func NewOutputLog(repo repository.OutputRepository) *OutputLog {
	return &OutputLog{repo: repo}
}

// Append asigna ID y CreatedAt, inserta al inicio y persiste.
func (g *OutputLog) Append(draft entity.Output) (entity.Output, error) {
	draft.ID = uuid.New().String()
	draft.CreatedAt = time.Now()
	if err := g.repo.Prepend(draft); err != nil {
		return entity.Output{}, err
	}
	return draft, nil
}

// All devuelve el historial completo, más reciente primero.
func (g *OutputLog) All() []entity.Output {
	return g.repo.List()
}
