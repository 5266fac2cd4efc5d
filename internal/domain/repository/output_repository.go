package repository

import "github.com/jhoicas/almoxarifado/internal/domain/entity"

// OutputRepository define el puerto de persistencia para el historial
// legado de salidas (anterior al log unificado). Mismo orden que el
// historial de movimientos: más reciente primero.
type OutputRepository interface {
	List() []entity.Output
	Prepend(output entity.Output) error
}
