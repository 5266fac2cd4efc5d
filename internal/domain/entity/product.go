package entity

import "time"

// Unidades de medida aceptadas (conjunto cerrado, etiquetas del almoxarifado).
const (
	UnitUnidade = "Unidade"
	UnitPacote  = "Pacote"
	UnitMetro   = "Metro"
)

// Units devuelve las unidades de medida válidas en orden de presentación.
func Units() []string {
	return []string{UnitUnidade, UnitPacote, UnitMetro}
}

// IsValidUnit indica si la unidad pertenece al conjunto cerrado.
func IsValidUnit(unit string) bool {
	switch unit {
	case UnitUnidade, UnitPacote, UnitMetro:
		return true
	}
	return false
}

// Product representa un producto del almoxarifado.
// Name, Description y ResponsibleName se guardan en forma canónica
// (MAYÚSCULAS, sin espacios alrededor); Quantity nunca es negativa.
type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Unit            string    `json:"unit"`
	Quantity        int       `json:"quantity"`
	ResponsibleName string    `json:"responsibleName"`
	CreatedAt       time.Time `json:"createdAt"`
}
