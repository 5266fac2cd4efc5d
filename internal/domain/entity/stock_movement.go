package entity

import "time"

// Tipos de movimiento de stock. Los valores son parte del contrato
// persistido (datos ya escritos por versiones anteriores los usan).
const (
	MovementTypeEntrada  = "entrada"  // registro / ingreso de stock
	MovementTypeSaida    = "saida"    // salida hacia un destino
	MovementTypeAjuste   = "ajuste"   // ajuste administrativo absoluto
	MovementTypeExclusao = "exclusao" // eliminación del producto
)

// StockMovement es una entrada del historial unificado de movimientos.
// El log es append-only: una vez escrita, la entrada nunca se modifica ni
// se elimina, aunque el producto referenciado deje de existir. ProductName
// es una copia desnormalizada justamente para sobrevivir a la eliminación.
//
// Invariante: Difference == NewQuantity - PreviousQuantity.
type StockMovement struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	ProductID        string    `json:"productId"`
	ProductName      string    `json:"productName"`
	PreviousQuantity int       `json:"previousQuantity"`
	NewQuantity      int       `json:"newQuantity"`
	Difference       int       `json:"difference"`
	Destination      string    `json:"destination,omitempty"` // solo para saida
	ResponsibleName  string    `json:"responsibleName"`
	Date             time.Time `json:"date"`      // fecha efectiva del negocio (puede ser retroactiva)
	CreatedAt        time.Time `json:"createdAt"` // cuándo se escribió el registro
}
