package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/domain/normalize"
)

// Policy decisiones de política configurables del almoxarifado.
type Policy struct {
	LogZeroAdjustment bool // registrar ajustes que no cambian la cantidad
	LowStockThreshold int  // cantidad máxima para contar como stock bajo
}

// DefaultPolicy valores históricos de la aplicación.
func DefaultPolicy() Policy {
	return Policy{LogZeroAdjustment: true, LowStockThreshold: 5}
}

// UseCase orquesta los flujos del almoxarifado: registrar producto,
// registrar salida, ajuste administrativo y eliminación. Cada flujo valida
// todo antes de mutar nada, y escribe el historial solo después de que la
// mutación del ledger tuvo éxito, reflejando el estado real resultante.
type UseCase struct {
	ledger    *ProductLedger
	movements *MovementLog
	outputs   *OutputLog
	policy    Policy
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledger *ProductLedger, movements *MovementLog, outputs *OutputLog, policy Policy) *UseCase {
	return &UseCase{ledger: ledger, movements: movements, outputs: outputs, policy: policy}
}

// RegisterProductInput entrada del flujo de registro.
type RegisterProductInput struct {
	Name            string
	Description     string
	Unit            string
	Quantity        int
	ResponsibleName string
}

// RegisterProduct valida, registra (o fusiona por nombre) y escribe la
// entrada "entrada" en el historial con el estado real posterior: en una
// fusión NewQuantity es el total real del producto, no solo lo agregado.
func (uc *UseCase) RegisterProduct(in RegisterProductInput) (MergeResult, error) {
	if strings.TrimSpace(in.Name) == "" {
		return MergeResult{}, fmt.Errorf("el nombre del producto es obligatorio: %w", domain.ErrInvalidInput)
	}
	if !entity.IsValidUnit(in.Unit) {
		return MergeResult{}, domain.ErrInvalidUnit
	}
	if strings.TrimSpace(in.ResponsibleName) == "" {
		return MergeResult{}, fmt.Errorf("el nombre del responsable es obligatorio: %w", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return MergeResult{}, domain.ErrNegativeQuantity
	}

	// El formulario original capitalizaba el responsable; el ledger lo
	// lleva a la forma canónica de todos modos.
	responsible := normalize.Title(in.ResponsibleName)

	result, err := uc.ledger.AddOrMerge(in.Name, in.Description, in.Unit, in.Quantity, responsible)
	if err != nil {
		return MergeResult{}, err
	}

	previous := 0
	if !result.IsNew {
		previous = result.Product.Quantity - result.AddedQuantity
	}
	_, err = uc.movements.Append(entity.StockMovement{
		Type:             entity.MovementTypeEntrada,
		ProductID:        result.Product.ID,
		ProductName:      result.Product.Name,
		PreviousQuantity: previous,
		NewQuantity:      result.Product.Quantity,
		Difference:       result.AddedQuantity,
		ResponsibleName:  normalize.Canonical(responsible),
		Date:             time.Now(),
	})
	if err != nil {
		return MergeResult{}, err
	}
	return result, nil
}

// RegisterOutputInput entrada del flujo de salida. Date puede ser
// retroactiva; el valor cero significa "ahora".
type RegisterOutputInput struct {
	ProductID       string
	Quantity        int
	Destination     string
	ResponsibleName string
	Date            time.Time
}

// OutputResult estado posterior a una salida registrada.
type OutputResult struct {
	Product  entity.Product
	Output   entity.Output
	Movement entity.StockMovement
}

// RegisterOutput verifica disponibilidad, escribe el registro legado y la
// entrada "saida" del historial, y después descuenta la cantidad. Un pedido
// mayor al stock actual falla sin escribir nada.
func (uc *UseCase) RegisterOutput(in RegisterOutputInput) (OutputResult, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return OutputResult{}, fmt.Errorf("seleccione un producto: %w", domain.ErrInvalidInput)
	}
	if in.Quantity <= 0 {
		return OutputResult{}, fmt.Errorf("la cantidad de salida debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Destination) == "" {
		return OutputResult{}, fmt.Errorf("el destino es obligatorio: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.ResponsibleName) == "" {
		return OutputResult{}, fmt.Errorf("el nombre del responsable es obligatorio: %w", domain.ErrInvalidInput)
	}

	product := uc.ledger.Get(in.ProductID)
	if product == nil {
		return OutputResult{}, domain.ErrNotFound
	}
	if in.Quantity > product.Quantity {
		return OutputResult{}, domain.ErrInsufficientStock
	}

	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	destination := normalize.Canonical(in.Destination)
	responsible := normalize.Canonical(in.ResponsibleName)

	output, err := uc.outputs.Append(entity.Output{
		ProductID:       product.ID,
		ProductName:     product.Name,
		Quantity:        in.Quantity,
		Destination:     destination,
		ResponsibleName: responsible,
		Date:            date,
	})
	if err != nil {
		return OutputResult{}, err
	}
	movement, err := uc.movements.Append(entity.StockMovement{
		Type:             entity.MovementTypeSaida,
		ProductID:        product.ID,
		ProductName:      product.Name,
		PreviousQuantity: product.Quantity,
		NewQuantity:      product.Quantity - in.Quantity,
		Difference:       -in.Quantity,
		Destination:      destination,
		ResponsibleName:  responsible,
		Date:             date,
	})
	if err != nil {
		return OutputResult{}, err
	}
	if err := uc.ledger.AdjustQuantityBy(product.ID, -in.Quantity); err != nil {
		return OutputResult{}, err
	}

	after := *product
	after.Quantity -= in.Quantity
	return OutputResult{Product: after, Output: output, Movement: movement}, nil
}

// AdjustQuantityInput entrada del ajuste administrativo.
type AdjustQuantityInput struct {
	ProductID       string
	NewQuantity     int
	ResponsibleName string
}

// AdjustResult transición de cantidad aplicada por un ajuste.
type AdjustResult struct {
	PreviousQuantity int
	NewQuantity      int
	Difference       int
	Logged           bool // false solo para ajustes sin cambio con la política apagada
}

// AdjustQuantity fija la cantidad en un valor exacto y, si el ajuste tuvo
// éxito, escribe la entrada "ajuste". Un ajuste sin cambio de cantidad se
// registra igual salvo que la política lo suprima.
func (uc *UseCase) AdjustQuantity(in AdjustQuantityInput) (AdjustResult, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return AdjustResult{}, fmt.Errorf("seleccione un producto: %w", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.ResponsibleName) == "" {
		return AdjustResult{}, fmt.Errorf("el nombre del responsable es obligatorio: %w", domain.ErrInvalidInput)
	}
	if in.NewQuantity < 0 {
		return AdjustResult{}, domain.ErrNegativeQuantity
	}

	product := uc.ledger.Get(in.ProductID)
	if product == nil {
		return AdjustResult{}, domain.ErrNotFound
	}

	previous, err := uc.ledger.SetQuantity(in.ProductID, in.NewQuantity)
	if err != nil {
		return AdjustResult{}, err
	}

	result := AdjustResult{
		PreviousQuantity: previous,
		NewQuantity:      in.NewQuantity,
		Difference:       in.NewQuantity - previous,
	}
	if result.Difference == 0 && !uc.policy.LogZeroAdjustment {
		return result, nil
	}
	_, err = uc.movements.Append(entity.StockMovement{
		Type:             entity.MovementTypeAjuste,
		ProductID:        product.ID,
		ProductName:      product.Name,
		PreviousQuantity: previous,
		NewQuantity:      in.NewQuantity,
		Difference:       result.Difference,
		ResponsibleName:  normalize.Canonical(in.ResponsibleName),
		Date:             time.Now(),
	})
	if err != nil {
		return AdjustResult{}, err
	}
	result.Logged = true
	return result, nil
}

// DeleteProductInput entrada del flujo de eliminación.
type DeleteProductInput struct {
	ProductID       string
	ResponsibleName string
}

// DeleteProduct elimina el producto y deja la entrada "exclusao" como único
// rastro: el nombre sobrevive en ProductName y la cantidad queda en cero.
func (uc *UseCase) DeleteProduct(in DeleteProductInput) (entity.Product, error) {
	if strings.TrimSpace(in.ResponsibleName) == "" {
		return entity.Product{}, fmt.Errorf("el nombre del responsable es obligatorio: %w", domain.ErrInvalidInput)
	}

	deleted, err := uc.ledger.Delete(in.ProductID)
	if err != nil {
		return entity.Product{}, err
	}
	_, err = uc.movements.Append(entity.StockMovement{
		Type:             entity.MovementTypeExclusao,
		ProductID:        deleted.ID,
		ProductName:      deleted.Name,
		PreviousQuantity: deleted.Quantity,
		NewQuantity:      0,
		Difference:       -deleted.Quantity,
		ResponsibleName:  normalize.Canonical(in.ResponsibleName),
		Date:             time.Now(),
	})
	if err != nil {
		return entity.Product{}, err
	}
	return deleted, nil
}

// Products devuelve la instantánea actual del ledger.
func (uc *UseCase) Products() []entity.Product { return uc.ledger.List() }

// FindProductByName busca un producto ignorando mayúsculas y espacios.
func (uc *UseCase) FindProductByName(name string) *entity.Product {
	return uc.ledger.FindByName(name)
}

// Movements devuelve el historial unificado, más reciente primero.
func (uc *UseCase) Movements() []entity.StockMovement { return uc.movements.All() }

// MovementsByType filtra el historial por tipo.
func (uc *UseCase) MovementsByType(movementType string) []entity.StockMovement {
	return uc.movements.ByType(movementType)
}

// MovementsByProduct filtra el historial por producto.
func (uc *UseCase) MovementsByProduct(productID string) []entity.StockMovement {
	return uc.movements.ByProduct(productID)
}

// Outputs devuelve el historial legado de salidas.
func (uc *UseCase) Outputs() []entity.Output { return uc.outputs.All() }
