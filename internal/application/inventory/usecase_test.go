package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/localstore"
)

func newTestUseCase(t *testing.T, policy inventory.Policy) *inventory.UseCase {
	t.Helper()
	store := localstore.NewMemStore()
	productRepo, err := localstore.NewProductRepository(store)
	require.NoError(t, err)
	movementRepo, err := localstore.NewMovementRepository(store)
	require.NoError(t, err)
	outputRepo, err := localstore.NewOutputRepository(store)
	require.NoError(t, err)
	return inventory.NewUseCase(
		inventory.NewProductLedger(productRepo),
		inventory.NewMovementLog(movementRepo),
		inventory.NewOutputLog(outputRepo),
		policy,
	)
}

func registerSample(t *testing.T, uc *inventory.UseCase, name string, quantity int, responsible string) inventory.MergeResult {
	t.Helper()
	result, err := uc.RegisterProduct(inventory.RegisterProductInput{
		Name:            name,
		Unit:            entity.UnitUnidade,
		Quantity:        quantity,
		ResponsibleName: responsible,
	})
	require.NoError(t, err)
	return result
}

// Escenario de punta a punta: registrar "paper a4" (10, Ana) y luego
// " PAPER A4 " (5, Bob) deja un solo producto con 15 y dos entradas en el
// historial; la segunda refleja la transición real 10 → 15.
func TestRegisterProduct_FusionPorNombre(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())

	first := registerSample(t, uc, "paper a4", 10, "Ana")
	assert.True(t, first.IsNew)
	assert.Equal(t, 10, first.Product.Quantity)

	second := registerSample(t, uc, " PAPER A4 ", 5, "Bob")
	assert.False(t, second.IsNew)
	assert.Equal(t, first.Product.ID, second.Product.ID)

	products := uc.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "PAPER A4", products[0].Name)
	assert.Equal(t, 15, products[0].Quantity)

	movements := uc.MovementsByType(entity.MovementTypeEntrada)
	require.Len(t, movements, 2)
	// Más reciente primero: la fusión de Bob encabeza el historial
	merge := movements[0]
	assert.Equal(t, 10, merge.PreviousQuantity)
	assert.Equal(t, 15, merge.NewQuantity)
	assert.Equal(t, 5, merge.Difference)
	assert.Equal(t, "BOB", merge.ResponsibleName)

	initial := movements[1]
	assert.Equal(t, 0, initial.PreviousQuantity)
	assert.Equal(t, 10, initial.NewQuantity)
	assert.Equal(t, 10, initial.Difference)
	assert.Equal(t, "ANA", initial.ResponsibleName)
}

func TestRegisterProduct_Validaciones(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())

	cases := []struct {
		name    string
		in      inventory.RegisterProductInput
		wantErr error
	}{
		{"nombre vacío", inventory.RegisterProductInput{Name: "  ", Unit: entity.UnitUnidade, Quantity: 1, ResponsibleName: "Ana"}, domain.ErrInvalidInput},
		{"unidad inválida", inventory.RegisterProductInput{Name: "papel", Unit: "Caja", Quantity: 1, ResponsibleName: "Ana"}, domain.ErrInvalidUnit},
		{"responsable vacío", inventory.RegisterProductInput{Name: "papel", Unit: entity.UnitUnidade, Quantity: 1, ResponsibleName: " "}, domain.ErrInvalidInput},
		{"cantidad negativa", inventory.RegisterProductInput{Name: "papel", Unit: entity.UnitUnidade, Quantity: -1, ResponsibleName: "Ana"}, domain.ErrNegativeQuantity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := uc.RegisterProduct(c.in)
			assert.ErrorIs(t, err, c.wantErr)
		})
	}

	// Ninguna validación fallida tocó el ledger ni el historial
	assert.Empty(t, uc.Products())
	assert.Empty(t, uc.Movements())
}

func TestRegisterOutput_DescuentaYEscribeAmbosLogs(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())
	product := registerSample(t, uc, "papel a4", 10, "Ana").Product

	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC) // salida retroactiva
	result, err := uc.RegisterOutput(inventory.RegisterOutputInput{
		ProductID:       product.ID,
		Quantity:        4,
		Destination:     "oficina 2",
		ResponsibleName: "Bob",
		Date:            date,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, result.Product.Quantity)
	assert.Equal(t, 6, uc.Products()[0].Quantity)

	// Entrada "saida" del historial unificado
	movement := result.Movement
	assert.Equal(t, entity.MovementTypeSaida, movement.Type)
	assert.Equal(t, 10, movement.PreviousQuantity)
	assert.Equal(t, 6, movement.NewQuantity)
	assert.Equal(t, -4, movement.Difference)
	assert.Equal(t, "OFICINA 2", movement.Destination)
	assert.True(t, date.Equal(movement.Date))
	assert.NotEmpty(t, movement.ID)

	// Registro legado, escrito en paralelo con los mismos datos
	outputs := uc.Outputs()
	require.Len(t, outputs, 1)
	assert.Equal(t, product.ID, outputs[0].ProductID)
	assert.Equal(t, 4, outputs[0].Quantity)
	assert.Equal(t, "OFICINA 2", outputs[0].Destination)
	assert.Equal(t, "BOB", outputs[0].ResponsibleName)
	assert.True(t, date.Equal(outputs[0].Date))
}

// Producto con 3 en stock, pedido de 5: falla con stock insuficiente y no
// queda rastro ni en el ledger ni en ninguno de los dos historiales.
func TestRegisterOutput_StockInsuficiente(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())
	product := registerSample(t, uc, "papel a4", 3, "Ana").Product
	movementsBefore := len(uc.Movements())

	_, err := uc.RegisterOutput(inventory.RegisterOutputInput{
		ProductID:       product.ID,
		Quantity:        5,
		Destination:     "oficina 2",
		ResponsibleName: "Bob",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 3, uc.Products()[0].Quantity)
	assert.Len(t, uc.Movements(), movementsBefore)
	assert.Empty(t, uc.Outputs())
}

func TestRegisterOutput_ProductoInexistente(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())

	_, err := uc.RegisterOutput(inventory.RegisterOutputInput{
		ProductID:       "desconocido",
		Quantity:        1,
		Destination:     "oficina",
		ResponsibleName: "Bob",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Ajuste administrativo de 20 a 0: la transición queda registrada exacta.
func TestAdjustQuantity_ACero(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())
	product := registerSample(t, uc, "papel a4", 20, "Ana").Product

	result, err := uc.AdjustQuantity(inventory.AdjustQuantityInput{
		ProductID:       product.ID,
		NewQuantity:     0,
		ResponsibleName: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, result.PreviousQuantity)
	assert.Equal(t, 0, result.NewQuantity)
	assert.Equal(t, -20, result.Difference)
	assert.True(t, result.Logged)

	movements := uc.MovementsByType(entity.MovementTypeAjuste)
	require.Len(t, movements, 1)
	assert.Equal(t, 20, movements[0].PreviousQuantity)
	assert.Equal(t, 0, movements[0].NewQuantity)
	assert.Equal(t, -20, movements[0].Difference)
	assert.Equal(t, 0, uc.Products()[0].Quantity)
}

func TestAdjustQuantity_NegativaNoDejaMovimiento(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())
	product := registerSample(t, uc, "papel a4", 20, "Ana").Product
	movementsBefore := len(uc.Movements())

	_, err := uc.AdjustQuantity(inventory.AdjustQuantityInput{
		ProductID:       product.ID,
		NewQuantity:     -1,
		ResponsibleName: "Ana",
	})
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assert.Equal(t, 20, uc.Products()[0].Quantity)
	assert.Len(t, uc.Movements(), movementsBefore)
}

func TestAdjustQuantity_SinCambio_PoliticaEncendida(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())
	product := registerSample(t, uc, "papel a4", 8, "Ana").Product

	result, err := uc.AdjustQuantity(inventory.AdjustQuantityInput{
		ProductID:       product.ID,
		NewQuantity:     8,
		ResponsibleName: "Ana",
	})
	require.NoError(t, err)
	assert.True(t, result.Logged)
	assert.Equal(t, 0, result.Difference)

	movements := uc.MovementsByType(entity.MovementTypeAjuste)
	require.Len(t, movements, 1)
	assert.Equal(t, 0, movements[0].Difference)
}

func TestAdjustQuantity_SinCambio_PoliticaApagada(t *testing.T) {
	policy := inventory.DefaultPolicy()
	policy.LogZeroAdjustment = false
	uc := newTestUseCase(t, policy)
	product := registerSample(t, uc, "papel a4", 8, "Ana").Product

	result, err := uc.AdjustQuantity(inventory.AdjustQuantityInput{
		ProductID:       product.ID,
		NewQuantity:     8,
		ResponsibleName: "Ana",
	})
	require.NoError(t, err)
	assert.False(t, result.Logged)
	assert.Empty(t, uc.MovementsByType(entity.MovementTypeAjuste))

	// Un ajuste con cambio se sigue registrando normalmente
	_, err = uc.AdjustQuantity(inventory.AdjustQuantityInput{
		ProductID:       product.ID,
		NewQuantity:     12,
		ResponsibleName: "Ana",
	})
	require.NoError(t, err)
	require.Len(t, uc.MovementsByType(entity.MovementTypeAjuste), 1)
}

// Eliminar deja la entrada "exclusao" como único rastro del producto.
func TestDeleteProduct_DejaRastroEnElHistorial(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())
	product := registerSample(t, uc, "papel a4", 7, "Ana").Product

	deleted, err := uc.DeleteProduct(inventory.DeleteProductInput{
		ProductID:       product.ID,
		ResponsibleName: "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAPEL A4", deleted.Name)

	assert.Empty(t, uc.Products())
	assert.Nil(t, uc.FindProductByName("papel a4"))

	movements := uc.MovementsByType(entity.MovementTypeExclusao)
	require.Len(t, movements, 1)
	assert.Equal(t, "PAPEL A4", movements[0].ProductName)
	assert.Equal(t, 7, movements[0].PreviousQuantity)
	assert.Equal(t, 0, movements[0].NewQuantity)
	assert.Equal(t, -7, movements[0].Difference)

	// Operar sobre el producto eliminado ya es NotFound
	_, err = uc.DeleteProduct(inventory.DeleteProductInput{ProductID: product.ID, ResponsibleName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovementsByProduct(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())
	a := registerSample(t, uc, "papel a4", 10, "Ana").Product
	b := registerSample(t, uc, "cuaderno", 5, "Ana").Product

	_, err := uc.RegisterOutput(inventory.RegisterOutputInput{
		ProductID: a.ID, Quantity: 2, Destination: "oficina", ResponsibleName: "Bob",
	})
	require.NoError(t, err)

	byA := uc.MovementsByProduct(a.ID)
	require.Len(t, byA, 2) // saida + entrada, más reciente primero
	assert.Equal(t, entity.MovementTypeSaida, byA[0].Type)
	assert.Equal(t, entity.MovementTypeEntrada, byA[1].Type)

	byB := uc.MovementsByProduct(b.ID)
	require.Len(t, byB, 1)
	assert.Equal(t, entity.MovementTypeEntrada, byB[0].Type)
}

func TestSummary(t *testing.T) {
	uc := newTestUseCase(t, inventory.DefaultPolicy())
	registerSample(t, uc, "papel a4", 10, "Ana")
	registerSample(t, uc, "cuaderno", 3, "Ana") // stock bajo (<= 5)
	registerSample(t, uc, "lapicera", 0, "Ana") // sin stock

	s := uc.Summary()
	assert.Equal(t, 3, s.TotalProducts)
	assert.Equal(t, 13, s.TotalItems)
	assert.Equal(t, 1, s.LowStock)
	assert.Equal(t, 1, s.OutOfStock)
}
