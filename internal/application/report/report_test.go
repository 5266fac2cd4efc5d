package report_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/application/report"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/localstore"
)

// generatorMock captura los datos que el caso de uso arma para el render.
type generatorMock struct {
	captured report.Data
	raw      []byte
	err      error
}

func (g *generatorMock) GenerateStockReport(_ context.Context, data report.Data) ([]byte, error) {
	g.captured = data
	return g.raw, g.err
}

func newInventory(t *testing.T) *inventory.UseCase {
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
		inventory.DefaultPolicy(),
	)
}

func TestStockReport_ArmaLosDatos(t *testing.T) {
	inv := newInventory(t)
	_, err := inv.RegisterProduct(inventory.RegisterProductInput{
		Name: "papel a4", Unit: entity.UnitPacote, Quantity: 10, ResponsibleName: "Ana",
	})
	require.NoError(t, err)

	gen := &generatorMock{raw: []byte("%PDF")}
	uc := report.NewStockReportUseCase(inv, gen)

	raw, err := uc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), raw)

	assert.False(t, gen.captured.GeneratedAt.IsZero())
	assert.Equal(t, 1, gen.captured.Summary.TotalProducts)
	require.Len(t, gen.captured.Products, 1)
	assert.Equal(t, "PAPEL A4", gen.captured.Products[0].Name)
	require.Len(t, gen.captured.Movements, 1)
	assert.Equal(t, entity.MovementTypeEntrada, gen.captured.Movements[0].Type)
}

func TestStockReport_AcotaLosMovimientos(t *testing.T) {
	inv := newInventory(t)
	for i := 0; i < 25; i++ {
		_, err := inv.RegisterProduct(inventory.RegisterProductInput{
			Name: fmt.Sprintf("producto %d", i), Unit: entity.UnitUnidade, Quantity: 1, ResponsibleName: "Ana",
		})
		require.NoError(t, err)
	}

	gen := &generatorMock{raw: []byte("%PDF")}
	uc := report.NewStockReportUseCase(inv, gen)

	_, err := uc.Generate(context.Background())
	require.NoError(t, err)
	assert.Len(t, gen.captured.Movements, 20)
	assert.Len(t, gen.captured.Products, 25)
}

func TestStockReport_PropagaFalloDelGenerador(t *testing.T) {
	gen := &generatorMock{err: assert.AnError}
	uc := report.NewStockReportUseCase(newInventory(t), gen)

	_, err := uc.Generate(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
