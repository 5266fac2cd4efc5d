package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
	"github.com/jhoicas/almoxarifado/internal/infrastructure/localstore"
)

func newTestLedger(t *testing.T) *inventory.ProductLedger {
	t.Helper()
	repo, err := localstore.NewProductRepository(localstore.NewMemStore())
	require.NoError(t, err)
	return inventory.NewProductLedger(repo)
}

func TestLedger_AddOrMerge_ProductoNuevo(t *testing.T) {
	ledger := newTestLedger(t)

	result, err := ledger.AddOrMerge(" papel a4 ", "resma blanca", entity.UnitPacote, 10, "Ana")
	require.NoError(t, err)

	assert.True(t, result.IsNew)
	assert.Equal(t, 10, result.AddedQuantity)
	assert.NotEmpty(t, result.Product.ID)
	assert.False(t, result.Product.CreatedAt.IsZero())
	// Todos los campos de texto quedan en forma canónica
	assert.Equal(t, "PAPEL A4", result.Product.Name)
	assert.Equal(t, "RESMA BLANCA", result.Product.Description)
	assert.Equal(t, "ANA", result.Product.ResponsibleName)
	assert.Equal(t, 10, result.Product.Quantity)
}

func TestLedger_AddOrMerge_FusionaPorNombre(t *testing.T) {
	ledger := newTestLedger(t)

	first, err := ledger.AddOrMerge("papel a4", "resma blanca", entity.UnitPacote, 10, "Ana")
	require.NoError(t, err)

	second, err := ledger.AddOrMerge("  PAPEL A4  ", "otra descripción", entity.UnitMetro, 5, "Bob")
	require.NoError(t, err)

	assert.False(t, second.IsNew)
	assert.Equal(t, 5, second.AddedQuantity)
	assert.Equal(t, first.Product.ID, second.Product.ID)
	assert.Equal(t, 15, second.Product.Quantity)
	// La fusión solo toca la cantidad: descripción, unidad y responsable
	// del registro original quedan intactos
	assert.Equal(t, "RESMA BLANCA", second.Product.Description)
	assert.Equal(t, entity.UnitPacote, second.Product.Unit)
	assert.Equal(t, "ANA", second.Product.ResponsibleName)

	require.Len(t, ledger.List(), 1)
}

func TestLedger_AddOrMerge_SecuenciaDeVariantes(t *testing.T) {
	ledger := newTestLedger(t)

	for _, variant := range []string{"Paper A4", " paper a4 ", "PAPER A4"} {
		_, err := ledger.AddOrMerge(variant, "", entity.UnitUnidade, 2, "Ana")
		require.NoError(t, err)
	}

	list := ledger.List()
	require.Len(t, list, 1)
	assert.Equal(t, "PAPER A4", list[0].Name)
	assert.Equal(t, 6, list[0].Quantity)
}

func TestLedger_AddOrMerge_RechazaCantidadNegativa(t *testing.T) {
	ledger := newTestLedger(t)

	_, err := ledger.AddOrMerge("papel a4", "", entity.UnitUnidade, -1, "Ana")
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assert.Empty(t, ledger.List())
}

func TestLedger_SetQuantity(t *testing.T) {
	ledger := newTestLedger(t)
	result, err := ledger.AddOrMerge("papel a4", "", entity.UnitUnidade, 20, "Ana")
	require.NoError(t, err)

	previous, err := ledger.SetQuantity(result.Product.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 20, previous)
	assert.Equal(t, 0, ledger.Get(result.Product.ID).Quantity)

	// Negativa: se rechaza, nunca se recorta a cero
	_, err = ledger.SetQuantity(result.Product.ID, -3)
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assert.Equal(t, 0, ledger.Get(result.Product.ID).Quantity)

	_, err = ledger.SetQuantity("desconocido", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_AdjustQuantityBy(t *testing.T) {
	ledger := newTestLedger(t)
	result, err := ledger.AddOrMerge("papel a4", "", entity.UnitUnidade, 10, "Ana")
	require.NoError(t, err)

	require.NoError(t, ledger.AdjustQuantityBy(result.Product.ID, -4))
	assert.Equal(t, 6, ledger.Get(result.Product.ID).Quantity)

	require.NoError(t, ledger.AdjustQuantityBy(result.Product.ID, 3))
	assert.Equal(t, 9, ledger.Get(result.Product.ID).Quantity)

	assert.ErrorIs(t, ledger.AdjustQuantityBy("desconocido", 1), domain.ErrNotFound)
}

func TestLedger_Delete(t *testing.T) {
	ledger := newTestLedger(t)
	result, err := ledger.AddOrMerge("papel a4", "", entity.UnitUnidade, 7, "Ana")
	require.NoError(t, err)

	deleted, err := ledger.Delete(result.Product.ID)
	require.NoError(t, err)
	// La instantánea previa a la eliminación conserva nombre y cantidad
	assert.Equal(t, "PAPEL A4", deleted.Name)
	assert.Equal(t, 7, deleted.Quantity)

	assert.Nil(t, ledger.Get(result.Product.ID))
	_, err = ledger.Delete(result.Product.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
