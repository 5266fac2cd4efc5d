// Package cli es la capa de presentación del almoxarifado: un árbol de
// comandos Cobra que traduce flags a los flujos de inventario y errores de
// dominio a mensajes discretos para el usuario.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/application/report"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/pkg/logger"
)

// Deps dependencias construidas en main e inyectadas al árbol de comandos.
type Deps struct {
	Inventory *inventory.UseCase
	Report    *report.StockReportUseCase
	Log       *logger.Logger
}

// New arma el comando raíz con todos los subcomandos.
func New(deps Deps) *cobra.Command {
	root := &cobra.Command{
		Use:           "almoxarifado",
		Short:         "Control de stock de un almoxarifado (almacén interno)",
		Long:          "Registra productos, salidas, ajustes administrativos y consulta el historial de movimientos. Todo el estado vive en archivos JSON locales.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newRegisterCmd(deps),
		newOutputCmd(deps),
		newAdjustCmd(deps),
		newDeleteCmd(deps),
		newStockCmd(deps),
		newHistoryCmd(deps),
		newOutputsCmd(deps),
		newReportCmd(deps),
	)
	return root
}

// userMessage traduce cada clase de fallo a un mensaje propio; nunca un
// genérico para los errores de negocio.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Producto no encontrado."
	case errors.Is(err, domain.ErrInsufficientStock):
		return "Cantidad no disponible en stock."
	case errors.Is(err, domain.ErrNegativeQuantity):
		return "La cantidad no puede ser negativa."
	case errors.Is(err, domain.ErrInvalidUnit):
		return "Unidad de medida inválida. Use: Unidade, Pacote o Metro."
	case errors.Is(err, domain.ErrInvalidInput):
		return "Datos inválidos: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}

// fail imprime el mensaje para el usuario y devuelve el error original
// (el comando raíz silencia el print duplicado de Cobra).
func fail(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(userMessage(err))
	return err
}
