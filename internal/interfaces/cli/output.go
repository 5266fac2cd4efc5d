package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/domain"
)

func newOutputCmd(deps Deps) *cobra.Command {
	var (
		in      inventory.RegisterOutputInput
		name    string
		rawDate string
	)

	cmd := &cobra.Command{
		Use:   "output",
		Short: "Registra una salida de material hacia un destino",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.ProductID == "" && name != "" {
				product := deps.Inventory.FindProductByName(name)
				if product == nil {
					return fail(cmd, domain.ErrNotFound)
				}
				in.ProductID = product.ID
			}
			if rawDate != "" {
				date, err := time.ParseInLocation("2006-01-02", rawDate, time.Local)
				if err != nil {
					return fail(cmd, fmt.Errorf("fecha inválida (use AAAA-MM-DD): %w", domain.ErrInvalidInput))
				}
				in.Date = date
			}

			result, err := deps.Inventory.RegisterOutput(in)
			if err != nil {
				return fail(cmd, err)
			}

			deps.Log.Info().
				Str("product_id", result.Product.ID).
				Int("quantity", in.Quantity).
				Str("destination", result.Output.Destination).
				Msg("salida registrada")

			cmd.Println(fmt.Sprintf("Salida registrada: %d de %q hacia %s. Stock restante: %d.",
				in.Quantity, result.Product.Name, result.Output.Destination, result.Product.Quantity))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.ProductID, "product", "p", "", "ID del producto")
	cmd.Flags().StringVarP(&name, "name", "n", "", "nombre del producto (alternativa al ID)")
	cmd.Flags().IntVarP(&in.Quantity, "quantity", "q", 0, "cantidad a retirar")
	cmd.Flags().StringVarP(&in.Destination, "destination", "t", "", "destino del material")
	cmd.Flags().StringVarP(&in.ResponsibleName, "responsible", "r", "", "responsable de la salida")
	cmd.Flags().StringVar(&rawDate, "date", "", "fecha efectiva AAAA-MM-DD (por defecto hoy; puede ser retroactiva)")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("responsible")

	return cmd
}
