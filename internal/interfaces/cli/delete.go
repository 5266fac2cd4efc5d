package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
)

func newDeleteCmd(deps Deps) *cobra.Command {
	var in inventory.DeleteProductInput

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Elimina un producto del stock (queda el rastro en el historial)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deleted, err := deps.Inventory.DeleteProduct(in)
			if err != nil {
				return fail(cmd, err)
			}

			deps.Log.Info().
				Str("product_id", deleted.ID).
				Str("name", deleted.Name).
				Int("quantity", deleted.Quantity).
				Msg("producto eliminado")

			cmd.Println(fmt.Sprintf("Producto %q eliminado del stock.", deleted.Name))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.ProductID, "product", "p", "", "ID del producto")
	cmd.Flags().StringVarP(&in.ResponsibleName, "responsible", "r", "", "responsable de la eliminación")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("responsible")

	return cmd
}
