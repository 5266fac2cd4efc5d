package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
)

func newAdjustCmd(deps Deps) *cobra.Command {
	var in inventory.AdjustQuantityInput

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Fija la cantidad de un producto en un valor exacto (panel administrador)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := deps.Inventory.AdjustQuantity(in)
			if err != nil {
				return fail(cmd, err)
			}

			deps.Log.Info().
				Str("product_id", in.ProductID).
				Int("previous", result.PreviousQuantity).
				Int("new", result.NewQuantity).
				Bool("logged", result.Logged).
				Msg("ajuste aplicado")

			cmd.Println(fmt.Sprintf("Ajuste aplicado: %d → %d (diferencia %+d).",
				result.PreviousQuantity, result.NewQuantity, result.Difference))
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.ProductID, "product", "p", "", "ID del producto")
	cmd.Flags().IntVarP(&in.NewQuantity, "quantity", "q", 0, "nueva cantidad exacta")
	cmd.Flags().StringVarP(&in.ResponsibleName, "responsible", "r", "", "responsable del ajuste")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("quantity")
	_ = cmd.MarkFlagRequired("responsible")

	return cmd
}
