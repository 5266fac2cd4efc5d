package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
)

func newRegisterCmd(deps Deps) *cobra.Command {
	var in inventory.RegisterProductInput

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Registra un producto (o suma stock si el nombre ya existe)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := deps.Inventory.RegisterProduct(in)
			if err != nil {
				return fail(cmd, err)
			}

			deps.Log.Info().
				Str("product_id", result.Product.ID).
				Str("name", result.Product.Name).
				Bool("is_new", result.IsNew).
				Int("added", result.AddedQuantity).
				Msg("producto registrado")

			unit := strings.ToLower(result.Product.Unit)
			if result.IsNew {
				cmd.Println(fmt.Sprintf("Producto registrado: %q agregado al stock con %d %s(s).",
					result.Product.Name, result.AddedQuantity, unit))
			} else {
				cmd.Println(fmt.Sprintf("Stock actualizado: se agregaron %d %s(s) al producto %q. Nueva cantidad total: %d.",
					result.AddedQuantity, unit, result.Product.Name, result.Product.Quantity))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&in.Name, "name", "n", "", "nombre del producto (obligatorio)")
	cmd.Flags().StringVarP(&in.Description, "description", "d", "", "descripción (opcional)")
	cmd.Flags().StringVarP(&in.Unit, "unit", "u", "", "unidad de medida: Unidade, Pacote o Metro")
	cmd.Flags().IntVarP(&in.Quantity, "quantity", "q", 0, "cantidad inicial")
	cmd.Flags().StringVarP(&in.ResponsibleName, "responsible", "r", "", "responsable del registro")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("unit")
	_ = cmd.MarkFlagRequired("responsible")

	return cmd
}
