package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

func newHistoryCmd(deps Deps) *cobra.Command {
	var (
		movementType string
		productID    string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Muestra el historial unificado de movimientos, más reciente primero",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var movements []entity.StockMovement
			switch {
			case movementType != "":
				movements = deps.Inventory.MovementsByType(movementType)
			case productID != "":
				movements = deps.Inventory.MovementsByProduct(productID)
			default:
				movements = deps.Inventory.Movements()
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FECHA\tTIPO\tPRODUCTO\tANT.\tNUEVA\tDIF.\tDESTINO\tRESPONSABLE")
			for _, m := range movements {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%+d\t%s\t%s\n",
					m.Date.Format("02/01/2006"), m.Type, m.ProductName,
					m.PreviousQuantity, m.NewQuantity, m.Difference,
					m.Destination, m.ResponsibleName)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&movementType, "type", "", "filtrar por tipo: entrada, saida, ajuste o exclusao")
	cmd.Flags().StringVarP(&productID, "product", "p", "", "filtrar por ID de producto")
	return cmd
}

func newOutputsCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "outputs",
		Short: "Muestra el historial legado de salidas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FECHA\tPRODUCTO\tCANTIDAD\tDESTINO\tRESPONSABLE")
			for _, o := range deps.Inventory.Outputs() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					o.Date.Format("02/01/2006"), o.ProductName, o.Quantity,
					o.Destination, o.ResponsibleName)
			}
			return w.Flush()
		},
	}
}
