package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/domain/normalize"
)

func newStockCmd(deps Deps) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Muestra el stock actual y los contadores de control",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary := deps.Inventory.Summary()
			cmd.Println(fmt.Sprintf("Productos: %d   Total en stock: %d   Stock bajo: %d   Sin stock: %d",
				summary.TotalProducts, summary.TotalItems, summary.LowStock, summary.OutOfStock))
			cmd.Println()

			products := deps.Inventory.Products()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPRODUCTO\tUNIDAD\tCANTIDAD\tRESPONSABLE")
			for _, p := range products {
				if search != "" && !strings.Contains(normalize.Key(p.Name), normalize.Key(search)) {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Unit, p.Quantity, p.ResponsibleName)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filtrar por nombre de producto")
	return cmd
}
