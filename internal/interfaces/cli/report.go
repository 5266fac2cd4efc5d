package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newReportCmd(deps Deps) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Genera el informe de stock en PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := deps.Report.Generate(cmd.Context())
			if err != nil {
				return fail(cmd, err)
			}
			if err := os.WriteFile(out, raw, 0o644); err != nil {
				return fail(cmd, fmt.Errorf("escribir informe: %w", err))
			}

			deps.Log.Info().Str("file", out).Int("bytes", len(raw)).Msg("informe generado")
			cmd.Println(fmt.Sprintf("Informe generado: %s", out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "informe-stock.pdf", "archivo de salida")
	return cmd
}
