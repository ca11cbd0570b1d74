package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mstswap/internal/graphfile"
)

func newExportCmd(v *viper.Viper) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the graph as YAML",
		Long: `Write the input graph (the reference graph unless --graph is given) as YAML.
The output is accepted by --graph.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), v.GetBool(keyVerbose))
			g, err := loadGraph(v.GetString(keyGraph), logger)
			if err != nil {
				return err
			}
			if out == "" {
				return graphfile.Encode(cmd.OutOrStdout(), g)
			}
			if err := graphfile.Save(out, g); err != nil {
				return err
			}
			logger.Info("graph exported", "path", out, "vertices", g.Vertices(), "edges", g.EdgeCount())

			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")

	return cmd
}
