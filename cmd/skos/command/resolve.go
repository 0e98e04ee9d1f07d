package command

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/skos"
)

func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Expand SKOS files by fetching externally referenced resources, then dump the result.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dump, _ := cmd.Flags().GetString(flagDump)
			dumpf, _ := cmd.Flags().GetString(flagDumpFormat)
			if dump == "" && len(args) > 0 {
				i := len(args) - 1
				dump, args = args[i], args[:i]
			}
			if dump == "" {
				return errors.New("both input and output files must be specified")
			}
			depth, _ := cmd.Flags().GetInt(flagDepth)
			if depth <= 0 {
				return errors.New("depth must be positive")
			}

			g, err := loadGraph(cmd, args)
			if err != nil {
				return err
			}
			r := skos.GraphResolver{
				MaxDepth: depth,
				Resolver: &skos.HTTPResolver{},
			}
			r.Expand(cmd.Context(), g)
			return writerQuadsTo(dump, dumpf, g.Reader())
		},
	}
	registerLoadFlags(cmd)
	registerDumpFlags(cmd)
	cmd.Flags().Int(flagDepth, 1, "resolve external references over HTTP up to this depth")
	return cmd
}
