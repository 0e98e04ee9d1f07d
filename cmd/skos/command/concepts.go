package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cayleygraph/skos"
)

func loaderOptions(cmd *cobra.Command) skos.Options {
	lang, _ := cmd.Flags().GetString(flagLang)
	depth, _ := cmd.Flags().GetInt(flagDepth)
	flat, _ := cmd.Flags().GetBool(flagFlat)
	opts := skos.Options{
		Lang:     lang,
		MaxDepth: depth,
		Flat:     flat,
	}
	if depth > 0 {
		opts.Resolver = &skos.HTTPResolver{}
	}
	return opts
}

func NewConceptsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "concepts",
		Short: "Load SKOS files and list the concepts, schemes and collections found.",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd, args)
			if err != nil {
				return err
			}
			l, err := skos.NewRDFLoader(cmd.Context(), g, loaderOptions(cmd))
			if err != nil {
				return err
			}
			for _, uri := range l.URIs() {
				e, _ := l.Get(uri)
				switch e := e.(type) {
				case *skos.Concept:
					fmt.Printf("%s\t<%s>\t%s\n", e.Kind(), uri, e.PrefLabel)
				case *skos.ConceptScheme:
					fmt.Printf("%s\t<%s>\t%s\n", e.Kind(), uri, e.Title)
				case *skos.Collection:
					fmt.Printf("%s\t<%s>\t%s\n", e.Kind(), uri, e.Title)
				}
			}
			fmt.Printf("%d entities\n", l.Len())
			return nil
		},
	}
	registerLoadFlags(cmd)
	registerLoaderFlags(cmd)
	return cmd
}
