package command

import (
	"errors"

	"github.com/spf13/cobra"
)

func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert",
		Aliases: []string{"conv"},
		Short:   "Convert quad files between supported formats.",
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
			qr, err := readerForInputs(cmd, args)
			if err != nil {
				return err
			}
			defer qr.Close()
			return writerQuadsTo(dump, dumpf, qr)
		},
	}
	registerLoadFlags(cmd)
	registerDumpFlags(cmd)
	return cmd
}
