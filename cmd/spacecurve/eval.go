package main

import (
	"encoding/json"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"honnef.co/go/spacecurve/internal/scene"
)

func newEvalCmd(opts *options) *cobra.Command {
	var indent bool
	cmd := &cobra.Command{
		Use:   "eval <scene>",
		Short: "Print the samples of all curves as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := homedir.Expand(args[0])
			if err != nil {
				return err
			}
			s, err := scene.Load(path)
			if err != nil {
				return err
			}
			results, err := s.Evaluate(opts.logger)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			if indent {
				enc.SetIndent("", "\t")
			}
			return enc.Encode(results)
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", false, "indent the JSON output")
	return cmd
}
