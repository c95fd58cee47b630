package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var format string
	root := &cobra.Command{
		Use:           "numtables",
		Short:         "Print the encoding tables of posit, lns, mdlns and fixpnt formats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&format, "format", "text", "output format: text, csv, markdown or html")
	root.AddCommand(
		shapeCmd("posit", &format),
		shapeCmd("lns", &format),
		shapeCmd("mdlns", &format),
		shapeCmd("fixpnt", &format),
		batchCmd(&format),
	)
	return root
}

func shapeCmd(name string, format *string) *cobra.Command {
	s := Shape{Format: name}
	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Print the table of a %s format", name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := s.Table()
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), *format, []table{t})
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&s.NBits, "nbits", 8, "total number of bits")
	switch name {
	case "posit":
		flags.IntVar(&s.ES, "es", 0, "number of exponent bits")
	case "lns":
		flags.IntVar(&s.RBits, "rbits", 2, "number of fraction bits of the logarithm")
	case "mdlns":
		flags.IntVar(&s.BBits, "bbits", 2, "number of bits of the ternary exponent")
	case "fixpnt":
		flags.IntVar(&s.RBits, "rbits", 4, "number of fraction bits")
		flags.BoolVar(&s.Saturate, "saturate", false, "saturating instead of modulo arithmetic")
	}
	return cmd
}

func batchCmd(format *string) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Print the tables of the shapes listed in a yaml file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := LoadConfig(path)
			if err != nil {
				return err
			}
			f := *format
			if !cmd.Flags().Changed("format") && c.Format != "" {
				f = c.Format
			}
			tables := make([]table, 0, len(c.Shapes))
			for i, s := range c.Shapes {
				t, err := s.Table()
				if err != nil {
					return fmt.Errorf("shape %d: %w", i, err)
				}
				tables = append(tables, t)
			}
			return render(cmd.OutOrStdout(), f, tables)
		},
	}
	cmd.Flags().StringVar(&path, "config", "shapes.yaml", "yaml file listing the shapes")
	return cmd
}
