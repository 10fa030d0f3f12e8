package main

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/translate/core/i18n"
	"github.com/dmitrymomot/translate/core/logger"
)

func NewAliasesCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "aliases FILE",
		Args:  cobra.ExactArgs(1),
		Short: "Expand {{Key}} references and print the resolved table",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			out, _ := cmd.Flags().GetString("out")
			switch out {
			case "json", "yaml", "toml":
			default:
				return fmt.Errorf("unsupported output format %q", out)
			}

			table, err := readTable(args[0])
			if err != nil {
				return err
			}
			resolved, err := i18n.ResolveAliases(table)
			if err != nil {
				log.Error("alias resolution failed", logger.File(args[0]), logger.Error(err))
				return err
			}
			log.Debug("aliases resolved", logger.File(args[0]), logger.Count("keys", len(resolved)))

			w := cmd.OutOrStdout()
			switch out {
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(map[string]any(resolved)); err != nil {
					return err
				}
				return enc.Close()
			case "toml":
				return toml.NewEncoder(w).Encode(map[string]any(resolved))
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(resolved)
		},
	}
	root.AddCommand(c)
	c.Flags().String("out", "json", "Output format: json, yaml or toml")
	return c
}

// register the subcommand into rootCmd
var _ = NewAliasesCmd(rootCmd)
