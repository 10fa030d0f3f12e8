package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/translate/core/i18n"
)

// ErrMissingTranslation is returned by lookup --strict when a key has no translation.
var ErrMissingTranslation = errors.New("no translation")

func NewLookupCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "lookup FILE KEY",
		Args:  cobra.ExactArgs(2),
		Short: "Translate one key from a translation file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			flags := cmd.Flags()

			if flags.Changed("set") && flags.Changed("arg") {
				return errors.New("--set and --arg cannot be combined")
			}
			if flags.Changed("count") && flags.Changed("sub") {
				return errors.New("--count and --sub cannot be combined")
			}

			if flags.Changed("plural") {
				cfg.PluralLanguage, _ = flags.GetString("plural")
			}
			if v, _ := flags.GetBool("aliases"); v {
				cfg.ResolveAliases = true
			}
			if v, _ := flags.GetBool("mark-missing"); v {
				cfg.Debug = true
			}
			if v, _ := flags.GetBool("array"); v {
				cfg.Array = true
			}
			strict, _ := flags.GetBool("strict")
			if strict {
				cfg.UseKeyForMissing = false
			}

			table, err := readTable(args[0])
			if err != nil {
				return err
			}
			tr, err := i18n.NewFromConfig(table, cfg.Config, i18n.WithLogger(log))
			if err != nil {
				return err
			}

			var callArgs []any
			switch {
			case flags.Changed("count"):
				n, _ := flags.GetInt("count")
				callArgs = append(callArgs, n)
			case flags.Changed("sub"):
				sub, _ := flags.GetString("sub")
				callArgs = append(callArgs, sub)
			}
			switch {
			case flags.Changed("set"):
				named, _ := flags.GetStringToString("set")
				callArgs = append(callArgs, named)
			case flags.Changed("arg"):
				positional, _ := flags.GetStringArray("arg")
				callArgs = append(callArgs, positional)
			}

			res := tr.Translate(args[1], callArgs...)
			if !res.OK() {
				if strict {
					return fmt.Errorf("%w for %q", ErrMissingTranslation, args[1])
				}
				return nil
			}

			w := cmd.OutOrStdout()
			if segments := res.Segments(); segments != nil {
				return json.NewEncoder(w).Encode(segments)
			}
			_, err = fmt.Fprintln(w, res.String())
			return err
		},
	}
	root.AddCommand(c)
	c.Flags().Int("count", 0, "Count used for pluralization and {n}")
	c.Flags().String("sub", "", "Subkey selector")
	c.Flags().StringToString("set", nil, "Named replacement, e.g. --set name=Ann")
	c.Flags().StringArray("arg", nil, "Positional replacement for {0}, {1}, ...")
	c.Flags().String("plural", "", "Language of the built-in plural rule, e.g. pl")
	c.Flags().Bool("aliases", false, "Resolve {{Key}} aliases before the lookup")
	c.Flags().Bool("array", false, "Print the result as a JSON segment array")
	c.Flags().Bool("mark-missing", false, "Render missing translations as @@key@@")
	c.Flags().Bool("strict", false, "Fail when the key has no translation")
	return c
}

// register the subcommand into rootCmd
var _ = NewLookupCmd(rootCmd)
