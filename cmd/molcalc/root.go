/*
 * root.go, part of molcalc.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	chem "github.com/rmera/molcalc"
	"github.com/rmera/molcalc/chemjson"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// app holds the state shared by all the subcommands of one invocation.
// Each invocation gets its own viper instance, so tests can run many.
type app struct {
	v       *viper.Viper
	cfgFile string
	tab     *chem.Table
}

func newApp() *app {
	return &app{v: viper.New()}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "molcalc",
		Short: "Chemistry calculations on formulas, elements and CAS numbers",
		Long: `molcalc parses chemical formulas and computes molar masses, names,
quantity conversions, percent compositions, empirical and molecular
formulas and percent errors. It also validates CAS registry numbers.

The reference tables are embedded; --elements and --compounds replace
them with CSV files (optionally .gz or .zst compressed).`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return a.setup() },
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ~/.config/molcalc/config.yaml)")
	pf.String("elements", "", "periodic table CSV file")
	pf.String("compounds", "", "compound names CSV file (needs --elements)")
	pf.StringP("output", "o", "text", "output format: text, json or yaml")
	for _, k := range []string{"elements", "compounds", "output"} {
		_ = a.v.BindPFlag(k, pf.Lookup(k))
	}

	root.AddCommand(
		a.elementCmd(),
		a.formulaCmd(),
		a.convertCmd(),
		a.compositionCmd(),
		a.empiricalCmd(),
		a.molecularCmd(),
		a.percentErrorCmd(),
		a.casCmd(),
	)
	return root
}

// setup reads the configuration and loads the tables.
func (a *app) setup() error {
	if err := a.initConfig(); err != nil {
		return err
	}
	switch o := a.v.GetString("output"); o {
	case "text", "json", "yaml":
	default:
		return &chem.ValidationError{Value: o, Msg: "output must be text, json or yaml"}
	}
	elements, compounds := a.v.GetString("elements"), a.v.GetString("compounds")
	switch {
	case elements != "":
		tab, err := chem.ReadTable(elements, compounds)
		if err != nil {
			return err
		}
		a.tab = tab
	case compounds != "":
		return fmt.Errorf("a compound table (%s) needs a periodic table, use --elements", compounds)
	default:
		a.tab = chem.Default()
	}
	return nil
}

// initConfig reads the config file and the MOLCALC_ environment
// variables. A missing default config file is not an error.
func (a *app) initConfig() error {
	a.v.SetEnvPrefix("MOLCALC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault("round", false)

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		a.v.AddConfigPath(filepath.Join(home, ".config", "molcalc"))
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// print writes v in the configured format. text is used for the text format.
func (a *app) print(cmd *cobra.Command, text string, v interface{}) error {
	out := cmd.OutOrStdout()
	switch a.v.GetString("output") {
	case "json":
		if jerr := chemjson.Send(out, v); jerr != nil {
			return jerr
		}
		return nil
	case "yaml":
		return writeYAML(out, v)
	}
	_, err := fmt.Fprintln(out, strings.TrimRight(text, "\n"))
	return err
}

func writeYAML(out io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// report writes err to w, in the configured format.
func (a *app) report(w io.Writer, cmd *cobra.Command, err error) {
	function := "molcalc"
	if cmd != nil {
		function = cmd.CommandPath()
	}
	switch a.v.GetString("output") {
	case "json":
		_ = chemjson.Send(w, chemjson.NewError(function, err))
	case "yaml":
		_ = writeYAML(w, chemjson.NewError(function, err))
	default:
		fmt.Fprintf(w, "%s: %v\n", function, err)
	}
}
