/*
 * commands.go, part of molcalc.
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
	"fmt"
	"strconv"
	"strings"

	chem "github.com/rmera/molcalc"
	"github.com/rmera/molcalc/chemjson"
	"github.com/spf13/cobra"
)

var unitSymbols = map[chem.Unit]string{
	chem.Mass:      "g",
	chem.Moles:     "mol",
	chem.Atoms:     "atoms",
	chem.Particles: "particles",
	chem.Liters:    "L",
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &chem.ValidationError{Value: s, Msg: "not a number"}
	}
	return f, nil
}

// formula reads a formula or, if id is a CAS number, the compound it names.
func (a *app) formula(id string) (*chem.Formula, error) {
	if chem.IsCAS(strings.TrimSpace(id)) {
		return a.tab.FormulaFromCAS(strings.TrimSpace(id))
	}
	return a.tab.Formula(id)
}

func formulaText(f *chem.Formula) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", f, f.Name())
	fmt.Fprintf(&b, "molar mass: %.3f g/mol\n", f.MolarMass())
	fmt.Fprintf(&b, "atoms: %d\n", f.AtomCount())
	if cas := f.CAS(); cas != "" {
		fmt.Fprintf(&b, "CAS: %s\n", cas)
	}
	return b.String()
}

func (a *app) elementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "element <symbol|name|number|mass>",
		Short: "Look up an element",
		Long: `Look up an element by symbol, name, atomic number or atomic mass,
in that order. The first match wins.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.tab.Resolve(args[0])
			if err != nil {
				return err
			}
			text := fmt.Sprintf("%s %s\natomic number: %d\natomic mass: %g g/mol\ncategory: %s", e.Symbol, e.Name, e.Number, e.Mass, e.Category())
			return a.print(cmd, text, chemjson.NewElement(e))
		},
	}
}

func (a *app) formulaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formula <formula|CAS>",
		Short: "Parse a formula and show its molar mass and name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formula(args[0])
			if err != nil {
				return err
			}
			return a.print(cmd, formulaText(f), chemjson.NewFormula(f, nil))
		},
	}
}

func (a *app) convertCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert <formula> <quantity>",
		Short: "Convert between mass, moles, atoms, particles and liters",
		Long: `Convert a quantity of a substance between units.
Units: g (mass), mol (moles), atoms, particles, L (liters of gas at STP).

Examples:
  molcalc convert H2O 36 --from g --to mol
  molcalc convert Fe 1 --from mol --to atoms`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formula(args[0])
			if err != nil {
				return err
			}
			q, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			fu, err := chem.ParseUnit(from)
			if err != nil {
				return err
			}
			tu, err := chem.ParseUnit(to)
			if err != nil {
				return err
			}
			r, err := chem.Convert(f, q, fu, tu)
			if err != nil {
				return err
			}
			text := fmt.Sprintf("%.6g %s of %s = %.6g %s", q, unitSymbols[fu], f, r, unitSymbols[tu])
			return a.print(cmd, text, &chemjson.Conversion{Substance: f.String(), Quantity: q, From: fu.String(), To: tu.String(), Result: r})
		},
	}
	cmd.Flags().StringVar(&from, "from", "g", "unit of the quantity")
	cmd.Flags().StringVar(&to, "to", "mol", "unit to convert to")
	return cmd
}

func (a *app) compositionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "composition <formula|CAS>",
		Short: "Show the mass percentage of each element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formula(args[0])
			if err != nil {
				return err
			}
			shares := chem.PercentComposition(f, a.v.GetBool("round"))
			var b strings.Builder
			fmt.Fprintf(&b, "%s (%s)\n", f, f.Name())
			for _, s := range shares {
				fmt.Fprintf(&b, "%-3s %3d %g%%\n", s.Element.Symbol, s.Count, s.Percent)
			}
			return a.print(cmd, b.String(), chemjson.NewFormula(f, shares))
		},
	}
	cmd.Flags().Bool("round", false, "round percentages to 2 decimals")
	_ = a.v.BindPFlag("round", cmd.Flags().Lookup("round"))
	return cmd
}

func (a *app) empiricalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "empirical <element=fraction>...",
		Short: "Find the empirical formula from mass fractions",
		Long: `Find the empirical formula from the mass fraction of each element.
Fractions can add up to 1 or to 100.

Example:
  molcalc empirical C=40 H=6.7 O=53.3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fractions := make(map[string]float64, len(args))
			for _, arg := range args {
				k, v, ok := strings.Cut(arg, "=")
				if !ok || strings.TrimSpace(k) == "" {
					return &chem.ValidationError{Value: arg, Msg: "expected element=fraction"}
				}
				x, err := parseNumber(v)
				if err != nil {
					return err
				}
				fractions[strings.TrimSpace(k)] += x
			}
			f, err := a.tab.EmpiricalFormula(fractions)
			if err != nil {
				return err
			}
			return a.print(cmd, formulaText(f), chemjson.NewFormula(f, nil))
		},
	}
}

func (a *app) molecularCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "molecular <empirical formula> <molar mass>",
		Short: "Find the molecular formula from the empirical formula and the molar mass",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			emp, err := a.tab.Formula(args[0])
			if err != nil {
				return err
			}
			m, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			f, err := chem.MolecularFormula(emp, m)
			if err != nil {
				return err
			}
			return a.print(cmd, formulaText(f), chemjson.NewFormula(f, nil))
		},
	}
}

func (a *app) percentErrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "percent-error <actual> <theoretical>",
		Short: "Percent error of a measured value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			actual, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			theo, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			p, err := chem.PercentError(actual, theo)
			if err != nil {
				return err
			}
			return a.print(cmd, fmt.Sprintf("%.6g%%", p), &chemjson.PercentError{Actual: actual, Theoretical: theo, Percent: p})
		},
	}
}

func (a *app) casCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cas <number>",
		Short: "Validate a CAS registry number",
		Long: `Validate the format and check digit of a CAS registry number.
Invalid numbers are reported as errors. If the number is in the
compound table, the compound is named.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := chemjson.NewCAS(a.tab, strings.TrimSpace(args[0]))
			if !c.Valid {
				return chem.ValidateCAS(c.Number)
			}
			text := c.Number + ": valid"
			if c.Compound != "" {
				text += " (" + c.Compound + ")"
			}
			return a.print(cmd, text, c)
		},
	}
}
