/*
 * main.go, part of molcalc.
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

// Command molcalc runs the molcalc calculations from the command line.
//
//	molcalc formula "Fe2(SO4)3"
//	molcalc convert H2O 36 --from g --to mol
//	molcalc composition C6H12O6 --round -o json
//	molcalc empirical C=40 H=6.7 O=53.3
//	molcalc cas 7732-18-5
package main

import (
	"io"
	"os"
)

var version = "dev"

// run executes the command line in args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	a := newApp()
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if c, err := root.ExecuteC(); err != nil {
		a.report(stderr, c, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
