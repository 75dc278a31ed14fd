/*
 * parser.go, part of molcalc.
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

package chem

import "fmt"

// MaxCountDigits is how many digits are read for a single count. A third
// digit starts a new count, which is added to the same element or group,
// so "C123" reads as C15. Formulas with counts over 99 are not supported.
const MaxCountDigits = 2

// unit is the element or group that the next count applies to.
type unit struct {
	sym   string      //set for elements
	group Composition //used when sym is ""
}

// addTo adds n of u to c. It returns false, and adds nothing, if a group
// count would overflow.
func (u unit) addTo(c *Composition, n int) bool {
	if u.sym != "" {
		c.Add(u.sym, n)
		return true
	}
	if u.group.overflows(n) != "" {
		return false
	}
	c.Merge(u.group.Scaled(n))
	return true
}

// ParseFormula reads a formula such as H2O, Ca(OH)2 or Fe2(SO4)3 and
// returns the number of atoms of each symbol. Symbols are not checked
// against the periodic table here.
// A lowercase letter not preceded by an uppercase one is taken as a
// one-letter symbol, so "h2o" gives {H:2, O:1} and "co" gives {C:1, O:1}.
// Parenthesized groups nest to any depth, and repeated symbols always
// add up.
func ParseFormula(formula string) (Composition, error) {
	perr := func(pos int, format string, a ...interface{}) (Composition, error) {
		return Composition{}, &ParseError{Input: formula, Pos: pos, Msg: fmt.Sprintf(format, a...), deco: []string{"ParseFormula"}}
	}
	if formula == "" {
		return perr(-1, "empty formula")
	}
	//stack[0] is the whole formula, each open parenthesis pushes a frame.
	stack := []*Composition{new(Composition)}
	opened := []int{} //positions of the open parentheses, for error reporting
	var pending *unit //waiting for its count
	var last *unit    //last unit that got a count, for runs past MaxCountDigits
	commit := func(n int) bool {
		if pending == nil {
			return true
		}
		ok := pending.addTo(stack[len(stack)-1], n)
		last = pending
		pending = nil
		return ok
	}
	for i := 0; i < len(formula); {
		c := formula[i]
		switch {
		case isUpper(c):
			commit(1)
			sym := string(c)
			i++
			if i < len(formula) && isLower(formula[i]) {
				sym += string(formula[i])
				i++
			}
			pending = &unit{sym: sym}
		case isLower(c):
			//lenient: a lone lowercase letter is a one-letter symbol.
			commit(1)
			pending = &unit{sym: string(c - 'a' + 'A')}
			i++
		case isDigit(c):
			start := i
			n := 0
			for d := 0; d < MaxCountDigits && i < len(formula) && isDigit(formula[i]); d++ {
				n = n*10 + int(formula[i]-'0')
				i++
			}
			if n == 0 {
				return perr(start, "count %q is zero", formula[start:i])
			}
			switch {
			case pending != nil:
				if !commit(n) {
					return perr(start, "count %q makes the group too large", formula[start:i])
				}
			case last != nil:
				if !last.addTo(stack[len(stack)-1], n) {
					return perr(start, "count %q makes the group too large", formula[start:i])
				}
			default:
				return perr(start, "count %q has no element or group before it", formula[start:i])
			}
		case c == '(':
			commit(1)
			stack = append(stack, new(Composition))
			opened = append(opened, i)
			last = nil
			i++
		case c == ')':
			commit(1)
			if len(stack) == 1 {
				return perr(i, "unbalanced ')'")
			}
			group := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if group.Len() == 0 {
				return perr(opened[len(opened)-1], "empty group")
			}
			opened = opened[:len(opened)-1]
			pending = &unit{group: *group}
			last = nil
			i++
		default:
			return perr(i, "invalid character %q", c)
		}
	}
	commit(1)
	if len(stack) > 1 {
		return perr(opened[len(opened)-1], "unbalanced '('")
	}
	if stack[0].Len() == 0 {
		return perr(-1, "no elements in formula")
	}
	return *stack[0], nil
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
