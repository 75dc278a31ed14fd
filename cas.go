/*
 * cas.go, part of molcalc.
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

import (
	"fmt"
	"strings"
)

// CAS registry numbers are written as p1-p2-p3, where p1 has 2 to 7 digits,
// p2 has 2 and p3 is a single check digit.
const maxCASDigits = 10

// ValidateCAS returns nil if cas is a well-formed CAS registry number with
// a correct check digit, and a ValidationError otherwise.
func ValidateCAS(cas string) error {
	verr := func(msg string) error {
		return &ValidationError{Value: cas, Msg: msg, deco: []string{"ValidateCAS"}}
	}
	if len(strings.ReplaceAll(cas, "-", "")) > maxCASDigits {
		return verr("CAS number is too long")
	}
	parts := strings.Split(cas, "-")
	if len(parts) != 3 {
		return verr("CAS number is not formatted correctly [x(2-7)-x(2)-x(1)]")
	}
	for i, p := range parts {
		if !allDigits(p) {
			return verr(fmt.Sprintf("part %d of the CAS number is not a number", i+1))
		}
	}
	if l := len(parts[0]); l < 2 || l > 7 {
		return verr("the first part of a CAS number must have 2 to 7 digits")
	}
	if len(parts[1]) != 2 {
		return verr("the second part of a CAS number must have 2 digits")
	}
	if len(parts[2]) != 1 {
		return verr("the check digit must be a single digit")
	}
	body := parts[0] + parts[1]
	sum := 0
	//the rightmost digit has weight 1, the next one 2, and so on.
	for i := 0; i < len(body); i++ {
		sum += int(body[len(body)-1-i]-'0') * (i + 1)
	}
	check := int(parts[2][0] - '0')
	if sum%10 != check {
		return verr(fmt.Sprintf("check sum does not match check digit [%d != %d]", sum%10, check))
	}
	return nil
}

// IsCAS returns true if cas is a valid CAS number.
func IsCAS(cas string) bool {
	return ValidateCAS(cas) == nil
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
