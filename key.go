/*
 * key.go, part of molcalc.
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
	"strconv"
	"strings"
)

// KeyKind tells which column of the periodic table a Key refers to.
type KeyKind int

const (
	BySymbol KeyKind = iota
	ByName
	ByNumber
	ByMass
)

func (k KeyKind) String() string {
	switch k {
	case BySymbol:
		return "symbol"
	case ByName:
		return "name"
	case ByNumber:
		return "atomic number"
	case ByMass:
		return "atomic mass"
	}
	return "unknown key"
}

// Key identifies an element by exactly one of its columns.
type Key struct {
	Kind   KeyKind
	Text   string //symbol or name
	Number int
	Mass   float64
}

func SymbolKey(s string) Key { return Key{Kind: BySymbol, Text: s} }
func NameKey(s string) Key { return Key{Kind: ByName, Text: s} }
func NumberKey(n int) Key { return Key{Kind: ByNumber, Number: n} }
func MassKey(m float64) Key { return Key{Kind: ByMass, Mass: m} }

func (k Key) String() string {
	switch k.Kind {
	case ByNumber:
		return strconv.Itoa(k.Number)
	case ByMass:
		return strconv.FormatFloat(k.Mass, 'g', -1, 64)
	}
	return k.Text
}

// KeysFor returns the keys that id could stand for, in the order they
// should be tried: symbol, name, atomic number, atomic mass.
func KeysFor(id string) []Key {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	keys := make([]Key, 0, 4)
	keys = append(keys, SymbolKey(id), NameKey(id))
	if n, err := strconv.Atoi(id); err == nil {
		keys = append(keys, NumberKey(n))
	}
	if m, err := strconv.ParseFloat(id, 64); err == nil {
		keys = append(keys, MassKey(m))
	}
	return keys
}

// capitalize returns s with the first letter in uppercase and the rest in
// lowercase, which is how symbols are written.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
