/*
 * composition.go, part of molcalc.
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
	"math"
	"sort"
	"strconv"
	"strings"
)

// Composition is a multiset of element symbols, which remembers the order
// in which each symbol was first seen. Adding a symbol that is already
// there adds to its count, it never replaces it.
// The zero value is an empty composition ready to use.
type Composition struct {
	symbols []string
	counts  map[string]int
}

// CompositionFromMap returns a composition with the contents of m, in Hill order.
func CompositionFromMap(m map[string]int) Composition {
	var c Composition
	syms := make([]string, 0, len(m))
	for k := range m {
		syms = append(syms, k)
	}
	for _, s := range hillOrder(syms) {
		c.Add(s, m[s])
	}
	return c
}

// Add adds n atoms of symbol sym.
func (C *Composition) Add(sym string, n int) {
	if C.counts == nil {
		C.counts = make(map[string]int)
	}
	if _, ok := C.counts[sym]; !ok {
		C.symbols = append(C.symbols, sym)
	}
	C.counts[sym] += n
}

// Merge adds all the counts in o to C.
func (C *Composition) Merge(o Composition) {
	for _, s := range o.symbols {
		C.Add(s, o.counts[s])
	}
}

// remove deletes sym from the composition, keeping the order of the rest.
func (C *Composition) remove(sym string) {
	if _, ok := C.counts[sym]; !ok {
		return
	}
	delete(C.counts, sym)
	for i, v := range C.symbols {
		if v == sym {
			C.symbols = append(C.symbols[:i], C.symbols[i+1:]...)
			break
		}
	}
}

// Count returns the number of atoms of sym, 0 if not present.
func (C Composition) Count(sym string) int {
	return C.counts[sym]
}

// Has returns true if sym is in the composition.
func (C Composition) Has(sym string) bool {
	_, ok := C.counts[sym]
	return ok
}

// Symbols returns a copy of the symbols, in order.
func (C Composition) Symbols() []string {
	return append([]string(nil), C.symbols...)
}

// Len returns the number of different symbols.
func (C Composition) Len() int {
	return len(C.symbols)
}

// Atoms returns the sum of all counts.
func (C Composition) Atoms() int {
	t := 0
	for _, v := range C.counts {
		t += v
	}
	return t
}

// Copy returns a deep copy.
func (C Composition) Copy() Composition {
	var r Composition
	r.Merge(C)
	return r
}

// Scaled returns a new composition with every count multiplied by n.
func (C Composition) Scaled(n int) Composition {
	var r Composition
	for _, s := range C.symbols {
		r.Add(s, C.counts[s]*n)
	}
	return r
}

// overflows returns the first symbol whose count times n would not fit
// in an int, or "". n must be positive.
func (C Composition) overflows(n int) string {
	for _, s := range C.symbols {
		if C.counts[s] > math.MaxInt/n {
			return s
		}
	}
	return ""
}

// Map returns the counts as a plain map.
func (C Composition) Map() map[string]int {
	m := make(map[string]int, len(C.counts))
	for k, v := range C.counts {
		m[k] = v
	}
	return m
}

// Equal returns true if both compositions have the same counts,
// regardless of order.
func (C Composition) Equal(o Composition) bool {
	if len(C.counts) != len(o.counts) {
		return false
	}
	for k, v := range C.counts {
		if w, ok := o.counts[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// String returns the formula text, in the order of the composition, with
// counts of 1 omitted, i.e. H2O for {H:2, O:1}.
func (C Composition) String() string {
	var b strings.Builder
	for _, s := range C.symbols {
		b.WriteString(s)
		if n := C.counts[s]; n != 1 {
			b.WriteString(strconv.Itoa(n))
		}
	}
	return b.String()
}

// key is an order-independent representation of the composition, used
// to index the compound table.
func (C Composition) key() string {
	syms := C.Symbols()
	sort.Strings(syms)
	var b strings.Builder
	for _, s := range syms {
		b.WriteString(s)
		b.WriteString(strconv.Itoa(C.counts[s]))
	}
	return b.String()
}

// hillOrder sorts symbols the Hill way: carbon first, then hydrogen, then
// everything else alphabetically. Without carbon, everything is alphabetical.
// The slice is sorted in place and returned.
func hillOrder(syms []string) []string {
	hasC := false
	for _, s := range syms {
		if s == "C" {
			hasC = true
			break
		}
	}
	rank := func(s string) int {
		if !hasC {
			return 2
		}
		switch s {
		case "C":
			return 0
		case "H":
			return 1
		}
		return 2
	}
	sort.SliceStable(syms, func(i, j int) bool {
		ri, rj := rank(syms[i]), rank(syms[j])
		if ri != rj {
			return ri < rj
		}
		return syms[i] < syms[j]
	})
	return syms
}
