/*
 * doc.go, part of molcalc.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

/*Package chem is the main package of the molcalc library. It turns chemical formulas
into element counts, and from there gives molar masses, names, conversions between
amounts of substance, and percent compositions.



	**molcalc Capabilities**


    Reads formulas with nested groups, such as Fe2(SO4)3 or Ca(OH)2.

    Looks up elements by symbol, name, atomic number or atomic mass, in a
	full periodic table embedded in the package. Custom tables can be read
	from CSV files, plain or compressed with zstd or gzip.

    Names common compounds, given their formula or CAS number.

    Converts between mass, moles, atoms, particles and, for ideal gases,
	liters at STP.

    Percent composition, percent error, and empirical and molecular formulas
	from mass fractions.

    Validates CAS registry numbers.


Elements and Formulas are values that are never modified. Operations that can
fail return one of the error types ParseError, LookupError, ValidationError or
DomainError, which can be told apart with errors.As, or with ErrorKind.

Counts in formulas are read with at most 2 digits (see MaxCountDigits).*/
package chem
