/*
 * errors.go, part of molcalc.
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
	"errors"
	"fmt"
)

// ParseError is returned when formula text is malformed.
// Pos is the byte offset where the problem was found, or -1.
type ParseError struct {
	Input string
	Pos   int
	Msg   string
	deco  []string
}

func (err *ParseError) Error() string {
	if err.Pos < 0 {
		return fmt.Sprintf("parse error in %q: %s", err.Input, err.Msg)
	}
	return fmt.Sprintf("parse error in %q at %d: %s", err.Input, err.Pos, err.Msg)
}

// Decorate adds new information to the error
func (err *ParseError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// LookupError is returned when an identifier doesn't match any row
// of the reference tables.
type LookupError struct {
	Key   string
	What  string //"element", "compound"...
	deco  []string
	cause error
}

func (err *LookupError) Error() string {
	return fmt.Sprintf("lookup error: no %s matches %q", err.What, err.Key)
}

// Decorate adds new information to the error
func (err *LookupError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *LookupError) Unwrap() error { return err.cause }

// ValidationError is returned for CAS numbers that fail the format or
// the checksum, and for numeric input that can't be used (percentages that
// don't add up, NaNs, etc.)
type ValidationError struct {
	Value string
	Msg   string
	deco  []string
	cause error
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", err.Value, err.Msg)
}

// Decorate adds new information to the error
func (err *ValidationError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func (err *ValidationError) Unwrap() error { return err.cause }

// DomainError is returned for arithmetic that makes no chemical sense,
// like dividing elements or subtracting an element a formula doesn't have.
type DomainError struct {
	Op   string
	Msg  string
	deco []string
}

func (err *DomainError) Error() string {
	return fmt.Sprintf("domain error in %s: %s", err.Op, err.Msg)
}

// Decorate adds new information to the error
func (err *DomainError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ErrorKind returns "parse", "lookup", "validation" or "domain" for errors
// of this package (wrapped or not), and "" for anything else.
// The outermost error of this package decides the kind, so a
// ValidationError caused by a LookupError is a "validation" error.
func ErrorKind(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		switch e.(type) {
		case *ParseError:
			return "parse"
		case *LookupError:
			return "lookup"
		case *ValidationError:
			return "validation"
		case *DomainError:
			return "domain"
		}
	}
	var pe *ParseError
	var le *LookupError
	var ve *ValidationError
	var de *DomainError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pe):
		return "parse"
	case errors.As(err, &le):
		return "lookup"
	case errors.As(err, &ve):
		return "validation"
	case errors.As(err, &de):
		return "domain"
	}
	return ""
}

// errDecorate adds caller to the decoration of err, if err is one of ours,
// and returns it.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(caller)
	}
	return err
}

// Decorations returns the call chain recorded in err, if any.
func Decorations(err error) []string {
	if e, ok := err.(Error); ok {
		return e.Decorate("")
	}
	return nil
}
