/*
 * errors.go, part of mlabs.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package chem

import (
	"fmt"
	"strings"
)

//CError is the error type for the chem package.
type CError struct {
	msg      string
	deco     []string
	critical bool
}

func newError(msg, caller string) *CError {
	return &CError{msg: msg, deco: []string{caller}, critical: true}
}

//Error returns the error message, followed by the functions in the decoration.
func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return fmt.Sprintf("%s (%s)", err.msg, strings.Join(err.deco, " < "))
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err *CError) Critical() bool { return err.critical }

//UnknownElementError is returned when an atom has a symbol that is not in
//the periodic table. It is fatal for the descriptor of the structure containing the atom.
type UnknownElementError struct {
	Symbol string
	deco   []string
}

func (err *UnknownElementError) Error() string {
	if len(err.deco) == 0 {
		return fmt.Sprintf("unknown element %q", err.Symbol)
	}
	return fmt.Sprintf("unknown element %q (%s)", err.Symbol, strings.Join(err.deco, " < "))
}

//Decorate adds dec to the decoration slice of the error and returns the slice.
func (err *UnknownElementError) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//errDecorate decorates err with the caller's name if err implements Error.
//Other errors are wrapped.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return fmt.Errorf("%s: %w", caller, err)
}
