/*
 * doc.go, part of mlabs.
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

/*
Package predict turns crystal structures into property estimates.

An Engine builds the descriptor of a structure (always with overreach, so wide models
get enough atoms) and feeds it to every model in a model.Registry. Two engines exist:
ModelBacked, which uses trained models, and Synthetic, which needs none and reports a
placeholder value for every known property, so services can be tried end to end without
models. NewEngine picks one depending on whether the registry is empty.

Predictions are rounded to the precision declared for each property. The Legend functions
give the display information (name, units, symbol, rounding) for property ids.
*/
package predict
