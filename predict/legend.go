/*
 * legend.go, part of mlabs.
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

package predict

import "github.com/rmera/mlabs/model"

//Legend is the display information for a property.
type Legend = model.Property

//LegendFor returns the display information for the property id. Unknown ids get
//a generic entry with "arb.u." units, symbol P<id> and no decimals.
func LegendFor(id string) Legend {
	if p, ok := model.HumanName(id); ok {
		return p
	}
	return Legend{
		Name:     "Unspecified property " + id,
		Units:    "arb.u.",
		Symbol:   "P" + id,
		Rounding: 0,
	}
}

//BuildLegend returns the display information for each of the ids.
func BuildLegend(ids []string) map[string]Legend {
	ret := make(map[string]Legend, len(ids))
	for _, id := range ids {
		ret[id] = LegendFor(id)
	}
	return ret
}
