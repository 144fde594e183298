/*
 * registry.go, part of mlabs.
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

package model

import (
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

//Registry maps property ids to the models that predict them.
//It is not modified after Load, so it can be read concurrently.
type Registry map[string]Predictor

//IDs returns the property ids in the registry, sorted.
func (R Registry) IDs() []string {
	ret := make([]string, 0, len(R))
	for k := range R {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

//PropIDFromFilename returns the property id encoded in a model file name following
//the "ml<id>_<anything>" convention, if <id> is a known property.
func PropIDFromFilename(name string) (string, bool) {
	base := filepath.Base(name)
	if len(base) < 4 || base[:2] != "ml" || base[3] != '_' {
		return "", false
	}
	id := base[2:3]
	if _, ok := humanNames[id]; !ok {
		return "", false
	}
	return id, true
}

//Load reads the model artifacts in paths and returns a registry with those that could be
//read and contain a usable model with metadata. The others are skipped.
//The property id for the nth path (starting from 1) is the one in the model metadata, or
//the one in the file name, or, if neither is available, n.
//logger may be nil.
func Load(paths []string, logger *zap.Logger) Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := make(Registry)
	for n, path := range paths {
		base := filepath.Base(path)
		A, err := ReadArtifact(path)
		if err != nil {
			logger.Info("Skipping unreadable model file", zap.String("file", base), zap.Error(err))
			continue
		}
		id := ""
		if A.Metadata != nil && A.Metadata.PropID != "" {
			id = A.Metadata.PropID
			logger.Info("Property declared in model metadata", zap.String("property", id), zap.String("file", base))
		} else if fid, ok := PropIDFromFilename(base); ok {
			id = fid
			logger.Info("Detected property", zap.String("property", humanNames[id].Name), zap.String("file", base))
		} else {
			id = strconv.Itoa(n + 1)
			logger.Info("No property name detected", zap.String("file", base), zap.String("id", id))
		}
		p, err := A.Predictor()
		if err != nil {
			logger.Info("Skipping model without a usable predictor or metadata", zap.String("file", base), zap.Error(err))
			continue
		}
		if _, dup := reg[id]; dup {
			logger.Warn("Model replaces an earlier one for the same property", zap.String("property", id), zap.String("file", base))
		}
		reg[id] = p
		meta := p.Metadata()
		logger.Info("Model metadata", zap.String("property", id), zap.Int("width", p.Width()), zap.Float64("mae", meta.MAE), zap.Float64("r2", meta.R2))
	}
	logger.Info("Loaded property models", zap.Int("count", len(reg)))
	return reg
}
