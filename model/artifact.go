/*
 * artifact.go, part of mlabs.
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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//Kinds of models that can be stored in an artifact.
const (
	KindLinear = "linear"
	KindForest = "forest"
	KindKNN    = "knn"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

//Artifact is the serialized form of a trained model.
//Only the fields for the given Kind are used.
type Artifact struct {
	Kind      string    `json:"kind"`
	NFeatures int       `json:"n_features"`
	Metadata  *Metadata `json:"metadata,omitempty"`

	//linear
	Coef      []float64 `json:"coef,omitempty"`
	Intercept float64   `json:"intercept,omitempty"`

	//forest
	Trees []Tree `json:"trees,omitempty"`

	//knn
	K       int         `json:"k,omitempty"`
	Points  [][]float64 `json:"points,omitempty"`
	Targets []float64   `json:"targets,omitempty"`
}

//Predictor builds the model stored in the artifact. It returns an error if the
//artifact has no metadata, an unknown kind, or a payload inconsistent with NFeatures.
func (A *Artifact) Predictor() (Predictor, error) {
	if A.Metadata == nil {
		return nil, &Error{"artifact has no metadata", []string{"Artifact.Predictor"}}
	}
	if A.NFeatures < 1 {
		return nil, &Error{fmt.Sprintf("invalid n_features %d", A.NFeatures), []string{"Artifact.Predictor"}}
	}
	meta := *A.Metadata
	switch A.Kind {
	case KindLinear:
		if len(A.Coef) != A.NFeatures {
			return nil, &Error{fmt.Sprintf("%d coefficients for %d features", len(A.Coef), A.NFeatures), []string{"Artifact.Predictor"}}
		}
		return &Linear{meta: meta, coef: append([]float64(nil), A.Coef...), intercept: A.Intercept}, nil
	case KindForest:
		if len(A.Trees) == 0 {
			return nil, &Error{"forest without trees", []string{"Artifact.Predictor"}}
		}
		for i, t := range A.Trees {
			if err := t.validate(A.NFeatures); err != nil {
				return nil, &Error{fmt.Sprintf("tree %d: %s", i, err), []string{"Artifact.Predictor"}}
			}
		}
		return &Forest{meta: meta, width: A.NFeatures, trees: A.Trees}, nil
	case KindKNN:
		if A.K < 1 || len(A.Points) == 0 || len(A.Points) != len(A.Targets) {
			return nil, &Error{"knn needs k>0 and one target per point", []string{"Artifact.Predictor"}}
		}
		for i, p := range A.Points {
			if len(p) != A.NFeatures {
				return nil, &Error{fmt.Sprintf("point %d has %d features, expected %d", i, len(p), A.NFeatures), []string{"Artifact.Predictor"}}
			}
		}
		return &KNN{meta: meta, k: A.K, points: A.Points, targets: A.Targets}, nil
	}
	return nil, &Error{fmt.Sprintf("unknown model kind %q", A.Kind), []string{"Artifact.Predictor"}}
}

//DecodeArtifact decodes an artifact from data, which can be plain JSON
//or zstd-compressed JSON.
func DecodeArtifact(data []byte) (*Artifact, error) {
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("DecodeArtifact: %w", err)
		}
	}
	A := new(Artifact)
	if err := json.Unmarshal(data, A); err != nil {
		return nil, fmt.Errorf("DecodeArtifact: %w", err)
	}
	return A, nil
}

//ReadArtifact reads the artifact in the file name.
func ReadArtifact(name string) (*Artifact, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return DecodeArtifact(data)
}

//Save writes A to the file name, compressed with zstd if the name ends in ".zst".
func Save(name string, A *Artifact) error {
	data, err := json.Marshal(A)
	if err != nil {
		return err
	}
	if strings.HasSuffix(strings.ToLower(name), ".zst") {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return err
		}
		data = enc.EncodeAll(data, nil)
		enc.Close()
	}
	return os.WriteFile(name, data, 0o644)
}
