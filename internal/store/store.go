/*
 * store.go, part of mlabs.
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

// Package store keeps reference descriptors and a log of served predictions
// in a SQL database. Postgres (lib/pq) and SQLite (modernc) are supported.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	_ "modernc.org/sqlite"

	chem "github.com/rmera/mlabs"
	"github.com/rmera/mlabs/predict"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store is a handle to the kNN table and the prediction log.
// It is safe for concurrent use.
type Store struct {
	db     *sqlx.DB
	driver string
	table  string
	logger *zap.Logger
}

// Neighbor is a stored descriptor and its distance to a query.
type Neighbor struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
}

type descriptorRow struct {
	ID         string `db:"id"`
	Label      string `db:"label"`
	Descriptor string `db:"descriptor"`
}

// Open connects to the database and creates the tables if needed.
// driver is "postgres" or "sqlite". Predictions go to the table
// <table>_predictions.
func Open(ctx context.Context, driver, dsn, table string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if driver != "postgres" && driver != "sqlite" {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	db, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}
	if driver == "sqlite" {
		// each connection to an in-memory sqlite db is a different database
		db.SetMaxOpenConns(1)
	}
	s := &Store{db: db, driver: driver, table: table, logger: logger}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Debug("store opened", zap.String("driver", driver), zap.String("table", table))
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) predictionsTable() string {
	return s.table + "_predictions"
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + s.table + ` (
			id TEXT PRIMARY KEY,
			label TEXT NOT NULL,
			descriptor TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ` + s.predictionsTable() + ` (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			results TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
	}
	for _, q := range stmts {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to create tables: %w", err)
		}
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// SaveDescriptor stores d under label and returns the new row id.
func (s *Store) SaveDescriptor(ctx context.Context, label string, d chem.Descriptor) (string, error) {
	if len(d) == 0 {
		return "", fmt.Errorf("refusing to store an empty descriptor")
	}
	data, err := json.Marshal([]float64(d))
	if err != nil {
		return "", fmt.Errorf("failed to marshal descriptor: %w", err)
	}
	id := uuid.NewString()
	q := s.db.Rebind(`INSERT INTO ` + s.table + ` (id, label, descriptor, created_at) VALUES (?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, q, id, label, string(data), now()); err != nil {
		return "", fmt.Errorf("failed to save descriptor: %w", err)
	}
	s.logger.Info("descriptor stored", zap.String("id", id), zap.String("label", label), zap.Int("atoms", d.Atoms()))
	return id, nil
}

// Nearest returns the k stored descriptors closest to d, closest first.
// Distances are Euclidean over the width both descriptors share.
func (s *Store) Nearest(ctx context.Context, d chem.Descriptor, k int) ([]Neighbor, error) {
	if k <= 0 {
		return nil, fmt.Errorf("k must be positive, got %d", k)
	}
	var rows []descriptorRow
	if err := s.db.SelectContext(ctx, &rows, `SELECT id, label, descriptor FROM `+s.table); err != nil {
		return nil, fmt.Errorf("failed to read descriptors: %w", err)
	}
	ret := make([]Neighbor, 0, len(rows))
	for _, r := range rows {
		var ref []float64
		if err := json.Unmarshal([]byte(r.Descriptor), &ref); err != nil {
			s.logger.Warn("skipping malformed descriptor", zap.String("id", r.ID), zap.Error(err))
			continue
		}
		w := min(len(ref), len(d))
		dist := 0.0
		if w > 0 {
			dist = floats.Distance(ref[:w], d[:w], 2)
		}
		ret = append(ret, Neighbor{ID: r.ID, Label: r.Label, Distance: dist})
	}
	sort.SliceStable(ret, func(i, j int) bool { return ret[i].Distance < ret[j].Distance })
	if len(ret) > k {
		ret = ret[:k]
	}
	return ret, nil
}

// Count returns the number of stored descriptors.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+s.table); err != nil {
		return 0, fmt.Errorf("failed to count descriptors: %w", err)
	}
	return n, nil
}

// RecordPrediction logs the results served for source and returns the record id.
func (s *Store) RecordPrediction(ctx context.Context, source string, res predict.Results) (string, error) {
	data, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	id := uuid.NewString()
	q := s.db.Rebind(`INSERT INTO ` + s.predictionsTable() + ` (id, source, results, created_at) VALUES (?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, q, id, source, string(data), now()); err != nil {
		return "", fmt.Errorf("failed to record prediction: %w", err)
	}
	s.logger.Debug("prediction recorded", zap.String("id", id), zap.String("source", source))
	return id, nil
}

// Prediction returns the results recorded under id.
func (s *Store) Prediction(ctx context.Context, id string) (predict.Results, error) {
	var data string
	q := s.db.Rebind(`SELECT results FROM ` + s.predictionsTable() + ` WHERE id = ?`)
	if err := s.db.GetContext(ctx, &data, q, id); err != nil {
		return nil, fmt.Errorf("failed to read prediction %s: %w", id, err)
	}
	var res predict.Results
	if err := json.Unmarshal([]byte(data), &res); err != nil {
		return nil, fmt.Errorf("malformed prediction %s: %w", id, err)
	}
	return res, nil
}
