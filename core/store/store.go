// Copyright (c) 2026 Showreel Team
// Showreel - terminal carousel presenter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package store persists playback state across runs: the last active slide
// per deck (so a kiosk resumes where it left off) and a play history for
// reporting. It abstracts the underlying database (SQLite, PostgreSQL or
// MySQL) behind a consistent interface via Bun dialects.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/uptrace/bun"
)

// ResumeModel maps the `resume` table: one row per deck fingerprint.
type ResumeModel struct {
	bun.BaseModel `bun:"table:resume"`
	Fingerprint   string    `bun:"fingerprint,pk"`
	SlideIndex    int       `bun:"slide_index"`
	UpdatedAt     time.Time `bun:"updated_at"`
}

// PlayModel maps the `plays` table: one row per playback session.
type PlayModel struct {
	bun.BaseModel `bun:"table:plays"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Fingerprint   string    `bun:"fingerprint"`
	DeckTitle     string    `bun:"deck_title"`
	SlideCount    int       `bun:"slide_count"`
	Advances      int       `bun:"advances"`
	StartedAt     time.Time `bun:"started_at"`
	EndedAt       time.Time `bun:"ended_at"`
}

// Play is a finished playback session as reported to callers.
type Play struct {
	Fingerprint string    `json:"fingerprint"`
	DeckTitle   string    `json:"deck_title"`
	SlideCount  int       `json:"slide_count"`
	Advances    int       `json:"advances"`
	StartedAt   time.Time `json:"started_at"`
	EndedAt     time.Time `json:"ended_at"`
}

// Store is the persistence interface consumed by the player and the CLI.
type Store interface {
	ResumeIndex(fingerprint string) (int, bool, error)
	SetResumeIndex(fingerprint string, index int) error
	RecordPlay(p Play) error
	Plays(limit int) ([]Play, error)
	ExportPlays(w io.Writer) error
	Close() error
}

type bunStore struct {
	bun *bun.DB
}

func (s *bunStore) ResumeIndex(fingerprint string) (int, bool, error) {
	ctx := context.Background()
	var r ResumeModel
	err := s.bun.NewSelect().Model(&r).Where("fingerprint = ?", fingerprint).Limit(1).Scan(ctx)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return r.SlideIndex, true, nil
}

func (s *bunStore) SetResumeIndex(fingerprint string, index int) error {
	ctx := context.Background()
	r := &ResumeModel{
		Fingerprint: fingerprint,
		SlideIndex:  index,
		UpdatedAt:   time.Now().UTC(),
	}

	// Update-then-insert instead of ON CONFLICT: the upsert syntax differs
	// across the three supported dialects.
	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.NewUpdate().
		Model(r).
		Column("slide_index", "updated_at").
		Where("fingerprint = ?", fingerprint).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update resume position: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := tx.NewInsert().Model(r).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert resume position: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	dbLogf("store: resume %s -> %d", fingerprint, index)
	return nil
}

func (s *bunStore) RecordPlay(p Play) error {
	ctx := context.Background()
	_, err := s.bun.NewInsert().Model(&PlayModel{
		Fingerprint: p.Fingerprint,
		DeckTitle:   p.DeckTitle,
		SlideCount:  p.SlideCount,
		Advances:    p.Advances,
		StartedAt:   p.StartedAt.UTC(),
		EndedAt:     p.EndedAt.UTC(),
	}).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to record play: %w", err)
	}
	return nil
}

func (s *bunStore) Plays(limit int) ([]Play, error) {
	ctx := context.Background()
	var rows []PlayModel
	q := s.bun.NewSelect().Model(&rows).Order("started_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, err
	}
	plays := make([]Play, len(rows))
	for i, r := range rows {
		plays[i] = Play{
			Fingerprint: r.Fingerprint,
			DeckTitle:   r.DeckTitle,
			SlideCount:  r.SlideCount,
			Advances:    r.Advances,
			StartedAt:   r.StartedAt,
			EndedAt:     r.EndedAt,
		}
	}
	return plays, nil
}

// ExportPlays writes the full play history as zstd-compressed JSON, newest
// first.
func (s *bunStore) ExportPlays(w io.Writer) error {
	plays, err := s.Plays(0)
	if err != nil {
		return err
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	enc := json.NewEncoder(zw)
	enc.SetIndent("", "  ")
	if err := enc.Encode(plays); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

func (s *bunStore) Close() error {
	return s.bun.Close()
}
