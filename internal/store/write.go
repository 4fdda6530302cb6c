package store

import (
	"context"
	"fmt"

	"github.com/roach88/ifgen/internal/ir"
)

// Render is one manifest row.
type Render struct {
	ID               string     `json:"id"`
	Seq              int64      `json:"seq"`
	Interface        string     `json:"interface"`
	Mode             string     `json:"mode"`
	Origin           string     `json:"origin"`
	Fingerprint      string     `json:"fingerprint"`
	OutputHash       string     `json:"output_hash"`
	OutputPath       string     `json:"output_path,omitempty"`
	Summary          ir.Summary `json:"summary"`
	GeneratorVersion string     `json:"generator_version"`
	DeclVersion      string     `json:"decl_version"`
}

// NewRender fills the derived columns of a manifest row: the id, the
// output hash and the version stamps. Seq is assigned by RecordRender.
func NewRender(iface, mode, origin, fingerprint, output, outputPath string, summary ir.Summary) Render {
	hash := ir.ArtifactHash(output)
	return Render{
		ID:               ir.RenderID(fingerprint, mode, hash),
		Interface:        iface,
		Mode:             mode,
		Origin:           origin,
		Fingerprint:      fingerprint,
		OutputHash:       hash,
		OutputPath:       outputPath,
		Summary:          summary,
		GeneratorVersion: ir.GeneratorVersion,
		DeclVersion:      ir.DeclVersion,
	}
}

// RecordRender appends r to the manifest and returns the stored row.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - recording an identical
// render again returns the original row with inserted=false.
func (s *Store) RecordRender(ctx context.Context, r Render) (stored Render, inserted bool, err error) {
	summaryJSON, err := marshalSummary(r.Summary)
	if err != nil {
		return Render{}, false, fmt.Errorf("record render: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Render{}, false, fmt.Errorf("record render: begin: %w", err)
	}
	defer tx.Rollback()

	var next int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM renders`).Scan(&next); err != nil {
		return Render{}, false, fmt.Errorf("record render: next seq: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO renders
		(id, seq, interface, mode, origin, fingerprint, output_hash, output_path, summary, generator_version, decl_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		r.ID,
		next,
		r.Interface,
		r.Mode,
		r.Origin,
		r.Fingerprint,
		r.OutputHash,
		r.OutputPath,
		summaryJSON,
		r.GeneratorVersion,
		r.DeclVersion,
	)
	if err != nil {
		return Render{}, false, fmt.Errorf("record render: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return Render{}, false, fmt.Errorf("record render: rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Render{}, false, fmt.Errorf("record render: commit: %w", err)
	}

	stored, err = s.GetRender(ctx, r.ID)
	if err != nil {
		return Render{}, false, err
	}
	return stored, n == 1, nil
}
