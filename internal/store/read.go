package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when no manifest row matches.
var ErrNotFound = errors.New("render not found")

const renderColumns = `id, seq, interface, mode, origin, fingerprint, output_hash, output_path, summary, generator_version, decl_version`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRender(row rowScanner) (Render, error) {
	var r Render
	var summaryJSON string
	if err := row.Scan(
		&r.ID,
		&r.Seq,
		&r.Interface,
		&r.Mode,
		&r.Origin,
		&r.Fingerprint,
		&r.OutputHash,
		&r.OutputPath,
		&summaryJSON,
		&r.GeneratorVersion,
		&r.DeclVersion,
	); err != nil {
		return Render{}, err
	}

	summary, err := unmarshalSummary(summaryJSON)
	if err != nil {
		return Render{}, err
	}
	r.Summary = summary
	return r, nil
}

// GetRender returns the row with the given id.
func (s *Store) GetRender(ctx context.Context, id string) (Render, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+renderColumns+` FROM renders WHERE id = ?`, id)
	r, err := scanRender(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Render{}, fmt.Errorf("get render %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Render{}, fmt.Errorf("get render %s: %w", id, err)
	}
	return r, nil
}

// ListRenders returns manifest rows in logical order. An empty iface
// lists every interface.
//
// Returns an empty slice (not nil) if nothing was recorded.
func (s *Store) ListRenders(ctx context.Context, iface string) ([]Render, error) {
	query := `SELECT ` + renderColumns + ` FROM renders`
	var args []any
	if iface != "" {
		query += ` WHERE interface = ?`
		args = append(args, iface)
	}
	query += ` ORDER BY seq ASC, id ASC COLLATE BINARY`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query renders: %w", err)
	}
	defer rows.Close()

	renders := []Render{}
	for rows.Next() {
		r, err := scanRender(rows)
		if err != nil {
			return nil, fmt.Errorf("scan render: %w", err)
		}
		renders = append(renders, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate renders: %w", err)
	}
	return renders, nil
}

// LatestRender returns the most recent row for an interface and mode.
func (s *Store) LatestRender(ctx context.Context, iface, mode string) (Render, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+renderColumns+`
		FROM renders
		WHERE interface = ? AND mode = ?
		ORDER BY seq DESC
		LIMIT 1
	`, iface, mode)
	r, err := scanRender(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Render{}, fmt.Errorf("latest render %s/%s: %w", iface, mode, ErrNotFound)
	}
	if err != nil {
		return Render{}, fmt.Errorf("latest render %s/%s: %w", iface, mode, err)
	}
	return r, nil
}
