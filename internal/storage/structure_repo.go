package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// StructureRepo caches downloaded SDF payloads keyed by CID and record
// type. It satisfies chem.StructureCache.
type StructureRepo struct {
	db *sql.DB
}

// NewStructureRepo creates a new StructureRepo.
func NewStructureRepo(db *sql.DB) *StructureRepo {
	return &StructureRepo{db: db}
}

// Get returns the cached SDF for (cid, recordType).
// Returns "" and ErrNotFound if not cached.
func (r *StructureRepo) Get(ctx context.Context, cid int, recordType string) (string, error) {
	var sdf string
	err := r.db.QueryRowContext(ctx,
		"SELECT sdf FROM structures WHERE cid = ? AND record_type = ?",
		cid, recordType,
	).Scan(&sdf)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query structure cache: %w", err)
	}
	return sdf, nil
}

// Put stores the SDF for (cid, recordType), replacing any prior entry.
func (r *StructureRepo) Put(ctx context.Context, cid int, recordType, sdf string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO structures (cid, record_type, sdf) VALUES (?, ?, ?)
		 ON CONFLICT (cid, record_type) DO UPDATE SET sdf = excluded.sdf, fetched_at = CURRENT_TIMESTAMP`,
		cid, recordType, sdf,
	)
	if err != nil {
		return fmt.Errorf("failed to store structure: %w", err)
	}
	return nil
}
