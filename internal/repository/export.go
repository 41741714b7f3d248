package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type exportRepository struct {
	api Requester
	now func() time.Time
}

// NewExportRepository creates a new ExportRepository.
func NewExportRepository(api Requester) ExportRepository {
	return &exportRepository{api: api, now: time.Now}
}

func (r *exportRepository) Export(ctx context.Context, dir string) (string, error) {
	data, err := r.api.Download(ctx, "export")
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("finance_export_%d.json", r.now().Unix()))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing export: %w", err)
	}
	return path, nil
}
