package migration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
)

const upStub = `-- {{.Version}}_{{.Name}}
-- created {{.Timestamp}}
{{- if .Description}}
-- {{.Description}}
{{- end}}

-- schema changes go here

`

const downStub = `-- {{.Version}}_{{.Name}} rollback
-- created {{.Timestamp}}

-- revert the schema changes here

`

// MigrationFile describes a generated up/down pair.
type MigrationFile struct {
	Version     string
	Name        string
	Description string
	Timestamp   string
	UpPath      string
	DownPath    string
}

// CreateMigration writes a timestamped up/down stub pair into migrationsDir,
// creating the directory if needed. The version prefix sorts
// chronologically, which is what golang-migrate orders by.
func CreateMigration(migrationsDir, name, description string) (*MigrationFile, error) {
	if err := os.MkdirAll(migrationsDir, 0755); err != nil {
		return nil, fmt.Errorf("create migrations directory: %w", err)
	}

	now := time.Now()
	version := now.Format("20060102150405")
	base := version + "_" + sanitizeName(name)

	mf := &MigrationFile{
		Version:     version,
		Name:        name,
		Description: description,
		Timestamp:   now.Format(time.RFC3339),
		UpPath:      filepath.Join(migrationsDir, base+".up.sql"),
		DownPath:    filepath.Join(migrationsDir, base+".down.sql"),
	}

	up, err := renderStub(upStub, mf)
	if err != nil {
		return nil, err
	}
	down, err := renderStub(downStub, mf)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(mf.UpPath, up, 0644); err != nil {
		return nil, fmt.Errorf("write up migration: %w", err)
	}
	if err := os.WriteFile(mf.DownPath, down, 0644); err != nil {
		// Never leave half a pair behind.
		_ = os.Remove(mf.UpPath)
		return nil, fmt.Errorf("write down migration: %w", err)
	}

	return mf, nil
}

func renderStub(stub string, mf *MigrationFile) ([]byte, error) {
	tmpl, err := template.New("stub").Parse(stub)
	if err != nil {
		return nil, fmt.Errorf("parse migration stub: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, mf); err != nil {
		return nil, fmt.Errorf("render migration stub: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeName lowers a migration name into a safe file name: runs of
// spaces, dashes and underscores collapse to single underscores, anything
// else non-alphanumeric is dropped.
func sanitizeName(name string) string {
	lowered := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ' || r == '-' || r == '_':
			return ' '
		}
		return -1
	}, name)
	return strings.Join(strings.Fields(lowered), "_")
}

// ListMigrations returns the sorted base names of the up migrations in a
// directory. A missing directory lists as empty rather than erroring.
func ListMigrations(migrationsDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(migrationsDir, "*.up.sql"))
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(filepath.Base(match), ".up.sql"))
	}
	sort.Strings(names)
	return names, nil
}
