package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func readInitMigration(t *testing.T) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	return string(content)
}

// Authored content must not outlive its author: articles and volunteer
// applications cascade on user deletion, while donations and event
// registrations keep their rows with the user reference nulled.
func TestInitMigrationUserCascades(t *testing.T) {
	schema := readInitMigration(t)

	tableBody := func(name string) string {
		t.Helper()
		re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + name + ` \((.*?)\);`)
		m := re.FindStringSubmatch(schema)
		if m == nil {
			t.Fatalf("table %s not found in migration", name)
		}
		return m[1]
	}

	column := func(table, col string) string {
		t.Helper()
		for _, line := range strings.Split(tableBody(table), "\n") {
			if strings.HasPrefix(strings.TrimSpace(line), col+" ") {
				return line
			}
		}
		t.Fatalf("column %s.%s not found in migration", table, col)
		return ""
	}

	tests := []struct {
		table, col string
		want       string
	}{
		{"articles", "author_id", "ON DELETE CASCADE"},
		{"volunteers", "user_id", "ON DELETE CASCADE"},
		{"donations", "user_id", "ON DELETE SET NULL"},
		{"event_registrations", "user_id", "ON DELETE SET NULL"},
		{"stories", "author_id", "ON DELETE SET NULL"},
		{"resources", "uploaded_by", "ON DELETE SET NULL"},
	}

	for _, tc := range tests {
		line := column(tc.table, tc.col)
		if !strings.Contains(line, tc.want) {
			t.Errorf("%s.%s: got %q, want %s", tc.table, tc.col, strings.TrimSpace(line), tc.want)
		}
	}

	if !strings.Contains(column("articles", "author_id"), "NOT NULL") {
		t.Error("articles.author_id must be NOT NULL: the model scans it into a plain string")
	}
}
