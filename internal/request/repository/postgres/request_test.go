package postgres

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

// The queries in this package are written against the schema shipped in
// migrations/001_init.sql. Verify every column the repository projects is
// actually declared there, so a schema rename cannot drift past review.
func TestMigrationDeclaresRequestColumns(t *testing.T) {
	ddl, err := os.ReadFile("../../../../migrations/001_init.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	start := strings.Index(string(ddl), "CREATE TABLE IF NOT EXISTS "+tableRequests)
	if start < 0 {
		t.Fatalf("migration does not create table %q", tableRequests)
	}
	end := strings.Index(string(ddl)[start:], ");")
	if end < 0 {
		t.Fatalf("unterminated CREATE TABLE for %q", tableRequests)
	}
	block := string(ddl)[start : start+end]

	for _, col := range requestColumns {
		name, ok := col.(string)
		if !ok {
			t.Fatalf("unexpected column spec %v", col)
		}
		re := regexp.MustCompile(`(?m)^\s*` + regexp.QuoteMeta(name) + `\s`)
		if !re.MatchString(block) {
			t.Errorf("migration table %s is missing column %q", tableRequests, name)
		}
	}
}
