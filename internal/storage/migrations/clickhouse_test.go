package migrations

import "testing"

func TestSplitStatements(t *testing.T) {
	input := `
-- leading comment
CREATE TABLE a (x String) ENGINE = MergeTree() ORDER BY x;

-- another comment
CREATE TABLE b (y String) ENGINE = MergeTree() ORDER BY y;
`
	stmts := splitStatements(input)

	if len(stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(stmts), stmts)
	}
	if stmts[0] != "CREATE TABLE a (x String) ENGINE = MergeTree() ORDER BY x" {
		t.Errorf("unexpected first statement: %q", stmts[0])
	}
}

func TestSplitStatements_Empty(t *testing.T) {
	if stmts := splitStatements("-- only comments\n\n"); len(stmts) != 0 {
		t.Errorf("expected no statements, got %v", stmts)
	}
}

func TestValidateNoSemicolonInStrings(t *testing.T) {
	if err := validateNoSemicolonInStrings(`SELECT 'a;b'`); err == nil {
		t.Error("semicolon inside string literal must be rejected")
	}
	if err := validateNoSemicolonInStrings(`SELECT 'ab'; SELECT 'cd'`); err != nil {
		t.Errorf("semicolon outside strings rejected: %v", err)
	}
	// Escaped quotes do not open a string.
	if err := validateNoSemicolonInStrings(`SELECT 'it''s fine'; SELECT 1`); err != nil {
		t.Errorf("escaped quote handling broken: %v", err)
	}
}

func TestDatabaseFromDSN(t *testing.T) {
	db, err := databaseFromDSN("clickhouse://default:@localhost:9000/xrpl")
	if err != nil || db != "xrpl" {
		t.Errorf("databaseFromDSN = (%s, %v), want (xrpl, nil)", db, err)
	}

	if _, err := databaseFromDSN("clickhouse://localhost:9000"); err == nil {
		t.Error("dsn without database must be rejected")
	}
}
