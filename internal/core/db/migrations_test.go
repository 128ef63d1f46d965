package db

import (
	"testing"
)

// The schema files open with -- comment headers that share a semicolon
// chunk with the first CREATE TABLE. A fresh MigrateUp must still produce
// a queryable table.
func TestMigrateUpAppliesCommentHeadedSchema(t *testing.T) {
	database := openTestDB(t)

	var count int
	if err := database.Get(&count, "SELECT COUNT(*) FROM property_settings"); err != nil {
		t.Fatalf("property_settings not created: %v", err)
	}
	if count != 0 {
		t.Errorf("fresh table has %d rows, want 0", count)
	}

	if err := database.Get(&count,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'idx_property_settings_property'"); err != nil {
		t.Fatalf("index lookup: %v", err)
	}
	if count != 1 {
		t.Error("idx_property_settings_property not created")
	}
}

func TestStripCommentLines(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		want  string
	}{
		{
			name:  "comment header kept statement",
			chunk: "-- header\n-- more header\n\nCREATE TABLE t (a TEXT)",
			want:  "CREATE TABLE t (a TEXT)",
		},
		{
			name:  "comments only",
			chunk: "-- nothing\n  -- here",
			want:  "",
		},
		{
			name:  "blank chunk",
			chunk: "\n\t\n",
			want:  "",
		},
		{
			name:  "interior comment line",
			chunk: "CREATE TABLE t (\n    a TEXT\n    -- trailing note\n)",
			want:  "CREATE TABLE t (\n    a TEXT\n)",
		},
		{
			name:  "plain statement untouched",
			chunk: "  CREATE INDEX i ON t (a)  ",
			want:  "CREATE INDEX i ON t (a)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCommentLines(tt.chunk); got != tt.want {
				t.Errorf("stripCommentLines() = %q, want %q", got, tt.want)
			}
		})
	}
}
