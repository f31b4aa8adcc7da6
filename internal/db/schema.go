package db

// SchemaVersion is recorded in schema_version on a fresh database.
const SchemaVersion = 1

// SchemaSQL is the complete schema of the activity log database.
//
// This is the single source of truth for the schema. Repository tests load it
// through GetSchemaSQL() instead of declaring their own tables.
const SchemaSQL = `
-- One row per file a run created or skipped
CREATE TABLE IF NOT EXISTS activity (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('base', 'controller', 'model', 'stub')),
	class TEXT,
	path TEXT NOT NULL,
	action TEXT NOT NULL CHECK(action IN ('created', 'skipped')),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_activity_run ON activity(run_id);
CREATE INDEX IF NOT EXISTS idx_activity_created ON activity(created_at);

CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// InitSchema creates the schema on db if it is missing.
func InitSchema(db Execer) error {
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	_, err := db.Exec("INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
