package db

// SchemaSQL is the complete schema of a session database.
// Tests use GetSchemaSQL() rather than declaring their own tables, so a
// repository that references a missing column fails immediately.
//
// Questions keep insertion order through the position column, which is
// assigned on append and never rewritten by updates.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS questions (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	id INTEGER NOT NULL UNIQUE,
	translations TEXT NOT NULL,
	correct_answers TEXT NOT NULL,
	min_answers INTEGER NOT NULL DEFAULT 0,
	max_answers INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS activity_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	actor TEXT NOT NULL,
	entity_type TEXT NOT NULL,
	entity_id INTEGER NOT NULL,
	action TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the session schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
