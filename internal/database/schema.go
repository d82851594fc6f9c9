// FilePath: internal/database/schema.go
package database

// The schema is fixed; migrations happen out of process. EnsureSchema only
// brings a fresh database up to that schema, the way a first deployment does.
var schemaStatements = []string{
	`DO $$ BEGIN
		CREATE TYPE sensor_type_enum AS ENUM (
			'temperature', 'humidity', 'pressure', 'motion', 'light', 'sound', 'other'
		);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE sensor_status_enum AS ENUM ('active', 'inactive', 'maintenance');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE data_status_enum AS ENUM ('pending', 'validated', 'archived', 'invalid');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`CREATE TABLE IF NOT EXISTS units (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		location VARCHAR(500) NOT NULL,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sensors (
		id SERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		sensor_type sensor_type_enum NOT NULL,
		unit_id INTEGER NOT NULL REFERENCES units(id) ON DELETE CASCADE,
		status sensor_status_enum NOT NULL DEFAULT 'active',
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sensor_data (
		id SERIAL PRIMARY KEY,
		sensor_id INTEGER NOT NULL REFERENCES sensors(id) ON DELETE CASCADE,
		value DOUBLE PRECISION NOT NULL,
		unit VARCHAR(50),
		status data_status_enum NOT NULL DEFAULT 'pending',
		timestamp TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_units_name ON units(name)`,
	`CREATE INDEX IF NOT EXISTS idx_units_created_at ON units(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sensors_unit_id ON sensors(unit_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sensors_type ON sensors(sensor_type)`,
	`CREATE INDEX IF NOT EXISTS idx_sensors_status ON sensors(status)`,
	`CREATE INDEX IF NOT EXISTS idx_sensors_created_at ON sensors(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sensor_data_sensor_id ON sensor_data(sensor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sensor_data_status ON sensor_data(status)`,
	`CREATE INDEX IF NOT EXISTS idx_sensor_data_timestamp ON sensor_data(timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_sensor_data_sensor_timestamp ON sensor_data(sensor_id, timestamp DESC)`,
}

// EnsureSchema applies the fixed schema to a fresh database. Every statement
// is idempotent, so running it against an initialized store is a no-op.
func EnsureSchema(db DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.GetDB().Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
