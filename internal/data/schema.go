package data

import _ "embed"

// Schema is the full database schema. It is idempotent; migrate.Run applies
// it at startup and the test harness applies it before integration tests run.
//
//go:embed schema.sql
var Schema string
