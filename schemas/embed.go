// Package schemas provides embedded SQL migration files for the MySQL history store.
package schemas

import "embed"

// Migrations contains all SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
