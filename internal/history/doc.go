// Package history persists a record of each conversion run in a local
// SQLite database so past runs can be reviewed with the history command.
package history
