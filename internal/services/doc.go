// Package services defines the shared error taxonomy for pipeline
// components. Sentinel markers let the CLI distinguish configuration
// problems from external tool failures when choosing exit messaging.
package services
