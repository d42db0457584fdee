// Package harness provides utilities for integration testing the rentdesk CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - RENTDESK_HOME: Isolated per test (temp directory)
//   - RENTDESK_DEBUG: Disabled to reduce noise
//   - RENTDESK_OPERATOR: Fixed so rentals record a known operator
package harness
