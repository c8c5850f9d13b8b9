package model

// Package model defines the domain data shared across the app: cat records
// fetched from the remote API, their preload state, the per-card decision
// ledger and the end-of-session summary. Types carry no UI dependencies so
// they can be exercised directly in tests.
