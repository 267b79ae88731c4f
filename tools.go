//go:build tools

package tools

// Tooling used by the repo, outside of the binaries:
// - github.com/pressly/goose/v3/cmd/goose, pinned via the tool block in go.mod
//   (`go tool goose -dir migrations postgres "$DATABASE_DSN" status`)
// - github.com/matryer/moq, run through the //go:generate lines in *_test.go
