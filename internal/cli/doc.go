// Package cli implements the interactive NewsBoard terminal client.
//
// The client works directly against the local store: it restores the
// persisted session on start, reads commands in a REPL and prompts for any
// missing input.
package cli
