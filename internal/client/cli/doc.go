// Package cli provides the interactive community client.
//
// It renders the community feed in the terminal and drives the post
// workflow: pick an image, type a caption, upload, and see the refreshed
// feed. A background connectivity watcher shows online/offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, ConsoleNotifier and runREPL for details.
package cli
