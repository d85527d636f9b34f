// Package cli provides the interactive SaveBank command-line client.
//
// It wires configuration, the selected store (remote server, local SQLite
// file, or memory), the save/retrieve/render services and the system
// clipboard into a small REPL:
//
//   - save [text]  store a save file string (prompts when text is omitted)
//   - list         show stored saves, newest first
//   - copy N       copy save N of the last listing to the clipboard
//
// For the remote store a background watcher pings the server and shows
// online/offline in the prompt.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
