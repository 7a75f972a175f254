// Package cli provides the interactive my-space command-line client.
//
// It wires configuration, the local session store, the authentication
// service and the drive dashboard into an interactive REPL. Typical flow:
// restore or prompt for a session, then browse and mutate the drive with
// short commands.
//
// Key features:
//   - Login / Logout with a locally persisted session
//   - Browse: ls, cd, up, root, crumb, view, search, mode
//   - Mutate: mkdir, upload, rename, rm, star, share, download
//   - Bulk selection: select, deselect, selectall, clearsel
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
