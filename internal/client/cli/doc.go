// Package cli is the interactive terminal client for the contacts API.
//
// On start the client restores a saved token from its local database and
// checks it against the server. Commands that touch contacts are wrapped by
// requireAuth, which sends a signed-out user to the login prompt instead.
//
// The REPL is started with App.Run and blocks until the user exits or stdin
// is closed.
package cli
