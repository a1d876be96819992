// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for it: listening port, the admin API key, the body limit
// applied to spreadsheet uploads and the route prefix the admin features mount under.
package server
