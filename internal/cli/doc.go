// Package cli handles command-line argument parsing and validation, producing
// the app.Config the application runs with.
package cli
