// Package app wires stores, services and the search engine together for
// the CLI.
package app
