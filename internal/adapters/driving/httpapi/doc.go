// Package httpapi exposes the portfolio collection over a small JSON
// HTTP API for the website frontend.
package httpapi
