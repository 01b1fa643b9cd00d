// Package banksdk provides a typed Go client for the bankd HTTP API along
// with the wire types and error values shared between the server handlers
// and the client. Keeping both sides on one set of structs is what stops the
// request/response shapes drifting apart.
package banksdk
