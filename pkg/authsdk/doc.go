// Package authsdk contains the wire types, error taxonomy and HTTP client
// for the hirewire authentication service.
//
// The server side uses the error values here as its single conversion point
// from internal failures to externally visible responses; consumers use
// Client to register, log in and resolve the authenticated principal.
package authsdk
