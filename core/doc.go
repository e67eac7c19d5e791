// Package core provides the shared HTTP primitives used by clinickit
// middleware and modules: typed HTTP errors with stable machine-readable
// keys and a minimal JSON response envelope.
//
// Middleware in this repository never writes free-form error text to
// clients; every failure path goes through WriteError so API consumers
// get a predictable body:
//
//	{"error":{"code":401,"key":"unauthorized","message":"Unauthorized"}}
package core
