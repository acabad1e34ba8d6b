// Package api exposes the NewsBoard services as a JSON HTTP API.
//
// Requests authenticate with an HS256 bearer token obtained from
// /api/login or /api/register. Reading public news needs no token.
package api
