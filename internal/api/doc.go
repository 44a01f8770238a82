// Package api implements the HTTP layer for the postcode.tech API:
// request construction, status-code dispatch, usage-limit header
// extraction, and wire payload types.
package api
