// Package api implements the HTTP handlers for the user-directory service:
// token issuance and refresh, and the user CRUD endpoints with their
// ownership rules. Handlers receive their collaborators (store, token
// service, hasher) through constructors; nothing is resolved implicitly.
package api
