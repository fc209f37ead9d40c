// Package auth authenticates local accounts and guards the admin area.
//
// LocalProvider checks an email and password against the user store. Accounts flagged
// for password rotation, for example users recreated by a restore without a credential,
// are refused until an operator sets a new password.
//
// Gate resolves the caller from the session cookie and reloads the account on every
// request, so a removed or demoted admin loses access at once:
//
//	gate := auth.NewGate(db)
//	app.Get("/api/admin/backup/export/sql", gate.RequireAdmin(), handler)
//
// RequireAdmin answers 401 without a valid session and 403 for accounts that are not admins.
package auth
