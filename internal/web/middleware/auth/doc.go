// Package auth provides the page redirect middleware of the web application.
//
// Admin pages without a valid session are redirected to the login page, and the login page
// redirects to the admin home once a session exists. Static files, the JSON api, the health
// check and the metrics endpoint pass untouched; the api is guarded by the session gate and
// answers with status codes instead of redirects.
//
// Usage:
//
//	app.Use(authmiddleware.Middleware)
package auth
