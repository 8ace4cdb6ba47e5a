// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the router wrapped in the
// recoverPanic and rateLimit middlewares.
//
//	GET    /v1/healthcheck    – service status and catalog size
//	GET    /v1/tools          – list the tools available for rent
//	GET    /v1/tools/:code    – show one tool's billing policy
//	POST   /v1/agreements     – draft and finalize a rental agreement
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)
	router.HandlerFunc(http.MethodGet, "/v1/tools", app.listToolsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/tools/:code", app.showToolHandler)
	router.HandlerFunc(http.MethodPost, "/v1/agreements", app.createAgreementHandler)

	return app.recoverPanic(app.rateLimit(router))
}
