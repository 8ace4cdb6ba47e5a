// cmd/api/handlers.go
// This file contains the HTTP request handlers for tools and agreements.
package main

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/aoideee/toolrenter/internal/data"
	"github.com/aoideee/toolrenter/internal/rental"
)

// healthcheckHandler handles GET /v1/healthcheck.
func (app *applicationDependencies) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	body := envelope{
		"status":      "available",
		"environment": app.config.environment,
		"version":     appVersion,
		"tools":       app.catalog.Len(),
	}
	if err := app.writeJSON(w, http.StatusOK, body, nil); err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listToolsHandler handles GET /v1/tools.
func (app *applicationDependencies) listToolsHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"tools": app.catalog.Tools()}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showToolHandler handles GET /v1/tools/:code. The code is matched
// case-insensitively.
func (app *applicationDependencies) showToolHandler(w http.ResponseWriter, r *http.Request) {
	tool, err := app.catalog.Lookup(app.readCodeParam(r))
	if err != nil {
		switch {
		case errors.Is(err, data.ErrToolNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"tool": tool}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// agreementResponse is a finalized agreement as returned by the API.
type agreementResponse struct {
	ID string `json:"id"`
	rental.Receipt
	ReceiptText string `json:"receipt_text"`
}

// createAgreementHandler handles POST /v1/agreements.
// It validates the four raw fields, finalizes the agreement and responds with
// the charge breakdown and the printable receipt. Field errors come back as
// 422 with one message per field.
func (app *applicationDependencies) createAgreementHandler(w http.ResponseWriter, r *http.Request) {
	var input rental.Input

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	agreement := rental.NewAgreement(app.catalog)
	if v := agreement.Apply(input); !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	receipt, cached, err := app.finalize(r, agreement)
	if err != nil {
		switch {
		case errors.Is(err, rental.ErrIncomplete):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	headers := make(http.Header)
	headers.Set("X-Receipt-Cache", "miss")
	if cached {
		headers.Set("X-Receipt-Cache", "hit")
	}

	resp := agreementResponse{
		ID:          uuid.NewString(),
		Receipt:     receipt,
		ReceiptText: receipt.String(),
	}
	err = app.writeJSON(w, http.StatusCreated, envelope{"agreement": resp}, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// finalize returns the cached receipt for the agreement's input set or
// computes and caches it. Cache failures are logged and never fail the request.
func (app *applicationDependencies) finalize(r *http.Request, a *rental.Agreement) (rental.Receipt, bool, error) {
	key, ok := a.Key()
	if ok {
		receipt, hit, err := app.receipts.Get(r.Context(), key)
		if err != nil {
			app.logError(r, err)
		}
		if hit {
			return receipt, true, nil
		}
	}

	receipt, err := a.Finalize()
	if err != nil {
		return rental.Receipt{}, false, err
	}

	if err := app.receipts.Set(r.Context(), key, receipt); err != nil {
		app.logError(r, err)
	}
	return receipt, false, nil
}
