package dto

import "github.com/jhoicas/seasafety-api/internal/domain/ledger"

// ReconcileResponse respuesta de GET /api/ledger/reconcile.
type ReconcileResponse struct {
	Balanced      bool                 `json:"balanced"`
	Discrepancies []ledger.Discrepancy `json:"discrepancies"`
}
