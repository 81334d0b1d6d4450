package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vortexbridge/bridge-core/bridge/estimate"
	"github.com/vortexbridge/bridge-core/bridge/service"
)

type CostEstimator interface {
	EstimateCost(ctx context.Context, params service.Params) (*estimate.CostEstimate, error)
}

type EstimateBody struct {
	Token                string  `json:"token"`
	Amount               *BigInt `json:"amount"`
	Destination          string  `json:"destination"`
	PayDestinationFeeNow bool    `json:"payDestinationFeeNow"`
	PayPriorityFeeNow    bool    `json:"payPriorityFeeNow"`
}

type EstimateResponse struct {
	RequiredBalance *BigInt `json:"requiredBalance"`
	TotalFees       *BigInt `json:"totalFees"`
}

// EstimateHandler prices a bridging intent for the paying chain in the path.
type EstimateHandler struct {
	estimators map[string]CostEstimator
}

func NewEstimateHandler(estimators map[string]CostEstimator) *EstimateHandler {
	return &EstimateHandler{
		estimators: estimators,
	}
}

// HandleEstimate plans the requested transfer against current chain state and
// returns the required balance and total fees in smallest native units.
func (h *EstimateHandler) HandleEstimate(w http.ResponseWriter, r *http.Request) {
	b := &EstimateBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	if err := h.validate(b); err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	estimator, ok := h.estimators[vars["chain"]]
	if !ok {
		JSONError(w, fmt.Errorf("chain '%s' not supported", vars["chain"]), http.StatusNotFound)
		return
	}

	costs, err := estimator.EstimateCost(r.Context(), service.Params{
		TokenAddress:         b.Token,
		Amount:               b.Amount.Int,
		Destination:          b.Destination,
		PayDestinationFeeNow: b.PayDestinationFeeNow,
		PayPriorityFeeNow:    b.PayPriorityFeeNow,
	})
	if err != nil {
		JSONError(w, fmt.Errorf("estimation failed: %s", err), http.StatusUnprocessableEntity)
		return
	}

	data, _ := json.Marshal(&EstimateResponse{
		RequiredBalance: &BigInt{costs.RequiredBalance},
		TotalFees:       &BigInt{costs.TotalFees},
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *EstimateHandler) validate(b *EstimateBody) error {
	if b.Token == "" {
		return fmt.Errorf("missing field 'token'")
	}
	if b.Amount == nil {
		return fmt.Errorf("missing field 'amount'")
	}
	if b.Destination == "" {
		return fmt.Errorf("missing field 'destination'")
	}
	return nil
}
