package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vortexbridge/bridge-core/bridge/service"
	"github.com/vortexbridge/bridge-core/bridge/submit"
)

type Bridger interface {
	Bridge(ctx context.Context, params service.Params) (submit.Outcome, error)
}

type BridgingBody struct {
	Token                string  `json:"token"`
	Amount               *BigInt `json:"amount"`
	Destination          string  `json:"destination"`
	PayDestinationFeeNow bool    `json:"payDestinationFeeNow"`
	PayPriorityFeeNow    bool    `json:"payPriorityFeeNow"`
}

type BridgingResponse struct {
	Status     string `json:"status"`
	FailedStep int    `json:"failedStep"`
	Cause      string `json:"cause,omitempty"`
}

// BridgingHandler submits a bridging transfer on the paying chain in the path
// and blocks until the run reaches a terminal outcome.
type BridgingHandler struct {
	bridgers map[string]Bridger
}

func NewBridgingHandler(bridgers map[string]Bridger) *BridgingHandler {
	return &BridgingHandler{
		bridgers: bridgers,
	}
}

func (h *BridgingHandler) HandleBridging(w http.ResponseWriter, r *http.Request) {
	b := &BridgingBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}
	if b.Token == "" || b.Amount == nil || b.Destination == "" {
		JSONError(w, fmt.Errorf("fields 'token', 'amount' and 'destination' are required"), http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	bridger, ok := h.bridgers[vars["chain"]]
	if !ok {
		JSONError(w, fmt.Errorf("chain '%s' not supported", vars["chain"]), http.StatusNotFound)
		return
	}

	outcome, err := bridger.Bridge(r.Context(), service.Params{
		TokenAddress:         b.Token,
		Amount:               b.Amount.Int,
		Destination:          b.Destination,
		PayDestinationFeeNow: b.PayDestinationFeeNow,
		PayPriorityFeeNow:    b.PayPriorityFeeNow,
	})
	if err != nil {
		JSONError(w, fmt.Errorf("planning failed: %s", err), http.StatusUnprocessableEntity)
		return
	}

	resp := &BridgingResponse{
		Status:     outcome.Status.String(),
		FailedStep: outcome.FailedStep,
	}
	if outcome.Cause != nil {
		resp.Cause = outcome.Cause.Error()
	}

	data, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
