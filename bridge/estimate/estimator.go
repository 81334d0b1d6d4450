// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package estimate

import (
	"context"
	"fmt"
	"math/big"

	"github.com/vortexbridge/bridge-core/bridge/plan"
)

// GasPricer reports the current gas price of the paying chain, in its
// smallest native unit.
type GasPricer interface {
	GasPrice(ctx context.Context) (*big.Int, error)
}

// CostEstimate is derived per plan and never cached: a stale estimate that
// understates the required balance lets the user submit an under-funded
// transaction.
type CostEstimate struct {
	// RequiredBalance is the native balance the submission consumes,
	// principal included.
	RequiredBalance *big.Int
	// TotalFees is gas plus bridging/processing/priority fees. Principal
	// transferred to the bridge is excluded.
	TotalFees *big.Int
}

type Estimator struct {
	pricer GasPricer
}

func NewEstimator(pricer GasPricer) *Estimator {
	return &Estimator{pricer: pricer}
}

// Estimate walks the plan and sums per-step costs. All arithmetic is integer
// arithmetic on smallest units.
func (e *Estimator) Estimate(ctx context.Context, p plan.Plan) (*CostEstimate, error) {
	gasPrice, err := e.pricer.GasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("gas price unavailable: %w", err)
	}

	requiredBalance := new(big.Int)
	totalFees := new(big.Int)

	for _, step := range p {
		gasCost := new(big.Int).Mul(new(big.Int).SetUint64(step.GasLimit), gasPrice)
		requiredBalance.Add(requiredBalance, gasCost)
		totalFees.Add(totalFees, gasCost)

		if step.Value == nil {
			continue
		}

		requiredBalance.Add(requiredBalance, step.Value)
		if isFeeValue(step.Kind) {
			totalFees.Add(totalFees, step.Value)
		}
	}

	return &CostEstimate{
		RequiredBalance: requiredBalance,
		TotalFees:       totalFees,
	}, nil
}

// isFeeValue reports whether a step's attached value is a fee rather than
// bridged principal. The mint step's value is the amount itself and stays out
// of totalFees.
func isFeeValue(kind plan.StepKind) bool {
	switch kind {
	case plan.StepBridgeRequest, plan.StepPayFee, plan.StepPayPriorityFee:
		return true
	default:
		return false
	}
}
