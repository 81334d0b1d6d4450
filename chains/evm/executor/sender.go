// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package executor

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	ethTypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	RECEIPT_TIMEOUT = time.Minute * 5
)

type EthClient interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *ethTypes.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*ethTypes.Receipt, error)
}

// Sender signs and submits transactions with a locally held key. Embedders
// that hold keys in an external wallet provide their own TxSender instead.
type Sender struct {
	client        EthClient
	key           *ecdsa.PrivateKey
	chainID       *big.Int
	retryInterval time.Duration
}

func NewSender(client EthClient, chainID *big.Int, key *ecdsa.PrivateKey, retryInterval time.Duration) *Sender {
	return &Sender{
		client:        client,
		key:           key,
		chainID:       chainID,
		retryInterval: retryInterval,
	}
}

func (s *Sender) Address() common.Address {
	return crypto.PubkeyToAddress(s.key.PublicKey)
}

func (s *Sender) SendTransaction(
	ctx context.Context,
	to common.Address,
	data []byte,
	value *big.Int,
	gasLimit uint64,
) (common.Hash, error) {
	nonce, err := s.client.PendingNonceAt(ctx, s.Address())
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetching account nonce: %w", err)
	}
	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("fetching gas price: %w", err)
	}
	if value == nil {
		value = big.NewInt(0)
	}

	tx := ethTypes.NewTx(&ethTypes.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := ethTypes.SignTx(tx, ethTypes.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("signing transaction: %w", err)
	}

	err = s.client.SendTransaction(ctx, signed)
	if err != nil {
		return common.Hash{}, err
	}
	return signed.Hash(), nil
}

// WaitAndReturnTxReceipt polls until the transaction is mined.
func (s *Sender) WaitAndReturnTxReceipt(hash common.Hash) (*ethTypes.Receipt, error) {
	ctx, cancel := context.WithTimeout(context.Background(), RECEIPT_TIMEOUT)
	defer cancel()

	ticker := time.NewTicker(s.retryInterval)
	defer ticker.Stop()

	for {
		receipt, err := s.client.TransactionReceipt(ctx, hash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("transaction %s not mined within %s", hash.Hex(), RECEIPT_TIMEOUT)
		}
	}
}
