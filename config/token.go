package config

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/vortexbridge/bridge-core/bridge"
)

// Token identifies one side of a bridgeable pair. Immutable once resolved
// from the pair registry.
type Token struct {
	Address  string
	Chain    bridge.Chain
	IsNative bool
	Decimals uint8
	Symbol   string

	// SupportsPermit marks tokens with EIP-2612 style offline approvals.
	SupportsPermit bool

	// DestinationAddress is the counterpart token on the other chain.
	DestinationAddress string
}

// TokenStore resolves bridgeable pairs by address per chain.
type TokenStore struct {
	Tokens map[bridge.Chain]map[string]Token
}

func NewTokenStore(tokens []Token) *TokenStore {
	byChain := make(map[bridge.Chain]map[string]Token)
	for _, t := range tokens {
		if byChain[t.Chain] == nil {
			byChain[t.Chain] = make(map[string]Token)
		}
		byChain[t.Chain][strings.ToLower(t.Address)] = t
	}
	return &TokenStore{Tokens: byChain}
}

func (s *TokenStore) ByAddress(chain bridge.Chain, address string) (Token, error) {
	tokens, ok := s.Tokens[chain]
	if !ok {
		return Token{}, fmt.Errorf("no tokens for chain %s", chain)
	}

	t, ok := tokens[strings.ToLower(address)]
	if !ok {
		return Token{}, fmt.Errorf("no token with address %s on chain %s", address, chain)
	}

	return t, nil
}

func (s *TokenStore) BySymbol(chain bridge.Chain, symbol string) (Token, error) {
	tokens, ok := s.Tokens[chain]
	if !ok {
		return Token{}, fmt.Errorf("no tokens for chain %s", chain)
	}

	// Sorted so duplicate symbols always resolve to the same token.
	addresses := maps.Keys(tokens)
	slices.Sort(addresses)
	for _, address := range addresses {
		if tokens[address].Symbol == symbol {
			return tokens[address], nil
		}
	}

	return Token{}, fmt.Errorf("no token with symbol %s on chain %s", symbol, chain)
}

// Counterpart resolves the destination side of a pair.
func (s *TokenStore) Counterpart(t Token) (Token, error) {
	destChain := bridge.ChainEthereum
	if t.Chain == bridge.ChainEthereum {
		destChain = bridge.ChainVara
	}

	return s.ByAddress(destChain, t.DestinationAddress)
}
