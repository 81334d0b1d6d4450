package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var BridgingPaymentABI, _ = abi.JSON(strings.NewReader(`
[
  {
    "inputs": [],
    "name": "fee",
    "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [],
    "name": "processingFee",
    "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "uint256", "name": "nonce", "type": "uint256"}],
    "name": "payFee",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`))
