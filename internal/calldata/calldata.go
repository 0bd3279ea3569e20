// Package calldata builds the initialize call sent to a freshly deployed
// game contract.
package calldata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/lmittmann/w3"
)

// InitializeSignature is the contract entry point wiring a game to its bet
// number contract and payment token.
const InitializeSignature = "initialize(address,address)"

var funcInitialize = w3.MustNewFunc(InitializeSignature, "")

// InitArgs are the arguments of initialize.
type InitArgs struct {
	BetNumber common.Address
	Token     common.Address
}

// EncodeInitialize returns the selector followed by the ABI-encoded
// arguments.
func EncodeInitialize(args InitArgs) ([]byte, error) {
	return funcInitialize.EncodeArgs(args.BetNumber, args.Token)
}

// EncodeCall encodes an arbitrary call given its Solidity signature, e.g.
// "transfer(address,uint256)".
func EncodeCall(signature string, args ...any) ([]byte, error) {
	fn, err := w3.NewFunc(signature, "")
	if err != nil {
		return nil, fmt.Errorf("invalid signature %q: %w", signature, err)
	}
	data, err := fn.EncodeArgs(args...)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", signature, err)
	}
	return data, nil
}

// ParseAddress accepts a 0x-prefixed, 20-byte hex address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") || !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// Hex renders calldata as 0x-prefixed lowercase hex.
func Hex(data []byte) string {
	return hexutil.Encode(data)
}

// Deployment holds the contract addresses a game was deployed against.
type Deployment struct {
	Game string
	InitArgs
}

var deployments = map[string]Deployment{
	"roulette": {
		Game: "roulette",
		InitArgs: InitArgs{
			BetNumber: common.HexToAddress("0x4C433D4b0F9C7F1f7aC4A7025B582536ec07A506"),
			Token:     common.HexToAddress("0x4A6Aa905EF85F055c3146cE70ac0BF3052e8be4d"),
		},
	},
	"sicbo": {
		Game: "sicbo",
		InitArgs: InitArgs{
			BetNumber: common.HexToAddress("0x830b810cC9b430e2Fa7B25d46F4cF86D45101D4D"),
			Token:     common.HexToAddress("0xc3f1c6A8428D1D9497944f35F68e284Ee75Da629"),
		},
	},
}

// LookupDeployment returns the known deployment of a game.
func LookupDeployment(game string) (Deployment, error) {
	d, ok := deployments[strings.ToLower(game)]
	if !ok {
		known := make([]string, 0, len(deployments))
		for name := range deployments {
			known = append(known, name)
		}
		sort.Strings(known)
		return Deployment{}, fmt.Errorf("no deployment for %q (available: %s)", game, strings.Join(known, ", "))
	}
	return d, nil
}
