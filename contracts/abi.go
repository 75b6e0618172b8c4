// Package contracts carries the ABI surface of the Cascade Splits contracts
// (SplitFactory and the per-split SplitConfig instances) and the call packing,
// result unpacking, and event decoding built on it.
//
// The ABI definitions mirror contracts/src/SplitFactory.sol and
// contracts/src/SplitConfigImpl.sol.
package contracts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// SplitRecipient is the on-chain recipient tuple: an address and its share of
// distributions in basis points.
type SplitRecipient struct {
	Addr          common.Address
	PercentageBps uint16
}

const factoryABIJSON = `[
	{"type":"function","name":"PROTOCOL_FEE_BPS","inputs":[],"outputs":[{"type":"uint16"}],"stateMutability":"view"},
	{"type":"function","name":"REQUIRED_SPLIT_TOTAL","inputs":[],"outputs":[{"type":"uint16"}],"stateMutability":"view"},
	{"type":"function","name":"predictSplitAddress","inputs":[
		{"name":"authority_","type":"address"},
		{"name":"token","type":"address"},
		{"name":"uniqueId","type":"bytes32"},
		{"name":"recipients","type":"tuple[]","components":[
			{"name":"addr","type":"address"},
			{"name":"percentageBps","type":"uint16"}]}],
		"outputs":[{"type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"createSplitConfig","inputs":[
		{"name":"authority_","type":"address"},
		{"name":"token","type":"address"},
		{"name":"uniqueId","type":"bytes32"},
		{"name":"recipients","type":"tuple[]","components":[
			{"name":"addr","type":"address"},
			{"name":"percentageBps","type":"uint16"}]}],
		"outputs":[{"name":"split","type":"address"}],"stateMutability":"nonpayable"},
	{"type":"event","name":"SplitConfigCreated","inputs":[
		{"name":"split","type":"address","indexed":true},
		{"name":"authority","type":"address","indexed":true},
		{"name":"token","type":"address","indexed":true},
		{"name":"uniqueId","type":"bytes32","indexed":false},
		{"name":"recipients","type":"tuple[]","indexed":false,"components":[
			{"name":"addr","type":"address"},
			{"name":"percentageBps","type":"uint16"}]}]}
]`

const splitABIJSON = `[
	{"type":"function","name":"factory","inputs":[],"outputs":[{"type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"authority","inputs":[],"outputs":[{"type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"token","inputs":[],"outputs":[{"type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"uniqueId","inputs":[],"outputs":[{"type":"bytes32"}],"stateMutability":"view"},
	{"type":"function","name":"getRecipientCount","inputs":[],"outputs":[{"type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getRecipients","inputs":[],"outputs":[
		{"type":"tuple[]","components":[
			{"name":"addr","type":"address"},
			{"name":"percentageBps","type":"uint16"}]}],"stateMutability":"view"},
	{"type":"function","name":"isCascadeSplitConfig","inputs":[],"outputs":[{"type":"bool"}],"stateMutability":"pure"},
	{"type":"function","name":"totalUnclaimed","inputs":[],"outputs":[{"type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"hasPendingFunds","inputs":[],"outputs":[{"type":"bool"}],"stateMutability":"view"},
	{"type":"function","name":"pendingAmount","inputs":[],"outputs":[{"type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"getBalance","inputs":[],"outputs":[{"type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"previewExecution","inputs":[],"outputs":[
		{"name":"recipientAmounts","type":"uint256[]"},
		{"name":"protocolFee","type":"uint256"},
		{"name":"available","type":"uint256"},
		{"name":"pendingRecipientAmounts","type":"uint256[]"},
		{"name":"pendingProtocolAmount","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"executeSplit","inputs":[],"outputs":[],"stateMutability":"nonpayable"},
	{"type":"event","name":"SplitExecuted","inputs":[
		{"name":"totalAmount","type":"uint256","indexed":false},
		{"name":"protocolFee","type":"uint256","indexed":false},
		{"name":"unclaimedCleared","type":"uint256","indexed":false},
		{"name":"newUnclaimed","type":"uint256","indexed":false}]},
	{"type":"event","name":"TransferFailed","inputs":[
		{"name":"recipient","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":false},
		{"name":"isProtocol","type":"bool","indexed":false}]},
	{"type":"event","name":"UnclaimedCleared","inputs":[
		{"name":"recipient","type":"address","indexed":true},
		{"name":"amount","type":"uint256","indexed":false},
		{"name":"isProtocol","type":"bool","indexed":false}]}
]`

const erc20ABIJSON = `[
	{"type":"function","name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"decimals","inputs":[],"outputs":[{"type":"uint8"}],"stateMutability":"view"}
]`

// Parsed ABIs, shared by all clients. Parsing happens once at init; the JSON
// above is a compile-time constant, so failure is a programming error.
var (
	FactoryABI = mustParse(factoryABIJSON)
	SplitABI   = mustParse(splitABIJSON)
	ERC20ABI   = mustParse(erc20ABIJSON)
)

func mustParse(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic("contracts: invalid ABI definition: " + err.Error())
	}
	return parsed
}
