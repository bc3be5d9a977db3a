package token

import (
	"github.com/curate-ai/curate-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Token holds all token info.
type Token struct {
	// Ticker symbol
	Symbol string
	// Amount of decimals
	Decimals int
	// Storage key for circulation value
	CirculationKey string
}

const (
	symbol = "CAT"
	// Vote weights and reward credits are whole token units, so the token
	// carries no fractional precision.
	decimals    = 0
	circulation = "TokenCirculation"

	accPrefix      = 'a'
	roleManagerKey = 'r'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()

	if isUpdate {
		args := data.([]any)
		version := args[len(args)-1].(int)

		common.CheckVersion(version)

		return
	}

	args := data.(struct {
		addrRoleManager interop.Hash160
	})

	if len(args.addrRoleManager) != interop.Hash160Len {
		panic("bad role manager contract address")
	}

	storage.Put(ctx, roleManagerKey, args.addrRoleManager)

	runtime.Log("token contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("token contract updated")
}

// Symbol is a NEP-17 standard method that returns CAT token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of CAT
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// CAT minted so far.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns CAT balance of the
// specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, accKey(account))
}

// Transfer is a NEP-17 standard method that transfers CAT from one account to
// another. It can be invoked only by the account owner.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false)
}

// Mint transfers CAT to a user account from an empty account increasing the
// total supply. It can be invoked only by the settlement contract registered
// in the role manager contract: minting happens exclusively on reward claims.
//
// It produces Transfer notification.
func Mint(to interop.Hash160, amount int) {
	ctx := storage.GetContext()

	checkSettlementCaller(ctx)

	if len(to) != interop.Hash160Len {
		panic("bad account address")
	}
	if amount <= 0 {
		panic("non-positive mint amount")
	}

	ok := token.transfer(ctx, nil, to, amount, true)
	if !ok {
		panic("can't transfer assets")
	}

	supply := token.getSupply(ctx)
	supply = supply + amount
	storage.Put(ctx, token.CirculationKey, supply)
	runtime.Log("assets were minted")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	return common.GetInt(ctx, t.CirculationKey)
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, internal bool) bool {
	if amount < 0 {
		panic("negative amount")
	}

	if len(from) == interop.Hash160Len {
		if !internal && !isUsableAddress(from) {
			runtime.Log("bad transfer sender")
			return false
		}

		fromKey := accKey(from)
		balance := common.GetInt(ctx, fromKey)
		if balance < amount {
			runtime.Log("not enough assets")
			return false
		}

		if balance == amount {
			storage.Delete(ctx, fromKey)
		} else {
			storage.Put(ctx, fromKey, balance-amount)
		}
	}

	if len(to) == interop.Hash160Len {
		toKey := accKey(to)
		balance := common.GetInt(ctx, toKey)
		storage.Put(ctx, toKey, balance+amount)
	}

	runtime.Notify("Transfer", from, to, amount)

	return true
}

// isUsableAddress checks if the sender is either a correct user address or a
// calling smart contract.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		callingScriptHash := runtime.GetCallingScriptHash()
		if callingScriptHash.Equals(addr) {
			return true
		}
	}

	return false
}

func checkSettlementCaller(ctx storage.Context) {
	roleManager := storage.Get(ctx, roleManagerKey).(interop.Hash160)
	settlement := contract.Call(roleManager, "settlementContract", contract.ReadOnly).(interop.Hash160)

	if !runtime.GetCallingScriptHash().Equals(settlement) {
		panic("not invoked by the settlement contract")
	}
}

func accKey(account interop.Hash160) []byte {
	return append([]byte{accPrefix}, account...)
}
