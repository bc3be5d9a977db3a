package rolemanager

import (
	"github.com/curate-ai/curate-contract/common"
	"github.com/curate-ai/curate-contract/contracts/rolemanager/roleconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	ownerKey      = 'o'
	settlementKey = 's'
	votingKey     = 'v'

	moderatorPrefix = 'm'
	curatorPrefix   = 'c'
)

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
		owner interop.Hash160
	})

	if len(args.owner) != interop.Hash160Len {
		panic("bad owner address")
	}

	storage.Put(ctx, ownerKey, args.owner)

	runtime.Log("role manager contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("role manager contract updated")
}

// AssignModerator grants the Moderator role to the account. It can be invoked
// only by the contract owner set at deployment stage. Granting the role to an
// account that already holds it is a no-op.
//
// It produces ModeratorAssigned notification.
func AssignModerator(account interop.Hash160) {
	ctx := storage.GetContext()

	if len(account) != interop.Hash160Len {
		panic("bad account address")
	}

	common.CheckOwnerWitness(getOwner(ctx))

	key := roleKey(moderatorPrefix, account)
	if storage.Get(ctx, key) != nil {
		return
	}

	storage.Put(ctx, key, 1)
	runtime.Notify("ModeratorAssigned", account)
}

// AssignCurator grants the Curator role to the account. Moderator must hold
// the Moderator role and witness the transaction. Granting the role to an
// account that already holds it is a no-op.
//
// It produces CuratorAssigned notification.
func AssignCurator(moderator, account interop.Hash160) {
	ctx := storage.GetContext()

	if len(account) != interop.Hash160Len {
		panic("bad account address")
	}

	if storage.Get(ctx, roleKey(moderatorPrefix, moderator)) == nil {
		panic("not a moderator")
	}
	common.CheckWitness(moderator)

	key := roleKey(curatorPrefix, account)
	if storage.Get(ctx, key) != nil {
		return
	}

	storage.Put(ctx, key, 1)
	runtime.Notify("CuratorAssigned", account, moderator)
}

// SetSettlementAndVotingContract stores addresses of the settlement and the
// voting contracts. It can be invoked only by the contract owner and only
// once: the pair is permanent for the deployment lifetime. Other contracts
// use the stored addresses to authorize privileged cross-contract calls.
func SetSettlementAndVotingContract(settlement, voting interop.Hash160) {
	ctx := storage.GetContext()

	if len(settlement) != interop.Hash160Len || len(voting) != interop.Hash160Len {
		panic("bad contract address")
	}

	common.CheckOwnerWitness(getOwner(ctx))

	if storage.Get(ctx, settlementKey) != nil {
		panic("contracts already set")
	}

	storage.Put(ctx, settlementKey, settlement)
	storage.Put(ctx, votingKey, voting)

	runtime.Log("settlement and voting contracts set")
}

// HasRole returns true if the account holds the role. Role must be one of the
// tags defined in the roleconst package.
func HasRole(account interop.Hash160, role string) bool {
	ctx := storage.GetReadOnlyContext()

	var prefix byte
	switch role {
	case roleconst.Moderator:
		prefix = moderatorPrefix
	case roleconst.Curator:
		prefix = curatorPrefix
	default:
		panic("unknown role")
	}

	return storage.Get(ctx, roleKey(prefix, account)) != nil
}

// SettlementContract returns the address of the settlement contract.
func SettlementContract() interop.Hash160 {
	return getContract(storage.GetReadOnlyContext(), settlementKey)
}

// VotingContract returns the address of the voting contract.
func VotingContract() interop.Hash160 {
	return getContract(storage.GetReadOnlyContext(), votingKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func getContract(ctx storage.Context, key byte) interop.Hash160 {
	h := storage.Get(ctx, key)
	if h == nil {
		panic("settlement and voting contracts not set")
	}

	return h.(interop.Hash160)
}

func roleKey(prefix byte, account interop.Hash160) []byte {
	return append([]byte{prefix}, account...)
}
