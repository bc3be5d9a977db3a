package tests

import (
	"testing"

	"github.com/curate-ai/curate-contract/common"
	"github.com/curate-ai/curate-contract/contracts/rolemanager/roleconst"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestRoleManagerAssignModerator(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContracts(t, e, 0)

	roleInv := e.CommitteeInvoker(c.role)
	mod := e.NewAccount(t)

	t.Run("missing owner witness", func(t *testing.T) {
		roleInv.WithSigners(mod).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"assignModerator", mod.ScriptHash())
	})

	roleInv.Invoke(t, stackitem.Null{}, "assignModerator", mod.ScriptHash())
	roleInv.Invoke(t, stackitem.NewBool(true), "hasRole", mod.ScriptHash(), roleconst.Moderator)
	roleInv.Invoke(t, stackitem.NewBool(false), "hasRole", mod.ScriptHash(), roleconst.Curator)

	t.Run("repeated grant", func(t *testing.T) {
		roleInv.Invoke(t, stackitem.Null{}, "assignModerator", mod.ScriptHash())
		roleInv.Invoke(t, stackitem.NewBool(true), "hasRole", mod.ScriptHash(), roleconst.Moderator)
	})
}

func TestRoleManagerAssignCurator(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContracts(t, e, 0)

	roleInv := e.CommitteeInvoker(c.role)
	mod := appointModerator(t, e, c)
	cur := e.NewAccount(t)
	outsider := e.NewAccount(t)

	t.Run("not a moderator", func(t *testing.T) {
		roleInv.WithSigners(outsider).InvokeFail(t, "not a moderator",
			"assignCurator", outsider.ScriptHash(), cur.ScriptHash())
	})

	t.Run("missing moderator witness", func(t *testing.T) {
		roleInv.WithSigners(outsider).InvokeFail(t, common.ErrWitnessFailed,
			"assignCurator", mod.ScriptHash(), cur.ScriptHash())
	})

	cMod := roleInv.WithSigners(mod)
	cMod.Invoke(t, stackitem.Null{}, "assignCurator", mod.ScriptHash(), cur.ScriptHash())

	roleInv.Invoke(t, stackitem.NewBool(true), "hasRole", cur.ScriptHash(), roleconst.Curator)
	roleInv.Invoke(t, stackitem.NewBool(false), "hasRole", cur.ScriptHash(), roleconst.Moderator)

	t.Run("repeated grant", func(t *testing.T) {
		cMod.Invoke(t, stackitem.Null{}, "assignCurator", mod.ScriptHash(), cur.ScriptHash())
		roleInv.Invoke(t, stackitem.NewBool(true), "hasRole", cur.ScriptHash(), roleconst.Curator)
	})
}

func TestRoleManagerHasRole(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContracts(t, e, 0)

	roleInv := e.CommitteeInvoker(c.role)
	acc := e.NewAccount(t)

	roleInv.Invoke(t, stackitem.NewBool(false), "hasRole", acc.ScriptHash(), roleconst.Moderator)
	roleInv.Invoke(t, stackitem.NewBool(false), "hasRole", acc.ScriptHash(), roleconst.Curator)

	t.Run("unknown role", func(t *testing.T) {
		_, err := roleInv.TestInvoke(t, "hasRole", acc.ScriptHash(), "admin")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown role")
	})
}

func TestRoleManagerSetContracts(t *testing.T) {
	e := newExecutor(t)
	c := deployCurateContractsRaw(t, e, 0)

	roleInv := e.CommitteeInvoker(c.role)
	acc := e.NewAccount(t)

	t.Run("not set yet", func(t *testing.T) {
		_, err := roleInv.TestInvoke(t, "settlementContract")
		require.Error(t, err)
		require.Contains(t, err.Error(), "settlement and voting contracts not set")
	})

	t.Run("missing owner witness", func(t *testing.T) {
		roleInv.WithSigners(acc).InvokeFail(t, common.ErrOwnerWitnessFailed,
			"setSettlementAndVotingContract", c.settle, c.vote)
	})

	roleInv.Invoke(t, stackitem.Null{}, "setSettlementAndVotingContract", c.settle, c.vote)

	s, err := roleInv.TestInvoke(t, "settlementContract")
	require.NoError(t, err)
	require.Equal(t, c.settle.BytesBE(), s.Top().Bytes())

	s, err = roleInv.TestInvoke(t, "votingContract")
	require.NoError(t, err)
	require.Equal(t, c.vote.BytesBE(), s.Top().Bytes())

	t.Run("already set", func(t *testing.T) {
		roleInv.InvokeFail(t, "contracts already set",
			"setSettlementAndVotingContract", c.settle, c.vote)
	})
}
