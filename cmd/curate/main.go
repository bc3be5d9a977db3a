/*
Curate tool runs day-to-day operations against a deployed CurateAI contract
suite: granting the Curator role and transferring CAT. Contract addresses are
read from the address book written by the deploy tool.

Commands:

	assign-curator <account>    grant the Curator role to the account; the
	                            wallet account must hold the Moderator role
	transfer <account> <amount> transfer CAT from the wallet account
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/curate-ai/curate-contract/internal/book"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the sender NEP-6 wallet")
	walletPassword := flag.String("password", "", "Password of the sender wallet account")
	bookPath := flag.String("book", "deployedContracts.json", "Path to the address book")

	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync() //nolint:errcheck

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing sender wallet")
	}

	addrs, err := book.Read(*bookPath)
	if err != nil {
		log.Fatal("read address book", zap.Error(err))
	}

	act, err := newActor(*neoRPCEndpoint, *walletPath, *walletPassword)
	if err != nil {
		log.Fatal("prepare RPC actor", zap.Error(err))
	}

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal("missing command, expecting assign-curator or transfer")
	}

	switch cmd := args[0]; cmd {
	case "assign-curator":
		if len(args) != 2 {
			log.Fatal("usage: assign-curator <account>")
		}
		err = assignCurator(log, act, addrs.Role, args[1])
	case "transfer":
		if len(args) != 3 {
			log.Fatal("usage: transfer <account> <amount>")
		}
		err = transferCAT(log, act, addrs.Token, args[1], args[2])
	default:
		log.Fatal("unknown command", zap.String("command", cmd))
	}

	if err != nil {
		log.Fatal("command failed", zap.Error(err))
	}
}

func newActor(endpoint, walletPath, password string) (*actor.Actor, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return nil, errors.New("sender account is missing from the wallet")
	}

	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt sender account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{})
	if err != nil {
		return nil, fmt.Errorf("create RPC client: %w", err)
	}

	if err := c.Init(); err != nil {
		return nil, fmt.Errorf("init RPC client: %w", err)
	}

	return actor.NewSimple(c, acc)
}

// assignCurator grants the Curator role to the account with the wallet
// account as the moderator.
func assignCurator(log *zap.Logger, act *actor.Actor, roleContract util.Uint160, accountAddr string) error {
	account, err := address.StringToUint160(accountAddr)
	if err != nil {
		return fmt.Errorf("invalid account address: %w", err)
	}

	aer, err := act.Wait(act.SendCall(roleContract, "assignCurator", act.Sender(), account))
	if err != nil {
		return fmt.Errorf("call assignCurator: %w", err)
	}

	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("transaction faulted: %s", aer.FaultException)
	}

	log.Info("curator assigned", zap.String("account", accountAddr))
	return nil
}

// transferCAT transfers CAT from the wallet account to the given account.
func transferCAT(log *zap.Logger, act *actor.Actor, tokenContract util.Uint160, toAddr, amountArg string) error {
	to, err := address.StringToUint160(toAddr)
	if err != nil {
		return fmt.Errorf("invalid receiver address: %w", err)
	}

	amount, err := strconv.ParseInt(amountArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}

	aer, err := act.Wait(act.SendCall(tokenContract, "transfer", act.Sender(), to, amount, nil))
	if err != nil {
		return fmt.Errorf("call transfer: %w", err)
	}

	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("transaction faulted: %s", aer.FaultException)
	}

	ok, err := aer.Stack[0].TryBool()
	if err != nil {
		return fmt.Errorf("unexpected transfer result: %w", err)
	}
	if !ok {
		return errors.New("transfer rejected")
	}

	log.Info("transferred CAT", zap.String("to", toAddr), zap.Int64("amount", amount))
	return nil
}
