/*
Deploy tool compiles the CurateAI contracts from source, deploys them to a
Neo network in dependency order (role manager, token, post, vote,
settlement), wires the role manager with the settlement and voting contract
addresses, appoints the initial moderator and writes the resulting address
book to a file.
*/
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"path"

	"github.com/curate-ai/curate-contract/internal/book"
	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"go.uber.org/zap"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the deployer NEP-6 wallet")
	walletPassword := flag.String("password", "", "Password of the deployer wallet account")
	moderatorAddr := flag.String("moderator", "", "N3 address of the initial moderator")
	dailyMint := flag.Int64("daily-mint", 0, "Per-day mint budget, 0 selects the contract default")
	contractsDir := flag.String("contracts", "contracts", "Directory with contract sources")
	outPath := flag.String("out", "deployedContracts.json", "Path to write the address book to")

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
		log.Fatal("missing deployer wallet")
	case *moderatorAddr == "":
		log.Fatal("missing moderator address")
	}

	moderator, err := address.StringToUint160(*moderatorAddr)
	if err != nil {
		log.Fatal("invalid moderator address", zap.Error(err))
	}

	err = deploySuite(log, *neoRPCEndpoint, *walletPath, *walletPassword,
		*contractsDir, *outPath, moderator, *dailyMint)
	if err != nil {
		log.Fatal("deployment failed", zap.Error(err))
	}

	log.Info("deployment successful", zap.String("address book", *outPath))
}

func deploySuite(log *zap.Logger, endpoint, walletPath, password, contractsDir, outPath string,
	moderator util.Uint160, dailyMint int64) error {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return fmt.Errorf("open wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return fmt.Errorf("deployer account is missing from the wallet")
	}

	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return fmt.Errorf("decrypt deployer account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), endpoint, rpcclient.Options{})
	if err != nil {
		return fmt.Errorf("create RPC client: %w", err)
	}

	if err := c.Init(); err != nil {
		return fmt.Errorf("init RPC client: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return fmt.Errorf("create RPC actor: %w", err)
	}

	sender := act.Sender()

	var addrs book.Addresses

	addrs.Role, err = deployContract(log, act, path.Join(contractsDir, "rolemanager"),
		[]any{sender})
	if err != nil {
		return fmt.Errorf("deploy role manager contract: %w", err)
	}

	addrs.Token, err = deployContract(log, act, path.Join(contractsDir, "token"),
		[]any{addrs.Role})
	if err != nil {
		return fmt.Errorf("deploy token contract: %w", err)
	}

	addrs.Post, err = deployContract(log, act, path.Join(contractsDir, "post"),
		[]any{addrs.Role})
	if err != nil {
		return fmt.Errorf("deploy post contract: %w", err)
	}

	addrs.Vote, err = deployContract(log, act, path.Join(contractsDir, "vote"),
		[]any{addrs.Role, addrs.Post})
	if err != nil {
		return fmt.Errorf("deploy vote contract: %w", err)
	}

	addrs.Settle, err = deployContract(log, act, path.Join(contractsDir, "settlement"),
		[]any{addrs.Token, addrs.Post, dailyMint})
	if err != nil {
		return fmt.Errorf("deploy settlement contract: %w", err)
	}

	log.Info("wiring settlement and voting contracts")
	err = sendAndWait(act, addrs.Role, "setSettlementAndVotingContract", addrs.Settle, addrs.Vote)
	if err != nil {
		return fmt.Errorf("set settlement and voting contracts: %w", err)
	}

	log.Info("appointing moderator", zap.String("account", address.Uint160ToString(moderator)))
	err = sendAndWait(act, addrs.Role, "assignModerator", moderator)
	if err != nil {
		return fmt.Errorf("assign moderator: %w", err)
	}

	return book.Write(outPath, addrs)
}

func deployContract(log *zap.Logger, act *actor.Actor, ctrPath string, data []any) (util.Uint160, error) {
	log.Info("deploying contract", zap.String("path", ctrPath))

	ne, m, err := compileContract(ctrPath)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("compile: %w", err)
	}

	neb, err := ne.Bytes()
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode NEF: %w", err)
	}

	rawManifest, err := json.Marshal(m)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("encode manifest: %w", err)
	}

	h := state.CreateContractHash(act.Sender(), ne.Checksum, m.Name)

	err = sendAndWait(act, management.Hash, "deploy", neb, rawManifest, data)
	if err != nil {
		return util.Uint160{}, err
	}

	log.Info("deployed contract", zap.String("name", m.Name),
		zap.String("address", address.Uint160ToString(h)))
	return h, nil
}

// compileContract compiles a contract from Go source and builds its manifest
// from the config.yml next to it.
func compileContract(ctrPath string) (*nef.File, *manifest.Manifest, error) {
	// nef.NewFile() cares about version a lot.
	if config.Version == "" {
		config.Version = "0.102.0"
	}

	ne, di, err := compiler.CompileWithOptions(ctrPath, nil, nil)
	if err != nil {
		return nil, nil, err
	}

	conf, err := smartcontract.ParseContractConfig(path.Join(ctrPath, "config.yml"))
	if err != nil {
		return nil, nil, err
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods

	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return nil, nil, err
	}

	return ne, m, nil
}

func sendAndWait(act *actor.Actor, contract util.Uint160, method string, params ...any) error {
	aer, err := act.Wait(act.SendCall(contract, method, params...))
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}

	if aer.VMState != vmstate.Halt {
		return fmt.Errorf("call %s: transaction faulted: %s", method, aer.FaultException)
	}

	return nil
}
