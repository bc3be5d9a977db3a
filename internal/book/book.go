/*
Package book reads and writes the address book of a deployed CurateAI
contract suite.

The address book is a small JSON file produced by the deploy tool and
consumed by operational tooling as opaque bootstrap configuration. Contract
addresses are stored in N3 address form under fixed keys:

	{"role": ..., "token": ..., "post": ..., "vote": ..., "settle": ...}
*/
package book

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Addresses groups script hashes of all contracts of a deployed CurateAI
// suite.
type Addresses struct {
	Role   util.Uint160
	Token  util.Uint160
	Post   util.Uint160
	Vote   util.Uint160
	Settle util.Uint160
}

type addressesJSON struct {
	Role   string `json:"role"`
	Token  string `json:"token"`
	Post   string `json:"post"`
	Vote   string `json:"vote"`
	Settle string `json:"settle"`
}

// MarshalJSON implements the json.Marshaler interface.
func (a Addresses) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressesJSON{
		Role:   address.Uint160ToString(a.Role),
		Token:  address.Uint160ToString(a.Token),
		Post:   address.Uint160ToString(a.Post),
		Vote:   address.Uint160ToString(a.Vote),
		Settle: address.Uint160ToString(a.Settle),
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (a *Addresses) UnmarshalJSON(data []byte) error {
	var aj addressesJSON
	if err := json.Unmarshal(data, &aj); err != nil {
		return err
	}

	for _, f := range []struct {
		name string
		addr string
		dst  *util.Uint160
	}{
		{"role", aj.Role, &a.Role},
		{"token", aj.Token, &a.Token},
		{"post", aj.Post, &a.Post},
		{"vote", aj.Vote, &a.Vote},
		{"settle", aj.Settle, &a.Settle},
	} {
		u, err := address.StringToUint160(f.addr)
		if err != nil {
			return fmt.Errorf("invalid %s contract address %q: %w", f.name, f.addr, err)
		}
		*f.dst = u
	}

	return nil
}

// Write stores the address book to the file at the given path.
func Write(path string, a Addresses) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode address book: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write address book: %w", err)
	}

	return nil
}

// Read loads the address book from the file at the given path.
func Read(path string) (Addresses, error) {
	var a Addresses

	data, err := os.ReadFile(path)
	if err != nil {
		return a, fmt.Errorf("read address book: %w", err)
	}

	if err := json.Unmarshal(data, &a); err != nil {
		return a, fmt.Errorf("decode address book: %w", err)
	}

	return a, nil
}
