// Package compile builds the Mapforge contracts from source the way the
// deployment tooling needs them: NEF, manifest and the script hash the
// contract gets when deployed by a known sender.
package compile

import (
	"fmt"
	"path"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/config"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Contract contains contract info for deployment.
type Contract struct {
	Hash     util.Uint160
	NEF      *nef.File
	Manifest *manifest.Manifest
}

// ContractInfo compiles the contract at ctrPath against its config.yml and
// predicts the script hash it gets when deployed by sender. The prediction is
// what makes the mutually referencing coupon and game constructors
// deployable, both hashes are known before either contract is on the chain.
func ContractInfo(sender util.Uint160, ctrPath string) (*Contract, error) {
	// nef.NewFile() cares about version a lot.
	config.Version = "0.90.0-test"

	ne, di, err := compiler.CompileWithOptions(ctrPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", ctrPath, err)
	}

	conf, err := smartcontract.ParseContractConfig(path.Join(ctrPath, "config.yml"))
	if err != nil {
		return nil, err
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
		return nil, fmt.Errorf("can't create manifest: %w", err)
	}

	return &Contract{
		Hash:     state.CreateContractHash(sender, ne.Checksum, m.Name),
		NEF:      ne,
		Manifest: m,
	}, nil
}
