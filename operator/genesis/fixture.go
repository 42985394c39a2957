package genesis

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	errorsmod "cosmossdk.io/errors"
	"github.com/creachadair/atomicfile"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
	ibctm "github.com/SecretSaturn/sp1-ics07-tendermint/modules/light-clients/07-tendermint"
)

// FileName is the name of the genesis file inside the genesis path.
const FileName = "genesis.json"

// Genesis is the fixture consumed by the verifier contract deployment. All
// fields are hex encoded without a 0x prefix.
type Genesis struct {
	// The encoded trusted client state.
	TrustedClientState string `json:"trustedClientState"`
	// The encoded trusted consensus state.
	TrustedConsensusState string `json:"trustedConsensusState"`
	Vkey                  string `json:"vkey"`
}

// NewGenesis ABI encodes both states and hex encodes them along with vkey.
func NewGenesis(clientState *ibctm.ClientState, consensusState *ibctm.ConsensusState, vkey [32]byte) (Genesis, error) {
	clientStateBz, err := clientState.ABIEncode()
	if err != nil {
		return Genesis{}, err
	}

	consensusStateBz, err := consensusState.ABIEncode()
	if err != nil {
		return Genesis{}, err
	}

	return Genesis{
		TrustedClientState:    ibctm.EncodeHex(clientStateBz),
		TrustedConsensusState: ibctm.EncodeHex(consensusStateBz),
		Vkey:                  ibctm.EncodeHex(vkey[:]),
	}, nil
}

// WriteGenesis writes g as indented JSON to dir/genesis.json, replacing any
// existing file, and returns the path written. dir must exist.
func WriteGenesis(dir string, g Genesis) (string, error) {
	bz, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return "", errorsmod.Wrapf(ibcerrors.ErrFilesystem, "failed to marshal genesis: %s", err)
	}

	path := filepath.Join(dir, FileName)
	if _, err := atomicfile.WriteAll(path, bytes.NewReader(bz), 0o644); err != nil {
		return "", errorsmod.Wrapf(ibcerrors.ErrFilesystem, "failed to write %s: %s", path, err)
	}

	return path, nil
}

// ReadGenesis reads the genesis file in dir.
func ReadGenesis(dir string) (Genesis, error) {
	path := filepath.Join(dir, FileName)
	bz, err := os.ReadFile(path)
	if err != nil {
		return Genesis{}, errorsmod.Wrapf(ibcerrors.ErrFilesystem, "failed to read %s: %s", path, err)
	}

	var g Genesis
	if err := json.Unmarshal(bz, &g); err != nil {
		return Genesis{}, errorsmod.Wrapf(ibcerrors.ErrFilesystem, "failed to unmarshal %s: %s", path, err)
	}
	return g, nil
}
