package vkey

import (
	"os"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/crypto"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
)

// Deriver maps a proof program image to the key identifying it to the
// on-chain verifier. Implementations must be deterministic.
type Deriver interface {
	DeriveVerifierKey(program []byte) ([32]byte, error)
}

var (
	_ Deriver = ProgramDeriver{}
	_ Deriver = FixedDeriver{}
)

// ProgramDeriver identifies a program by the keccak256 digest of its image.
type ProgramDeriver struct{}

// DeriveVerifierKey implements Deriver.
func (ProgramDeriver) DeriveVerifierKey(program []byte) ([32]byte, error) {
	if len(program) == 0 {
		return [32]byte{}, errorsmod.Wrap(ibcerrors.ErrInvalidProgram, "program image is empty")
	}
	return crypto.Keccak256Hash(program), nil
}

// FixedDeriver returns Key for every program.
type FixedDeriver struct {
	Key [32]byte
}

// DeriveVerifierKey implements Deriver.
func (d FixedDeriver) DeriveVerifierKey([]byte) ([32]byte, error) {
	return d.Key, nil
}

// LoadProgram reads the program image at path.
func LoadProgram(path string) ([]byte, error) {
	program, err := os.ReadFile(path)
	if err != nil {
		return nil, errorsmod.Wrapf(ibcerrors.ErrFilesystem, "failed to read program image: %s", err)
	}
	return program, nil
}
