package genesis

import (
	"context"

	"cosmossdk.io/log"

	ibctm "github.com/SecretSaturn/sp1-ics07-tendermint/modules/light-clients/07-tendermint"
	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/rpc"
	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/vkey"
)

// Generator produces the genesis of an SP1 ICS-07 Tendermint light client.
type Generator struct {
	logger       log.Logger
	chainService rpc.ChainService
	deriver      vkey.Deriver
	program      []byte
}

// NewGenerator creates a Generator. program is the proof program image the
// verifier key is derived from.
func NewGenerator(logger log.Logger, chainService rpc.ChainService, deriver vkey.Deriver, program []byte) *Generator {
	return &Generator{
		logger:       logger,
		chainService: chainService,
		deriver:      deriver,
		program:      program,
	}
}

// Generate builds the genesis trusting trustedBlock, or the latest block when
// trustedBlock is nil.
func (g *Generator) Generate(ctx context.Context, trustedBlock *uint64) (Genesis, error) {
	trustedHeight, err := ResolveTrustedHeight(ctx, g.logger, g.chainService, trustedBlock)
	if err != nil {
		return Genesis{}, err
	}

	header, err := g.chainService.HeaderAt(ctx, trustedHeight)
	if err != nil {
		return Genesis{}, err
	}

	clientState, consensusState, err := BuildTrustedStates(trustedHeight, header)
	if err != nil {
		return Genesis{}, err
	}
	g.logger.Debug("built trusted states",
		"chain_id", clientState.GetChainID(),
		"height", clientState.GetLatestHeight().String(),
		"timestamp", consensusState.Timestamp,
		"root", ibctm.EncodeHex(consensusState.Root[:]),
	)

	verifierKey, err := g.deriver.DeriveVerifierKey(g.program)
	if err != nil {
		return Genesis{}, err
	}

	return NewGenesis(clientState, consensusState, verifierKey)
}

// Run generates the genesis and writes it to genesisPath. Nothing is written
// if generation fails.
func (g *Generator) Run(ctx context.Context, trustedBlock *uint64, genesisPath string) (string, error) {
	genesis, err := g.Generate(ctx, trustedBlock)
	if err != nil {
		return "", err
	}

	path, err := WriteGenesis(genesisPath, genesis)
	if err != nil {
		return "", err
	}

	g.logger.Info("wrote genesis", "path", path)
	return path, nil
}
