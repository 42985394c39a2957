package main

import (
	"github.com/spf13/cobra"

	"cosmossdk.io/log"

	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/config"
	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/genesis"
	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/rpc"
	"github.com/SecretSaturn/sp1-ics07-tendermint/operator/vkey"
)

const (
	flagTrustedBlock = "trusted-block"
	flagGenesisPath  = "genesis-path"
)

// NewRootCmd returns the genesis command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "genesis",
		Short: "Generate the genesis of an SP1 ICS-07 Tendermint light client",
		Long: `Generate the genesis of an SP1 ICS-07 Tendermint light client.

The trusted client state and consensus state are built from the header at the
trusted block, defaulting to the latest block, of the chain served at
TENDERMINT_RPC_URL. They are written ABI and hex encoded, together with the
verifier key of the program at SP1_PROGRAM_PATH, to <genesis-path>/genesis.json.`,
		Example: `TENDERMINT_RPC_URL="https://rpc.celestia-mocha.com/" genesis --trusted-block 1000`,
		Args:    cobra.NoArgs,
		RunE:    runGenesis,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Uint64(flagTrustedBlock, 0, "Trusted block height (defaults to the latest block)")
	cmd.Flags().String(flagGenesisPath, config.DefaultGenesisPath, "Directory genesis.json is written to")

	return cmd
}

func runGenesis(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.DotEnvFile)
	if err != nil {
		return err
	}

	cfg.GenesisPath, err = cmd.Flags().GetString(flagGenesisPath)
	if err != nil {
		return err
	}

	var trustedBlock *uint64
	if cmd.Flags().Changed(flagTrustedBlock) {
		height, err := cmd.Flags().GetUint64(flagTrustedBlock)
		if err != nil {
			return err
		}
		trustedBlock = &height
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := cfg.ZerologLevel()
	if err != nil {
		return err
	}
	logger := log.NewLogger(cmd.ErrOrStderr(), log.LevelOption(level))

	chainService, err := rpc.NewTendermintRPCClient(cfg.RPCURL, cfg.RPCTimeout)
	if err != nil {
		return err
	}

	program, err := vkey.LoadProgram(cfg.ProgramPath)
	if err != nil {
		return err
	}

	generator := genesis.NewGenerator(logger, chainService, vkey.ProgramDeriver{}, program)
	_, err = generator.Run(cmd.Context(), trustedBlock, cfg.GenesisPath)
	return err
}
