package errors

import (
	errorsmod "cosmossdk.io/errors"
)

const codespace = "sp1-ics07-genesis"

var (
	// ErrChainService is used when the remote chain RPC cannot be reached or
	// returns data that cannot be parsed.
	ErrChainService = errorsmod.Register(codespace, 2, "chain service error")

	// ErrMalformedChainID defines an error when the chain-id has no parseable
	// revision number suffix.
	ErrMalformedChainID = errorsmod.Register(codespace, 3, "malformed chain-id")

	// ErrFilesystem is used when a file cannot be read or written.
	ErrFilesystem = errorsmod.Register(codespace, 4, "filesystem error")

	// ErrInvalidHeader defines an error for header data that cannot anchor a
	// consensus state.
	ErrInvalidHeader = errorsmod.Register(codespace, 5, "invalid header")

	// ErrInvalidHeight defines an error for an invalid height
	ErrInvalidHeight = errorsmod.Register(codespace, 6, "invalid height")

	// ErrInvalidConfig is used when the process configuration is missing or invalid.
	ErrInvalidConfig = errorsmod.Register(codespace, 7, "invalid config")

	ErrAbiEncoding = errorsmod.Register(codespace, 8, "abi encoding error")
	ErrAbiDecoding = errorsmod.Register(codespace, 9, "abi decoding error")

	// ErrInvalidProgram is used when the proof program image cannot produce a
	// verifier key.
	ErrInvalidProgram = errorsmod.Register(codespace, 10, "invalid program image")
)
