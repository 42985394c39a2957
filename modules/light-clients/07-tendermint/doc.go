/*
Package tendermint implements the ClientState and ConsensusState that anchor an
SP1 ICS-07 Tendermint light client, together with their Solidity ABI encoding.
The states follow the ICS 07 specification
(https://github.com/cosmos/ibc/tree/main/spec/client/ics-007-tendermint-client),
but are encoded for the on-chain verifier contract rather than as protobuf.
*/
package tendermint
