package tendermint_test

import (
	"bytes"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
	clienttypes "github.com/SecretSaturn/sp1-ics07-tendermint/modules/core/02-client/types"
	ibctm "github.com/SecretSaturn/sp1-ics07-tendermint/modules/light-clients/07-tendermint"
)

func word(v uint64) []byte {
	return common.LeftPadBytes(new(big.Int).SetUint64(v).Bytes(), 32)
}

func (s *TendermintTestSuite) TestConsensusStateABILayout() {
	consensusState := s.newConsensusState()

	encoded, err := consensusState.ABIEncode()
	s.Require().NoError(err)

	// static tuple: no offset word, three 32 byte slots
	var expected []byte
	expected = append(expected, word(uint64(s.now.UnixNano()))...)
	expected = append(expected, s.appHash[:]...)
	expected = append(expected, s.valsHash[:]...)
	s.Require().Equal(expected, encoded)
}

func (s *TendermintTestSuite) TestClientStateABILayout() {
	clientState := s.newClientState()

	encoded, err := clientState.ABIEncode()
	s.Require().NoError(err)

	nanos := uint64(14 * 24 * 60 * 60 * 1_000_000_000)

	var expected []byte
	expected = append(expected, word(0x20)...)  // offset of the dynamic tuple
	expected = append(expected, word(0x100)...) // offset of chainId within the tuple
	expected = append(expected, word(1)...)     // trustLevel.numerator
	expected = append(expected, word(3)...)     // trustLevel.denominator
	expected = append(expected, word(7)...)     // latestHeight.revisionNumber
	expected = append(expected, word(1000)...)  // latestHeight.revisionHeight
	expected = append(expected, word(0)...)     // isFrozen
	expected = append(expected, word(nanos)...) // trustingPeriod
	expected = append(expected, word(nanos)...) // unbondingPeriod
	expected = append(expected, word(uint64(len(chainID)))...)
	expected = append(expected, common.RightPadBytes([]byte(chainID), 32)...)
	s.Require().Equal(expected, encoded)
}

func (s *TendermintTestSuite) TestABIEncodeDeterministic() {
	first, err := s.newClientState().ABIEncode()
	s.Require().NoError(err)
	second, err := s.newClientState().ABIEncode()
	s.Require().NoError(err)
	s.Require().Equal(first, second)

	first, err = s.newConsensusState().ABIEncode()
	s.Require().NoError(err)
	second, err = s.newConsensusState().ABIEncode()
	s.Require().NoError(err)
	s.Require().Equal(first, second)
}

func (s *TendermintTestSuite) TestClientStateABIInjective() {
	base := s.newClientState()

	variants := []*ibctm.ClientState{
		base,
		ibctm.NewClientState("testchain-8", ibctm.DefaultTrustLevel, ibctm.DefaultTrustingPeriod, ibctm.DefaultTrustingPeriod, clienttypes.NewHeight(8, 1000)),
		ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, ibctm.DefaultTrustingPeriod, ibctm.DefaultTrustingPeriod, clienttypes.NewHeight(7, 1001)),
		ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, ibctm.DefaultTrustingPeriod, ibctm.DefaultTrustingPeriod, clienttypes.NewHeight(1000, 7)),
		ibctm.NewClientState(chainID, ibctm.Fraction{Numerator: 2, Denominator: 3}, ibctm.DefaultTrustingPeriod, ibctm.DefaultTrustingPeriod, height),
		ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, time.Hour, ibctm.DefaultTrustingPeriod, height),
		ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, ibctm.DefaultTrustingPeriod, ubdPeriod, height),
	}
	frozen := *base
	frozen.IsFrozen = true
	variants = append(variants, &frozen)

	seen := make(map[string]int)
	for i, cs := range variants {
		encoded, err := cs.ABIEncode()
		s.Require().NoError(err)

		prev, found := seen[string(encoded)]
		s.Require().False(found, "client states %d and %d share an encoding", prev, i)
		seen[string(encoded)] = i
	}
}

func (s *TendermintTestSuite) TestConsensusStateABIInjective() {
	variants := []*ibctm.ConsensusState{
		s.newConsensusState(),
		ibctm.NewConsensusState(s.now.Add(time.Nanosecond), s.appHash, s.valsHash),
		ibctm.NewConsensusState(s.now, s.valsHash, s.appHash),
		ibctm.NewConsensusState(s.now, [32]byte{}, s.valsHash),
		ibctm.NewConsensusState(s.now, s.appHash, [32]byte{1}),
	}

	seen := make(map[string]int)
	for i, cs := range variants {
		encoded, err := cs.ABIEncode()
		s.Require().NoError(err)

		prev, found := seen[string(encoded)]
		s.Require().False(found, "consensus states %d and %d share an encoding", prev, i)
		seen[string(encoded)] = i
	}
}

func (s *TendermintTestSuite) TestABIDecodeRoundTrip() {
	clientState := s.newClientState()
	encoded, err := clientState.ABIEncode()
	s.Require().NoError(err)

	decodedClientState, err := ibctm.ABIDecodeClientState(encoded)
	s.Require().NoError(err)
	s.Require().Equal(clientState, decodedClientState)

	consensusState := s.newConsensusState()
	encoded, err = consensusState.ABIEncode()
	s.Require().NoError(err)

	decodedConsensusState, err := ibctm.ABIDecodeConsensusState(encoded)
	s.Require().NoError(err)
	s.Require().True(consensusState.Timestamp.Equal(decodedConsensusState.Timestamp))
	s.Require().Equal(consensusState.Root, decodedConsensusState.Root)
	s.Require().Equal(consensusState.NextValidatorsHash, decodedConsensusState.NextValidatorsHash)
}

func (s *TendermintTestSuite) TestABIDecodeInvalid() {
	_, err := ibctm.ABIDecodeClientState([]byte{0x01, 0x02})
	s.Require().ErrorIs(err, ibcerrors.ErrAbiDecoding)

	_, err = ibctm.ABIDecodeConsensusState(bytes.Repeat([]byte{0x01}, 31))
	s.Require().ErrorIs(err, ibcerrors.ErrAbiDecoding)
}

func (s *TendermintTestSuite) TestHexRoundTrip() {
	encoded, err := s.newClientState().ABIEncode()
	s.Require().NoError(err)

	hexStr := ibctm.EncodeHex(encoded)
	s.Require().NotContains(hexStr, "0x")
	s.Require().Equal(hexStr, common.Bytes2Hex(encoded))
	for _, c := range hexStr {
		s.Require().False(c >= 'A' && c <= 'F', "hex must be lower-case")
	}

	decoded, err := ibctm.DecodeHex(hexStr)
	s.Require().NoError(err)
	s.Require().Equal(encoded, decoded)

	_, err = ibctm.DecodeHex("0x" + hexStr)
	s.Require().ErrorIs(err, ibcerrors.ErrAbiDecoding)

	_, err = ibctm.DecodeHex("abc")
	s.Require().ErrorIs(err, ibcerrors.ErrAbiDecoding)
}

func (s *TendermintTestSuite) TestBytesToBytes32() {
	s.Require().Equal([32]byte{}, ibctm.BytesToBytes32(nil))

	b := ibctm.BytesToBytes32([]byte{0xaa, 0xbb})
	s.Require().Equal(byte(0xaa), b[0])
	s.Require().Equal(byte(0xbb), b[1])
	s.Require().Equal(byte(0x00), b[31])
}
