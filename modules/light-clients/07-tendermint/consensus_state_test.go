package tendermint_test

import (
	"time"

	ibctm "github.com/SecretSaturn/sp1-ics07-tendermint/modules/light-clients/07-tendermint"
)

func (s *TendermintTestSuite) TestConsensusStateValidateBasic() {
	testCases := []struct {
		msg            string
		consensusState *ibctm.ConsensusState
		expectPass     bool
	}{
		{
			"success",
			s.newConsensusState(),
			true,
		},
		{
			"success with empty root",
			ibctm.NewConsensusState(s.now, [32]byte{}, s.valsHash),
			true,
		},
		{
			"nextvalshash is empty",
			ibctm.NewConsensusState(s.now, s.appHash, [32]byte{}),
			false,
		},
		{
			"timestamp is zero",
			ibctm.NewConsensusState(time.Time{}, s.appHash, s.valsHash),
			false,
		},
		{
			"timestamp is the unix epoch",
			ibctm.NewConsensusState(time.Unix(0, 0), s.appHash, s.valsHash),
			false,
		},
	}

	for i, tc := range testCases {
		err := tc.consensusState.ValidateBasic()
		if tc.expectPass {
			s.Require().NoError(err, "valid test case %d failed: %s", i, tc.msg)
		} else {
			s.Require().Error(err, "invalid test case %d passed: %s", i, tc.msg)
		}
	}
}

func (s *TendermintTestSuite) TestGetTimestamp() {
	consensusState := s.newConsensusState()
	s.Require().Equal(uint64(s.now.UnixNano()), consensusState.GetTimestamp())
}
