package tendermint_test

import (
	"strings"

	clienttypes "github.com/SecretSaturn/sp1-ics07-tendermint/modules/core/02-client/types"
	ibctm "github.com/SecretSaturn/sp1-ics07-tendermint/modules/light-clients/07-tendermint"
)

func (s *TendermintTestSuite) TestDefaults() {
	s.Require().Equal(ibctm.Fraction{Numerator: 1, Denominator: 3}, ibctm.DefaultTrustLevel)
	s.Require().Equal(int64(14*24*60*60*1_000_000_000), ibctm.DefaultTrustingPeriod.Nanoseconds())

	clientState := s.newClientState()
	s.Require().False(clientState.IsFrozen)
	s.Require().Equal(chainID, clientState.GetChainID())
	s.Require().Equal(height, clientState.GetLatestHeight())
}

func (s *TendermintTestSuite) TestValidate() {
	testCases := []struct {
		name        string
		clientState *ibctm.ClientState
		expPass     bool
	}{
		{
			name:        "valid client",
			clientState: s.newClientState(),
			expPass:     true,
		},
		{
			name:        "valid client with trusting period shorter than unbonding period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, height),
			expPass:     true,
		},
		{
			name:        "invalid chainID",
			clientState: ibctm.NewClientState("  ", ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, height),
			expPass:     false,
		},
		{
			name:        "invalid chainID - chainID validation failed for chainID of length 51",
			clientState: ibctm.NewClientState(strings.Repeat("a", 49)+"-1", ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, clienttypes.NewHeight(1, 1)),
			expPass:     false,
		},
		{
			name:        "invalid chainID - no revision number",
			clientState: ibctm.NewClientState("testchain", ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, height),
			expPass:     false,
		},
		{
			name:        "invalid trust level",
			clientState: ibctm.NewClientState(chainID, ibctm.Fraction{Numerator: 0, Denominator: 1}, trustingPeriod, ubdPeriod, height),
			expPass:     false,
		},
		{
			name:        "invalid zero trusting period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, 0, ubdPeriod, height),
			expPass:     false,
		},
		{
			name:        "invalid negative unbonding period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, -1, height),
			expPass:     false,
		},
		{
			name:        "invalid revision number",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, clienttypes.NewHeight(8, 1000)),
			expPass:     false,
		},
		{
			name:        "invalid revision height",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, trustingPeriod, ubdPeriod, clienttypes.NewHeight(7, 0)),
			expPass:     false,
		},
		{
			name:        "trusting period not less than or equal to unbonding period",
			clientState: ibctm.NewClientState(chainID, ibctm.DefaultTrustLevel, ubdPeriod, trustingPeriod, height),
			expPass:     false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.clientState.Validate()
			if tc.expPass {
				s.Require().NoError(err, tc.name)
			} else {
				s.Require().Error(err, tc.name)
			}
		})
	}
}
