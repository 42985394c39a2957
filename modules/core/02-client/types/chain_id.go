package types

import (
	"regexp"
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"

	ibcerrors "github.com/SecretSaturn/sp1-ics07-tendermint/internal/errors"
)

// DefaultMaxCharacterLength is the maximum length of a chain identifier.
const DefaultMaxCharacterLength = 64

// IsValidID defines regular expression to check if the string consist of
// characters in one of the following categories only:
// - Alphanumeric
// - `.`, `_`, `+`, `-`, `#`
// - `[`, `]`, `<`, `>`
var IsValidID = regexp.MustCompile(`^[a-zA-Z0-9\.\_\+\-\#\[\]\<\>]+$`).MatchString

// ParseChainID returns the revision number of a chain-id of the form
// {name}-{revision}, e.g. "mocha-4" has revision number 4. The revision is
// the suffix after the last '-', written in decimal without leading zeros.
func ParseChainID(chainID string) (uint64, error) {
	if len(chainID) > DefaultMaxCharacterLength {
		return 0, errorsmod.Wrapf(ibcerrors.ErrMalformedChainID, "chain-id %q has invalid length: %d, must be at most %d characters", chainID, len(chainID), DefaultMaxCharacterLength)
	}
	if !IsValidID(chainID) {
		return 0, errorsmod.Wrapf(ibcerrors.ErrMalformedChainID, "chain-id %q must contain only alphanumeric or the following characters: '.', '_', '+', '-', '#', '[', ']', '<', '>'", chainID)
	}

	idx := strings.LastIndex(chainID, "-")
	if idx <= 0 || idx == len(chainID)-1 {
		return 0, errorsmod.Wrapf(ibcerrors.ErrMalformedChainID, "chain-id %q is not in the format {name}-{revision}", chainID)
	}

	suffix := chainID[idx+1:]
	if strings.HasPrefix(suffix, "0") && suffix != "0" {
		return 0, errorsmod.Wrapf(ibcerrors.ErrMalformedChainID, "chain-id %q has a revision number with leading zeros", chainID)
	}
	revision, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		return 0, errorsmod.Wrapf(ibcerrors.ErrMalformedChainID, "chain-id %q has an invalid revision number: %s", chainID, err)
	}

	return revision, nil
}
