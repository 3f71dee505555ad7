package common_errors

import (
	"golang.org/x/xerrors"
)

var (
	ErrUnrecognizedLogStyle = xerrors.New("unrecognized log style")
	ErrBadMinTimeToLog      = xerrors.New("min time to log is not a number")
	ErrBadProfile           = xerrors.New("malformed timing profile")
)

func IsUnrecognizedLogStyleError(err error) bool {
	return xerrors.Is(err, ErrUnrecognizedLogStyle)
}

func IsBadProfileError(err error) bool {
	return xerrors.Is(err, ErrBadProfile)
}
