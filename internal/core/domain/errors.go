package domain

import "errors"

var (
	ErrBallotNotFound  = errors.New("ballot not found")
	ErrInvalidBallotID = errors.New("invalid ballot id")
	ErrOptionNotFound  = errors.New("option not found on this ballot")
	ErrEmptyOptionText = errors.New("option text must not be blank")
	ErrInternal        = errors.New("internal server error")
)
