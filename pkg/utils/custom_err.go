package utils

import "errors"

var (
	ErrAlreadySubscribed = errors.New("user is already subscribed")
	ErrNotSubscribed     = errors.New("user is not subscribed")
	ErrRecordNotFound    = errors.New("record not found")
	ErrNumberNotFound    = errors.New("lottery number not found")
	ErrNoEligibleEntries = errors.New("no entries available for selection")
	ErrNoWinnerYet       = errors.New("no winner found, pool not cleared")
	ErrNumberTaken       = errors.New("lottery number already taken")
	ErrDuplicateEntry    = errors.New("transaction already has an entry")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDatabaseError     = errors.New("database error")
)
