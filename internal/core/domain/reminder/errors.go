package reminder

import "errors"

var (
	ErrInvalidTime       = errors.New("trigger time must be a well-formed HH:MM value")
	ErrEntryDoesNotExist = errors.New("reminder entry does not exist")
	ErrAlreadyDelivered  = errors.New("reminder entry has already been delivered")
)
