package analyzer

import "errors"

var (
	// ErrDictNotFound is returned when a dictionary path does not exist.
	ErrDictNotFound = errors.New("analyzer: dictionary not found")

	// ErrInputTooLong is returned when Parse receives more bytes than the
	// session's input ceiling.
	ErrInputTooLong = errors.New("analyzer: input exceeds session limit")

	// ErrPoolClosed is returned when acquiring from a closed pool.
	ErrPoolClosed = errors.New("analyzer: pool is closed")

	// ErrSessionClosed is returned when parsing with a closed session.
	ErrSessionClosed = errors.New("analyzer: session is closed")
)
