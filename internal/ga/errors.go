package ga

import "errors"

var (
	// ErrInvalidArgument is returned for parameters outside their documented domain:
	// alphabet size, max length, mutation rate, population size, nil inputs.
	ErrInvalidArgument = errors.New("ga: invalid argument")

	// ErrOutOfRange is returned when a parent chromosome is too short for the
	// positions crossover has to read.
	ErrOutOfRange = errors.New("ga: out of range")
)
