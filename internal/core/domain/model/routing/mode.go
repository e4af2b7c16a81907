package routing

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Mode decides how many stations an item can be routed to.
type Mode int

const (
	// ModeUnknown represents an invalid or undefined routing mode.
	ModeUnknown Mode = iota

	// Exclusive routes each item to exactly one station, the best match.
	Exclusive

	// FanOut routes each item to every station matched at the best priority.
	FanOut
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		ModeUnknown: "unknown",
		Exclusive:   "exclusive",
		FanOut:      "fanout",
	}
}

func getValidModeStrings() map[Mode]string {
	//nolint:exhaustive // ModeUnknown is intentionally excluded as it's invalid
	return map[Mode]string{
		Exclusive: "exclusive",
		FanOut:    "fanout",
	}
}

// Validate checks if the Mode value is valid.
func (m Mode) Validate() error {
	if _, ok := getValidModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("mode is invalid", fmt.Errorf("%d is not a valid routing mode", m))
	}
	return nil
}

// String returns the configuration name of the mode.
func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// ModeFromString parses a configuration value into a Mode.
func ModeFromString(value string) (Mode, error) {
	for mode, str := range getValidModeStrings() {
		if str == value {
			return mode, nil
		}
	}
	return ModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"mode is invalid",
		fmt.Errorf("%q is not a valid routing mode", value),
	)
}
