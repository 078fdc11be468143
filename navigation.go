package main

import (
	"errors"
	"fmt"
)

// Screen is one of the three views of the tool
type Screen int

const (
	ScreenHome Screen = iota
	ScreenHealthForm
	ScreenPortfolioForm
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenHealthForm:
		return "health"
	case ScreenPortfolioForm:
		return "portfolio"
	default:
		return "unknown"
	}
}

// ParseScreen maps a menu choice or route name to a screen
func ParseScreen(name string) (Screen, error) {
	switch name {
	case "home", "0":
		return ScreenHome, nil
	case "health", "financial", "1":
		return ScreenHealthForm, nil
	case "portfolio", "investment", "2":
		return ScreenPortfolioForm, nil
	default:
		return ScreenHome, fmt.Errorf("unknown screen %q", name)
	}
}

// ErrInvalidTransition is returned when a screen cannot be reached from the
// current one
var ErrInvalidTransition = errors.New("invalid screen transition")

// Navigator tracks which screen is showing. Home leads to either calculator
// and each calculator only leads back home.
type Navigator struct {
	current Screen
}

// NewNavigator starts on the home screen
func NewNavigator() *Navigator {
	return &Navigator{current: ScreenHome}
}

// Current returns the screen being shown
func (n *Navigator) Current() Screen {
	return n.current
}

// Select moves from home to a calculator
func (n *Navigator) Select(to Screen) error {
	if n.current != ScreenHome || (to != ScreenHealthForm && to != ScreenPortfolioForm) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, n.current, to)
	}
	n.current = to
	return nil
}

// Back returns to the home screen
func (n *Navigator) Back() error {
	if n.current == ScreenHome {
		return fmt.Errorf("%w: already on %s", ErrInvalidTransition, ScreenHome)
	}
	n.current = ScreenHome
	return nil
}
