package ui

import (
	"time"

	"github.com/briandowns/spinner"
)

var DefaultSpinnerTokens = spinner.CharSets[14]

type SpinnerCfg struct {
	Message  string
	Tokens   []string
	Duration time.Duration
}

var s *spinner.Spinner

// StartSpinner animates only on a terminal; otherwise the message is printed once.
func StartSpinner(cfg *SpinnerCfg) {
	if !SupportsANSICodes() || verbose {
		if cfg.Message != "" {
			Info(cfg.Message)
		}
		return
	}
	if cfg.Tokens == nil {
		cfg.Tokens = DefaultSpinnerTokens
	}
	if cfg.Duration == 0 {
		cfg.Duration = 100 * time.Millisecond
	}
	s = spinner.New(cfg.Tokens, cfg.Duration)
	s.Writer = out

	if cfg.Message != "" {
		s.Suffix = " " + cfg.Message
	}

	s.Start()
}

func StopSpinner(msg string) {
	if s == nil {
		if msg != "" {
			Print(msg + "\n")
		}
		return
	}
	if msg != "" {
		s.FinalMSG = msg + "\n"
	}

	s.Stop()
	s = nil
}
