package ui

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

type Prompt string

const (
	ThemeNamePrompt   Prompt = "Theme name"
	ProjectNamePrompt Prompt = "Project directory"
)

func PromptText(label Prompt) (string, error) {
	prompt := promptui.Prompt{
		Label: string(label),
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("can't be blank")
			}
			return nil
		},
	}
	value, err := prompt.Run()
	return strings.TrimSpace(value), err
}
