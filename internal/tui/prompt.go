package tui

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

var ErrEmptyInput = errors.New("value must not be empty")

// Labels of the names asked for, in argument order.
var labels = []string{"Class name", "Parent class name"}

// AskFunc reads one value for the given label.
type AskFunc func(label string) (string, error)

// NonEmpty rejects blank input.
func NonEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrEmptyInput
	}
	return nil
}

// Ask prompts on the terminal until a non-blank value is entered.
func Ask(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: NonEmpty,
	}
	result, err := prompt.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(result), nil
}

// FillMissing returns args extended with answers for whichever of the class
// name and parent class name are missing.
func FillMissing(args []string, ask AskFunc) ([]string, error) {
	filled := append([]string(nil), args...)
	for i := len(filled); i < len(labels); i++ {
		v, err := ask(labels[i])
		if err != nil {
			return nil, err
		}
		if err := NonEmpty(v); err != nil {
			return nil, err
		}
		filled = append(filled, v)
	}
	return filled, nil
}
