package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/treb-ccip/internal/config"
	"github.com/trebuchet-org/treb-ccip/internal/domain"
	"github.com/trebuchet-org/treb-ccip/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectNetwork asks the operator to pick one of options
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, prompt string, options []domain.Descriptor) (domain.NetworkKey, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no networks provided for selection")
	}
	if len(options) == 1 {
		return options[0].Key, nil
	}
	if s.config.NonInteractive {
		return "", fmt.Errorf("--network is required in non-interactive mode")
	}

	items := formatNetworkOptions(options)
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:     prompt,
		Items:     items,
		Templates: templates,
		Size:      10,
		Searcher:  createFuzzySearchFunc(items),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return options[index].Key, nil
}

// Confirm asks a yes/no question. Non-interactive mode always confirms.
func (s *SelectorAdapter) Confirm(prompt string) (bool, error) {
	if s.config.NonInteractive {
		return true, nil
	}
	confirm := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	if _, err := confirm.Run(); err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// formatNetworkOptions renders "Avalanche Fuji (fuji, 43113)"
func formatNetworkOptions(options []domain.Descriptor) []string {
	items := make([]string, len(options))
	for i, d := range options {
		name := color.New(color.FgWhite, color.Bold).Sprint(d.Name)
		detail := color.New(color.FgBlue).Sprintf("%s, %d", d.Key, d.ChainID)
		items[i] = fmt.Sprintf("%s (%s)", name, detail)
	}
	return items
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}

		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// Ensure the adapter implements the interface
var (
	_ usecase.NetworkSelector = (*SelectorAdapter)(nil)
	_ usecase.Confirmer       = (*SelectorAdapter)(nil)
)
