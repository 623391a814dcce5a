package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectAnalysis returns the first analysis document found in the working
// directory, or the default name.
func detectAnalysis() string {
	for _, candidate := range []string{"analysis.json", "data/analysis.json", "output/analysis.json"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "analysis.json"
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to plantlore! Let's configure the reader.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Analysis document.
	analysisPrompt := promptui.Prompt{
		Label:   "Analysis document (path or URL)",
		Default: detectAnalysis(),
	}
	analysis, err := analysisPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("analysis location: %w", err)
	}
	cfg.Analysis = strings.TrimSpace(analysis)

	// 2. Default view.
	viewPrompt := promptui.Select{
		Label: "View shown first",
		Items: Views,
	}
	_, view, err := viewPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default view: %w", err)
	}
	cfg.DefaultView = view

	// 3. Corpus labels.
	firstPrompt := promptui.Prompt{Label: "Label for the first text", Default: cfg.Labels.First}
	first, err := firstPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("first label: %w", err)
	}
	secondPrompt := promptui.Prompt{Label: "Label for the second text", Default: cfg.Labels.Second}
	second, err := secondPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("second label: %w", err)
	}
	cfg.Labels = LabelsConfig{First: strings.TrimSpace(first), Second: strings.TrimSpace(second)}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for `plantlore serve`",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 5. Asset patterns.
	assetsPrompt := promptui.Prompt{
		Label:   "Asset patterns copied into the site (comma-separated globs)",
		Default: strings.Join(DefaultAssets, ","),
	}
	assetsStr, err := assetsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("asset patterns: %w", err)
	}
	cfg.Assets = splitAndTrim(assetsStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(input string) error {
	port, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
