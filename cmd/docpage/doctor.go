package main

import (
	"encoding/json"
	"fmt"
	"io"

	docpage "github.com/rezkam/docpage"
	"github.com/rezkam/docpage/internal/auth"
	"github.com/rezkam/docpage/internal/engine"
	"github.com/rezkam/docpage/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status      string           `json:"status"` // "ready", "warnings", "errors"
	Template    templateStatus   `json:"template"`
	Credentials credentialStatus `json:"credentials"`
	Model       *modelStatus     `json:"model,omitempty"`
	Warnings    []string         `json:"warnings,omitempty"`
	Errors      []string         `json:"errors,omitempty"`
}

// templateStatus reports template discovery results.
type templateStatus struct {
	Found    bool     `json:"found"`
	Path     string   `json:"path,omitempty"`
	Searched []string `json:"searched,omitempty"`
}

// credentialStatus reports provider credential detection results.
type credentialStatus struct {
	Found    bool   `json:"found"`
	Provider string `json:"provider,omitempty"`
	Source   string `json:"source,omitempty"`
}

// modelStatus reports configured-model validation results.
type modelStatus struct {
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
	Known    bool   `json:"known"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = ready (including warnings), 1 = errors found.
func runDoctorCmd(flags *cliFlags, cfg *Config, stdout io.Writer) int {
	result := runDoctor(templateCandidates(flags, cfg), cfg.Model)

	if flags.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(stdout, "encoding doctor output: %v\n", err)
			return ExitGeneral
		}
	} else {
		printDoctorText(stdout, result)
	}

	if len(result.Errors) > 0 {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor checks the environment: template discoverable, provider
// credentials present, configured model known to the engine registry.
func runDoctor(candidates []string, model string) doctorResult {
	var result doctorResult

	if len(candidates) == 0 {
		candidates = docpage.DefaultTemplateCandidates()
	}
	for _, candidate := range candidates {
		if fileutil.FileExists(candidate) {
			result.Template = templateStatus{Found: true, Path: candidate}
			break
		}
	}
	if !result.Template.Found {
		result.Template = templateStatus{Searched: candidates}
		err := engine.AssetNotFoundError(docpage.TemplateFileName, candidates)
		result.Errors = append(result.Errors, fmt.Sprintf("[%s] %v", engine.Code(err), err))
	}

	if found, ok := auth.FirstAvailable(nil, nil); ok {
		result.Credentials = credentialStatus{Found: true, Provider: found.Provider, Source: found.Source}
	} else {
		result.Warnings = append(result.Warnings, "no provider credentials found in environment")
	}

	if model != "" {
		provider, err := engine.ResolveModelProvider(model)
		if err != nil {
			result.Model = &modelStatus{Name: model}
			result.Errors = append(result.Errors, fmt.Sprintf("[%s] %v", engine.Code(err), err))
		} else {
			result.Model = &modelStatus{Name: model, Provider: provider, Known: true}
		}
	}

	switch {
	case len(result.Errors) > 0:
		result.Status = "errors"
	case len(result.Warnings) > 0:
		result.Status = "warnings"
	default:
		result.Status = "ready"
	}
	return result
}

// printDoctorText writes the human-readable doctor report.
func printDoctorText(w io.Writer, r doctorResult) {
	fmt.Fprintf(w, "Status: %s\n", r.Status)

	if r.Template.Found {
		fmt.Fprintf(w, "Template: %s\n", r.Template.Path)
	} else {
		fmt.Fprintln(w, "Template: not found")
		for _, path := range r.Template.Searched {
			fmt.Fprintf(w, "  searched %s\n", path)
		}
	}

	if r.Credentials.Found {
		fmt.Fprintf(w, "Credentials: %s (via %s)\n", r.Credentials.Provider, r.Credentials.Source)
	} else {
		fmt.Fprintln(w, "Credentials: none found")
	}

	if r.Model != nil {
		if r.Model.Known {
			fmt.Fprintf(w, "Model: %s (%s)\n", r.Model.Name, r.Model.Provider)
		} else {
			fmt.Fprintf(w, "Model: %s (unknown)\n", r.Model.Name)
		}
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	for _, e := range r.Errors {
		fmt.Fprintf(w, "Error: %s\n", e)
	}
}
