package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rezkam/docpage/internal/engine"
)

// clearCredentialEnv blanks every credential variable so doctor results
// don't depend on the host environment.
func clearCredentialEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"ANTHROPIC_API_KEY", "CLAUDE_API_KEY",
		"OPENAI_API_KEY", "OPENAI_KEY",
		"GEMINI_API_KEY", "GOOGLE_API_KEY",
	} {
		t.Setenv(name, "")
	}
}

func writeDoctorTemplate(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "template.html")
	if err := os.WriteFile(path, []byte("{{TITLE}}{{CONTENT}}"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunDoctorReady(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	tpl := writeDoctorTemplate(t)

	result := runDoctor([]string{tpl}, "claude-sonnet")

	if result.Status != "ready" {
		t.Fatalf("status = %q, want ready (errors: %v, warnings: %v)", result.Status, result.Errors, result.Warnings)
	}
	if !result.Template.Found || result.Template.Path != tpl {
		t.Errorf("template status = %+v", result.Template)
	}
	if !result.Credentials.Found || result.Credentials.Provider != "anthropic" {
		t.Errorf("credentials status = %+v", result.Credentials)
	}
	if result.Model == nil || !result.Model.Known || result.Model.Provider != "anthropic" {
		t.Errorf("model status = %+v", result.Model)
	}
}

func TestRunDoctorMissingTemplate(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	missing := filepath.Join(t.TempDir(), "template.html")

	result := runDoctor([]string{missing}, "")

	if result.Status != "errors" {
		t.Fatalf("status = %q, want errors", result.Status)
	}
	if result.Template.Found {
		t.Error("template reported found")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], engine.CodeAssetNotFound) {
		t.Errorf("errors = %v, want one carrying %s", result.Errors, engine.CodeAssetNotFound)
	}
}

func TestRunDoctorNoCredentialsWarns(t *testing.T) {
	clearCredentialEnv(t)
	tpl := writeDoctorTemplate(t)

	result := runDoctor([]string{tpl}, "")

	if result.Status != "warnings" {
		t.Fatalf("status = %q, want warnings", result.Status)
	}
	if result.Credentials.Found {
		t.Errorf("credentials status = %+v, want none", result.Credentials)
	}
}

func TestRunDoctorUnknownModel(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	tpl := writeDoctorTemplate(t)

	result := runDoctor([]string{tpl}, "made-up-model")

	if result.Status != "errors" {
		t.Fatalf("status = %q, want errors", result.Status)
	}
	if result.Model == nil || result.Model.Known {
		t.Errorf("model status = %+v, want unknown", result.Model)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], engine.CodeModelNotFound) {
		t.Errorf("errors = %v, want one carrying %s", result.Errors, engine.CodeModelNotFound)
	}
}

func TestRunDoctorCmdJSONOutput(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	tpl := writeDoctorTemplate(t)

	flags := &cliFlags{template: tpl, jsonOut: true}
	var out bytes.Buffer

	code := runDoctorCmd(flags, DefaultConfig(), &out)
	if code != ExitSuccess {
		t.Fatalf("runDoctorCmd() = %d, want %d", code, ExitSuccess)
	}

	var result doctorResult
	if err := json.Unmarshal(out.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	if result.Status != "ready" {
		t.Errorf("status = %q, want ready", result.Status)
	}
}

func TestRunDoctorCmdTextOutput(t *testing.T) {
	clearCredentialEnv(t)
	missing := filepath.Join(t.TempDir(), "template.html")

	flags := &cliFlags{template: missing}
	var out bytes.Buffer

	code := runDoctorCmd(flags, DefaultConfig(), &out)
	if code != ExitGeneral {
		t.Fatalf("runDoctorCmd() = %d, want %d", code, ExitGeneral)
	}
	if !strings.Contains(out.String(), "Template: not found") {
		t.Errorf("output = %q", out.String())
	}
}
