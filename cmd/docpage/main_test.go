package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRealMainVersion(t *testing.T) {
	if code := realMain([]string{"docpage", "--version"}); code != ExitSuccess {
		t.Errorf("realMain(--version) = %d, want %d", code, ExitSuccess)
	}
}

func TestRealMainUnknownFlag(t *testing.T) {
	if code := realMain([]string{"docpage", "--bogus"}); code != ExitUsage {
		t.Errorf("realMain(--bogus) = %d, want %d", code, ExitUsage)
	}
}

func TestRealMainNoInput(t *testing.T) {
	if code := realMain([]string{"docpage"}); code != ExitUsage {
		t.Errorf("realMain() with no input = %d, want %d", code, ExitUsage)
	}
}

func TestRealMainRendersFile(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "template.html")
	if err := os.WriteFile(tpl, []byte("<title>{{TITLE}}</title>{{CONTENT}}"), 0o644); err != nil {
		t.Fatal(err)
	}
	src := filepath.Join(dir, "guide.md")
	if err := os.WriteFile(src, []byte("# Guide\n\nHello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code := realMain([]string{"docpage", "--quiet", "--template", tpl, src})
	if code != ExitSuccess {
		t.Fatalf("realMain() = %d, want %d", code, ExitSuccess)
	}

	page, err := os.ReadFile(filepath.Join(dir, "guide.html"))
	if err != nil {
		t.Fatalf("page not written: %v", err)
	}
	if !strings.Contains(string(page), "<title>Guide</title>") {
		t.Errorf("page = %q", page)
	}
	if _, err := os.Stat(filepath.Join(dir, "guide.body.html")); err != nil {
		t.Errorf("fragment not written: %v", err)
	}
}

func TestRealMainMissingTemplate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "guide.md")
	if err := os.WriteFile(src, []byte("# Guide\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code := realMain([]string{"docpage", "--quiet", "--template", filepath.Join(dir, "template.html"), src})
	if code != ExitAsset {
		t.Errorf("realMain() = %d, want %d", code, ExitAsset)
	}
}

func TestTemplateCandidatesPrecedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Template.Path = "from-config.html"

	if got := templateCandidates(&cliFlags{template: "from-flag.html"}, cfg); len(got) != 1 || got[0] != "from-flag.html" {
		t.Errorf("flag should win, got %v", got)
	}
	if got := templateCandidates(&cliFlags{}, cfg); len(got) != 1 || got[0] != "from-config.html" {
		t.Errorf("config should win over defaults, got %v", got)
	}
	if got := templateCandidates(&cliFlags{}, DefaultConfig()); got != nil {
		t.Errorf("defaults signalled by nil, got %v", got)
	}
}
