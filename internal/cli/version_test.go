package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionShort(t *testing.T) {
	buildVersion = "1.2.3"
	versionShort = true
	defer func() { versionShort = false }()

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("version command error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "1.2.3" {
		t.Errorf("version --short output = %q, want %q", got, "1.2.3")
	}
}

func TestVersionJSON(t *testing.T) {
	buildVersion = "1.2.3"
	buildCommit = "abc1234"
	versionJSON = true
	defer func() { versionJSON = false }()

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	defer versionCmd.SetOut(nil)

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("version command error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"version": "1.2.3"`) || !strings.Contains(out, `"commit": "abc1234"`) {
		t.Errorf("version --json output missing fields: %s", out)
	}
}

func TestRunRenderRejectsBadID(t *testing.T) {
	renderID = 0
	if err := runRender(renderCmd, nil); err == nil {
		t.Error("expected error for agent id 0")
	}

	renderID = -3
	if err := runRender(renderCmd, nil); err == nil {
		t.Error("expected error for negative agent id")
	}
}
