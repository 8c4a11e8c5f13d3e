package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"peertest/internal/pkg/config"
	"peertest/pkg/constants"
)

const testBaseURL = "https://gitlab.example.com"

// newTestEngine 构造带模板目录的测试引擎
func newTestEngine(t *testing.T, m *MockGateway) *Engine {
	t.Helper()
	return NewEngine(m.Connector(), config.GitLabConfig{
		BotName:          "ptbot",
		BotScopes:        []string{"api"},
		TokenTTLMonths:   11,
		PipelineTplDir:   writePipelineTemplates(t),
		TestingSuffix:    "peertesting",
		ReservedBranches: []string{"main"},
	})
}

// writePipelineTemplates 在临时目录落一套流水线模板
func writePipelineTemplates(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	script := "#!/bin/sh\nset -e\npytest test/\n"
	ciYaml := "stages:\n  - test\nrun-tests:\n  stage: test\n  script:\n    - sh detect_and_test.sh\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.PipelineScriptFile), []byte(script), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, constants.PipelineYamlFile), []byte(ciYaml), 0o644))
	return dir
}
