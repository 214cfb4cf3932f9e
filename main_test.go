package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kemilad/campusdash/internal/config"
)

func TestDisplayVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", displayVersion("1.2.3"))
	assert.Equal(t, "v1.2.3", displayVersion("v1.2.3"))
	assert.Equal(t, "dev", displayVersion("dev"))
}

func TestNavList(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"nav", "list"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "home")
	assert.Contains(t, out.String(), "Calendar")
}

func TestDashboardContentStudentOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Student = "Jordan Lee"
	assert.Equal(t, "Jordan Lee", dashboardContent(cfg).Student.Name)

	assert.Equal(t, "Alex Morgan", dashboardContent(config.Default()).Student.Name)
}

func TestRunTUIRejectsUnknownStart(t *testing.T) {
	err := runTUI(config.Default(), "grades")
	assert.Error(t, err)
}
