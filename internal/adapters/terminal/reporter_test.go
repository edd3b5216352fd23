package terminal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter_CheckLineIsOverwritten(t *testing.T) {
	var out bytes.Buffer
	r := NewReporterTo(&out)

	r.CheckStarted("clean working tree")
	r.CheckFinished("clean working tree", true)

	s := out.String()
	assert.Contains(t, s, "clean working tree...")
	assert.Contains(t, s, "\r[")
	assert.Contains(t, s, "✓")
	assert.Contains(t, s, "] clean working tree   \n\n")
}

func TestReporter_FailedCheckUsesCross(t *testing.T) {
	var out bytes.Buffer
	r := NewReporterTo(&out)

	r.CheckFinished("main pushed", false)

	assert.Contains(t, out.String(), "⨯")
	assert.NotContains(t, out.String(), "✓")
}

func TestReporter_Messages(t *testing.T) {
	var out bytes.Buffer
	r := NewReporterTo(&out)

	r.Note("These checks are only for the main branch of the repo")
	r.Info("Deleting tmuxinator config")
	r.Success("Deleted notes!")

	s := out.String()
	assert.Contains(t, s, "NOTE")
	assert.Contains(t, s, ": These checks are only for the main branch of the repo\n\n")
	assert.Contains(t, s, "Deleting tmuxinator config\n")
	assert.Contains(t, s, "Deleted notes!\n")
}
