package sitecontent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_AbsentDocumentsFallBack(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(filepath.Join(dir, "business-info.json"), filepath.Join(dir, "services.json"))

	cfg, err := svc.Get()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(cfg.BusinessInfo))
	assert.JSONEq(t, `[]`, string(cfg.Services))
}

func TestGet_ReadsOverrides(t *testing.T) {
	dir := t.TempDir()
	infoPath := filepath.Join(dir, "business-info.json")
	servicesPath := filepath.Join(dir, "services.json")

	require.NoError(t, os.WriteFile(infoPath, []byte(`{"phone":"(08) 8556 4155"}`), 0644))
	require.NoError(t, os.WriteFile(servicesPath, []byte(`[{"id":1,"title":"Expert Styling"}]`), 0644))

	cfg, err := NewService(infoPath, servicesPath).Get()
	require.NoError(t, err)
	assert.JSONEq(t, `{"phone":"(08) 8556 4155"}`, string(cfg.BusinessInfo))
	assert.JSONEq(t, `[{"id":1,"title":"Expert Styling"}]`, string(cfg.Services))
}

func TestGet_InvalidJSONIsAnError(t *testing.T) {
	dir := t.TempDir()
	infoPath := filepath.Join(dir, "business-info.json")
	require.NoError(t, os.WriteFile(infoPath, []byte(`{not json`), 0644))

	_, err := NewService(infoPath, filepath.Join(dir, "services.json")).Get()
	require.Error(t, err)
}
