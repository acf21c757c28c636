package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
Summary:
  Language: hu
  FlattenLines: false
  RemoveReferences: true
  OutputDir: out
Practice:
  Cron: "0 7 * * *"
  PassageDir: passages
  NotifyUserIds: [42]
`)

	c, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "hu", c.Summary.Language)
	assert.Equal(t, "out", c.Summary.OutputDir)
	assert.True(t, c.Summary.RemoveReferences)
	assert.Equal(t, []int64{42}, c.Practice.NotifyUserIds)
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
Summary: {}
`)

	c, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "hu", c.Summary.Language)
	assert.Equal(t, "output", c.Summary.OutputDir)
	assert.False(t, c.Summary.FlattenLines)
}

func TestLoadFromFile_NotExist(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nincs.yaml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestValidate_BadRuleset(t *testing.T) {
	path := writeConfig(t, `
Summary:
  Language: hu
  Rulesets:
    hu: [cs, gyz]
`)

	_, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "非法二合字母")
}

func TestValidateBot(t *testing.T) {
	c := Default()
	err := c.ValidateBot()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TelegramApp.ApiId")

	c.TelegramApp.ApiId = 12345
	c.TelegramApp.ApiHash = "hash"
	assert.NoError(t, c.ValidateBot())

	c.Practice.Cron = "0 7 * * *"
	err = c.ValidateBot()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Practice.PassageDir")

	c.Practice.PassageDir = "passages"
	err = c.ValidateBot()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Practice.NotifyUserIds")

	c.Practice.NotifyUserIds = []int64{1}
	assert.NoError(t, c.ValidateBot())
}
