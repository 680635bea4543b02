package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/pkg/config"
)

func escreveArquivo(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

// chdir replica t.Chdir (Go 1.24+) para toolchains mais antigas.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Padroes(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "estoque-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.True(t, cfg.Seed, "a carga de demonstração nasce ligada")
	assert.Empty(t, cfg.SMTP.Host, "sem SMTP por padrão")
}

// Os dois arquivos de configuração se mesclam: chaves repetidas ficam com o
// valor do config.env, chaves exclusivas do .env sobrevivem.
func TestLoad_MesclaOsArquivosDeConfiguracao(t *testing.T) {
	dir := t.TempDir()
	escreveArquivo(t, dir, ".env", "APP_NAME=painel-estoque\nHTTP_PORT=9001\n")
	escreveArquivo(t, dir, "config.env", "APP_NAME=painel-estoque-config\n")
	chdir(t, dir)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "painel-estoque-config", cfg.App.Name, "a chave repetida vale o config.env")
	assert.Equal(t, 9001, cfg.HTTP.Port, "a chave exclusiva do .env não pode se perder na mesclagem")
}

func TestLoad_SomenteDotEnv(t *testing.T) {
	dir := t.TempDir()
	escreveArquivo(t, dir, ".env", "SEED_SAMPLE_DATA=false\nSMTP_HOST=smtp.exemplo.com\nSMTP_FROM=estoque@exemplo.com\n")
	chdir(t, dir)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.False(t, cfg.Seed)
	assert.Equal(t, "smtp.exemplo.com", cfg.SMTP.Host)
	assert.Equal(t, "estoque@exemplo.com", cfg.SMTP.From)
}
