package vault

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/journey/internal/config"
	"github.com/aidanlsb/journey/internal/dates"
	"github.com/aidanlsb/journey/internal/testutil"
)

func TestOpen(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithJourneyYAML("locale: no\nlist_type: table\n").
		Build()
	cfg := &config.Config{Vaults: map[string]string{"diary": tv.Path}}

	v, err := Open(cfg, "")
	require.NoError(t, err)
	assert.Equal(t, "diary", v.Name)
	assert.Equal(t, tv.Path, v.Path)
	assert.Equal(t, "no", v.Config.Profile().Key)

	_, err = Open(cfg, "other")
	var notFound *config.VaultNotFoundError
	assert.True(t, errors.As(err, &notFound))

	cfg.Vaults["gone"] = filepath.Join(tv.Path, "missing")
	_, err = Open(cfg, "gone")
	assert.Error(t, err)
}

func TestSessionWritesDocumentForDay(t *testing.T) {
	tv := testutil.NewTestVault(t).
		WithJourneyYAML("locale: en\nfile_path_format: \"{year}/{month:02}/{day:02}\"\n").
		Build()
	v, err := Open(&config.Config{Vaults: map[string]string{"j": tv.Path}}, "j")
	require.NoError(t, err)

	day := time.Date(2025, time.October, 24, 14, 30, 0, 0, time.Local)
	s, err := v.Session(day)
	require.NoError(t, err)
	require.NoError(t, s.Add(dates.MomentOf(day), "done", ""))
	require.NoError(t, s.Flush())

	tv.AssertFileEquals("2025/10/24.md", "---\ndate: 2025-10-24\n---\n\n- 14:30:00 done\n")

	info, err := v.Describe(day)
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.Equal(t, 1, info.Entries)
	assert.Equal(t, "2025-10-24", info.Date)

	info, err = v.Describe(day.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, info.Exists)
	assert.Zero(t, info.Entries)
}
