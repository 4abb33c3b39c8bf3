package inits

import (
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"portfolio-api/app/server/models"
	"testing"
)

func TestPortfolio_CreatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portfolio.db")

	db, err := Portfolio(path)
	require.NoError(t, err)

	for _, table := range []string{"projects", "blog_posts", "contacts"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	require.NoError(t, db.Create(&models.Project{Title: "Project X"}).Error)

	// 重新打开同一个文件，数据仍然存在
	reopened, err := Portfolio(path)
	require.NoError(t, err)

	var count int64
	require.NoError(t, reopened.Model(&models.Project{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := Redis("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })
}

func TestRedis_BadURL(t *testing.T) {
	_, err := Redis("not a url")
	assert.Error(t, err)
}
