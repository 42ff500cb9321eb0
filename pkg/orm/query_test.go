package orm

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/catalog/pkg/database"
	"github.com/shashiranjanraj/catalog/pkg/metrics"
)

type item struct {
	ID   uint
	Name string
}

func TestNotFoundIsNotAnError(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, database.Options{Driver: "sqlite", DSN: filepath.Join(t.TempDir(), "orm.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, db.AutoMigrate(&item{}))

	errCount := metrics.DBQueryErrors.WithLabelValues("select")
	before := testutil.ToFloat64(errCount)

	var it item
	err = New(db).WithContext(ctx).Where("id = ?", 1).First(&it)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Equal(t, before, testutil.ToFloat64(errCount))

	require.NoError(t, New(db).WithContext(ctx).Create(&item{Name: "a"}))
	n, err := New(db).WithContext(ctx).Model(&item{}).Where("id = ?", 1).Select("name").Updates(&item{Name: ""})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = New(db).WithContext(ctx).Delete(&item{}, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	err = New(db).WithContext(ctx).Where("nope = ?", 1).Get(&[]item{})
	assert.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(errCount))
}
