package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KristellVM/tienda-online/internal/domain"
	"github.com/KristellVM/tienda-online/internal/infra/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func writeSeedDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	usuarios := `[
		{"usuario":"admin","pwd":"admin","tipo":"admin"},
		{"usuario":"cliente","pwd":"cliente","tipo":"cliente"}
	]`
	productos := `[
		{"nombre":"Camiseta","stock":5,"precio":10.00,"fotos":["a.jpg","b.jpg"],"categoria":"ropa"}
	]`

	require.NoError(t, os.WriteFile(filepath.Join(dir, "usuarios.json"), []byte(usuarios), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "productos.json"), []byte(productos), 0o644))
	return dir
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "tienda.db"))
	require.NoError(t, err)
	return db
}

func TestRun_SeedsOnEmptyDatabase(t *testing.T) {
	db := openTestDB(t)
	dir := writeSeedDir(t)

	require.NoError(t, Run(db, dir))

	var users []domain.User
	require.NoError(t, db.Find(&users).Error)
	assert.Len(t, users, 2)

	var products []domain.Product
	require.NoError(t, db.Find(&products).Error)
	require.Len(t, products, 1)
	assert.Equal(t, domain.PhotoList{"a.jpg", "b.jpg"}, products[0].Photos)
}

func TestRun_NeverRerunsOnceUsersExist(t *testing.T) {
	db := openTestDB(t)
	dir := writeSeedDir(t)

	require.NoError(t, Run(db, dir))
	require.NoError(t, db.Where("usuario = ?", "cliente").Delete(&domain.User{}).Error)

	// Second boot: one user remains, so nothing is reloaded.
	require.NoError(t, Run(db, dir))

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRun_MissingProductFileIsNotFatal(t *testing.T) {
	db := openTestDB(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "usuarios.json"),
		[]byte(`[{"usuario":"admin","pwd":"admin","tipo":"admin"}]`), 0o644))

	require.NoError(t, Run(db, dir))

	var count int64
	require.NoError(t, db.Model(&domain.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRun_MissingUserFileOnFirstBootFails(t *testing.T) {
	db := openTestDB(t)
	assert.Error(t, Run(db, t.TempDir()))
}
