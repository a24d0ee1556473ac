package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"prorab-finance/internal/models"
)

func strPtr(s string) *string          { return &s }
func floatPtr(f float64) *float64      { return &f }
func statusPtr(s models.ProjectStatus) *models.ProjectStatus { return &s }

func TestProjectStore_CreateAndGet(t *testing.T) {
	store := NewProjectStore(newTestDB(t))

	created, err := store.Create(1, "Дом на Лесной", 1000)
	require.NoError(t, err)
	require.Equal(t, 1, created.Version)
	require.Equal(t, models.StatusOpen, created.Status)

	got, err := store.Get(1, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Дом на Лесной", got.Name)
	require.Equal(t, 1000.0, got.ContractPrice)

	_, err = store.Get(1, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProjectStore_OwnerIsolation(t *testing.T) {
	store := NewProjectStore(newTestDB(t))

	created, err := store.Create(1, "Дом", 1000)
	require.NoError(t, err)

	// чужой пользователь объект не видит
	_, err = store.Get(2, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// и не может его править даже с верной версией
	_, err = store.UpdateWithVersion(2, created.ID, 1, ProjectPatch{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrConflict)
}

func TestProjectStore_UpdateWithVersion(t *testing.T) {
	store := NewProjectStore(newTestDB(t))

	created, err := store.Create(1, "Дом", 1000)
	require.NoError(t, err)
	require.Equal(t, 1, created.Version)

	updated, err := store.UpdateWithVersion(1, created.ID, 1, ProjectPatch{
		Name:          strPtr("Дом, корпус 2"),
		ContractPrice: floatPtr(1500),
	})
	require.NoError(t, err)
	require.Equal(t, 2, updated.Version)
	require.Equal(t, "Дом, корпус 2", updated.Name)
	require.Equal(t, 1500.0, updated.ContractPrice)

	// повтор со старой версией — конфликт, строка не меняется
	_, err = store.UpdateWithVersion(1, created.ID, 1, ProjectPatch{Name: strPtr("затёрто")})
	require.ErrorIs(t, err, ErrConflict)

	got, err := store.Get(1, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Дом, корпус 2", got.Name)
	require.Equal(t, 2, got.Version)
}

func TestProjectStore_TwoSessions(t *testing.T) {
	store := NewProjectStore(newTestDB(t))

	created, err := store.Create(1, "Дом", 1000)
	require.NoError(t, err)

	// обе сессии прочитали версию 1; вторая успела записать первой
	_, err = store.UpdateWithVersion(1, created.ID, created.Version, ProjectPatch{
		ContractPrice: floatPtr(2000),
	})
	require.NoError(t, err)

	// первая сессия со своим устаревшим снимком получает конфликт,
	// а не молча затирает чужую правку
	_, err = store.UpdateWithVersion(1, created.ID, created.Version, ProjectPatch{
		ContractPrice: floatPtr(1234),
	})
	require.ErrorIs(t, err, ErrConflict)

	got, err := store.Get(1, created.ID)
	require.NoError(t, err)
	require.Equal(t, 2000.0, got.ContractPrice)
}

func TestProjectStore_UpdateMissing(t *testing.T) {
	store := NewProjectStore(newTestDB(t))

	// запись по несуществующему id — тоже конфликт: снимок вызывающего
	// устарел в любом случае
	_, err := store.UpdateWithVersion(1, 42, 1, ProjectPatch{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrConflict)
}

func TestProjectStore_ForceUpdate(t *testing.T) {
	store := NewProjectStore(newTestDB(t))

	created, err := store.Create(1, "Дом", 1000)
	require.NoError(t, err)

	// параллельная правка ушла вперёд
	_, err = store.UpdateWithVersion(1, created.ID, 1, ProjectPatch{ContractPrice: floatPtr(2000)})
	require.NoError(t, err)

	// перезапись проходит без проверки версии и всё равно двигает счётчик
	forced, err := store.ForceUpdate(1, created.ID, ProjectPatch{ContractPrice: floatPtr(999)})
	require.NoError(t, err)
	require.Equal(t, 3, forced.Version)
	require.Equal(t, 999.0, forced.ContractPrice)

	_, err = store.ForceUpdate(1, 9999, ProjectPatch{Name: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProjectStore_CloseStampsClosedAt(t *testing.T) {
	store := NewProjectStore(newTestDB(t))

	created, err := store.Create(1, "Дом", 1000)
	require.NoError(t, err)

	closed, err := store.UpdateWithVersion(1, created.ID, 1, ProjectPatch{
		Status: statusPtr(models.StatusClosed),
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusClosed, closed.Status)
	require.NotNil(t, closed.ClosedAt)

	reopened, err := store.UpdateWithVersion(1, created.ID, 2, ProjectPatch{
		Status: statusPtr(models.StatusOpen),
	})
	require.NoError(t, err)
	require.Equal(t, models.StatusOpen, reopened.Status)
	require.Nil(t, reopened.ClosedAt)
}
