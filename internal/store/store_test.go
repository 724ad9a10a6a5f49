package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sipengawas/internal/errors"
	"sipengawas/internal/model"
)

func openTestStore(t *testing.T) (Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "local-database.json")
	st, err := Open(path)
	require.NoError(t, err)
	return st, path
}

func strPtr(s string) *string { return &s }

func TestCreateUser_AssignsIDAndDefaults(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, &model.User{
		Username: "budi",
		Password: "hashed",
		FullName: "Budi Santoso",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.Equal(t, model.RolePengawas, user.Role)

	other, err := st.CreateUser(ctx, &model.User{
		Username: "sari",
		Password: "hashed",
		FullName: "Sari Dewi",
		Role:     model.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEqual(t, user.ID, other.ID)
	assert.Equal(t, model.RoleAdmin, other.Role)
}

func TestGetUserByUsername(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	created, err := st.CreateUser(ctx, &model.User{Username: "budi", Password: "hashed", FullName: "Budi Santoso"})
	require.NoError(t, err)

	found, err := st.GetUserByUsername(ctx, "budi")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = st.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	_, err = st.GetUser(ctx, "missing-id")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	st, path := openTestStore(t)
	ctx := context.Background()

	user, err := st.CreateUser(ctx, &model.User{Username: "budi", Password: "hashed", FullName: "Budi Santoso"})
	require.NoError(t, err)

	school, err := st.CreateSchool(ctx, &model.School{
		UserID:        user.ID,
		Name:          "SDN 3 Ubud",
		Address:       "Jl. Raya Ubud",
		Contact:       "0361-123456",
		PrincipalName: strPtr("Ketut Arta"),
	})
	require.NoError(t, err)

	task, err := st.CreateTask(ctx, &model.Task{UserID: user.ID, Title: "Supervisi kelas", Category: "Supervisi"})
	require.NoError(t, err)

	require.NoError(t, st.Close())

	reopened, err := Open(path)
	require.NoError(t, err)

	foundUser, err := reopened.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "budi", foundUser.Username)

	schools, err := reopened.GetSchools(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, schools, 1)
	assert.Equal(t, school.ID, schools[0].ID)
	require.NotNil(t, schools[0].PrincipalName)
	assert.Equal(t, "Ketut Arta", *schools[0].PrincipalName)

	tasks, err := reopened.GetTasks(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.ID, tasks[0].ID)
}

func TestStore_BackingFileShape(t *testing.T) {
	st, path := openTestStore(t)
	require.NoError(t, st.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	// Every collection serializes as an array even when empty.
	for _, key := range []string{"users", "schools", "tasks", "supervisions", "additionalTasks"} {
		require.Contains(t, raw, key)
		assert.Equal(t, byte('['), raw[key][0], "collection %s must be an array", key)
	}
}

func TestOpen_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local-database.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st, err := Open(path)
	require.NoError(t, err)

	tasks, err := st.GetTasks(context.Background(), "anyone")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_ScopesRecordsByUser(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	_, err := st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "Tugas A", Category: "Perencanaan"})
	require.NoError(t, err)
	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-b", Title: "Tugas B", Category: "Perencanaan"})
	require.NoError(t, err)

	tasks, err := st.GetTasks(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Tugas A", tasks[0].Title)

	tasks, err = st.GetTasks(ctx, "user-c")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestUpdateTask(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	task, err := st.CreateTask(ctx, &model.Task{
		UserID:      "user-a",
		Title:       "Menyusun laporan",
		Category:    "Pelaporan",
		Description: strPtr("Laporan triwulan"),
	})
	require.NoError(t, err)

	completed := true
	updated, err := st.UpdateTask(ctx, task.ID, model.TaskPatch{
		Title:     strPtr("Menyusun laporan akhir"),
		Completed: &completed,
	})
	require.NoError(t, err)

	assert.Equal(t, "Menyusun laporan akhir", updated.Title)
	assert.True(t, updated.Completed)
	// Untouched fields survive the merge.
	assert.Equal(t, "Pelaporan", updated.Category)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Laporan triwulan", *updated.Description)

	_, err = st.UpdateTask(ctx, "missing-id", model.TaskPatch{Title: strPtr("x")})
	assert.ErrorIs(t, err, errors.ErrTaskNotFound)
}

func TestDeleteTask_MissingIDIsNoop(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	task, err := st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "Tugas", Category: "Lainnya"})
	require.NoError(t, err)

	require.NoError(t, st.DeleteTask(ctx, "missing-id"))

	tasks, err := st.GetTasks(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, tasks, 1)

	require.NoError(t, st.DeleteTask(ctx, task.ID))

	tasks, err = st.GetTasks(ctx, "user-a")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestGetSupervisionsBySchool(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	_, err := st.CreateSupervision(ctx, &model.Supervision{
		UserID:   "user-a",
		SchoolID: strPtr("school-1"),
		School:   "SDN 1",
		Type:     model.SupervisionAkademik,
		Findings: "Baik",
	})
	require.NoError(t, err)
	_, err = st.CreateSupervision(ctx, &model.Supervision{
		UserID:   "user-a",
		School:   "SD Swasta Harapan",
		Type:     model.SupervisionManajerial,
		Findings: "Cukup",
	})
	require.NoError(t, err)
	// Same school id but a different supervisor.
	_, err = st.CreateSupervision(ctx, &model.Supervision{
		UserID:   "user-b",
		SchoolID: strPtr("school-1"),
		School:   "SDN 1",
		Type:     model.SupervisionAkademik,
		Findings: "Baik",
	})
	require.NoError(t, err)

	sups, err := st.GetSupervisionsBySchool(ctx, "user-a", "school-1")
	require.NoError(t, err)
	require.Len(t, sups, 1)
	assert.Equal(t, "user-a", sups[0].UserID)
}

func TestCreateSupervision_DefaultsDate(t *testing.T) {
	st, _ := openTestStore(t)
	ctx := context.Background()

	sup, err := st.CreateSupervision(ctx, &model.Supervision{
		UserID:   "user-a",
		School:   "SDN 1",
		Type:     model.SupervisionAkademik,
		Findings: "Baik",
	})
	require.NoError(t, err)
	assert.False(t, sup.Date.IsZero())
	assert.Equal(t, sup.CreatedAt, sup.Date)

	visited := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	sup, err = st.CreateSupervision(ctx, &model.Supervision{
		UserID:   "user-a",
		School:   "SDN 2",
		Type:     model.SupervisionManajerial,
		Date:     visited,
		Findings: "Cukup",
	})
	require.NoError(t, err)
	assert.Equal(t, visited, sup.Date)
}

func TestCreateTask_PersistFailureRollsBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	st, err := Open(filepath.Join(dir, "local-database.json"))
	require.NoError(t, err)
	ctx := context.Background()

	// With the data directory gone the temp file cannot be created.
	require.NoError(t, os.RemoveAll(dir))

	_, err = st.CreateTask(ctx, &model.Task{UserID: "user-a", Title: "Tugas", Category: "Lainnya"})
	assert.ErrorIs(t, err, errors.ErrStorageUnavailable)

	// The failed mutation must not linger in memory.
	tasks, err := st.GetTasks(ctx, "user-a")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestStore_ConcurrentCreatesLoseNothing(t *testing.T) {
	st, path := openTestStore(t)
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := st.CreateAdditionalTask(ctx, &model.AdditionalTask{
				UserID:    "user-a",
				Name:      "Rapat koordinasi",
				Location:  "Dinas Pendidikan",
				Organizer: "Dinas Pendidikan",
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	require.NoError(t, st.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	records, err := reopened.GetAdditionalTasks(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, records, n)
}
