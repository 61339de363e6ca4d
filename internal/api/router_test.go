package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fittrack/fittrack-api/internal/auth"
	"github.com/fittrack/fittrack-api/internal/config"
	"github.com/fittrack/fittrack-api/internal/models"
	"github.com/fittrack/fittrack-api/internal/repository/memory"
	"github.com/fittrack/fittrack-api/internal/seed"
	"github.com/fittrack/fittrack-api/internal/services"
)

type testEnv struct {
	router       http.Handler
	tokens       *auth.TokenManager
	users        *memory.Users
	exercises    *memory.Exercises
	workouts     *memory.Workouts
	measurements *memory.Measurements
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	tokens := auth.NewTokenManager("test-secret", "fittrack-api", time.Hour)
	users := memory.NewUsers()
	exercises := memory.NewExercises()
	workouts := memory.NewWorkouts()
	measurements := memory.NewMeasurements()

	router := NewRouter(Deps{
		Cfg:         config.Config{Env: "test"},
		Tokens:      tokens,
		Users:       users,
		UserSvc:     services.NewUserService(users, workouts, tokens),
		ExerciseSvc: services.NewExerciseService(exercises),
		WorkoutSvc:  services.NewWorkoutService(workouts),
		MeasureSvc:  services.NewMeasurementService(measurements),
	})
	return &testEnv{
		router:       router,
		tokens:       tokens,
		users:        users,
		exercises:    exercises,
		workouts:     workouts,
		measurements: measurements,
	}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

type authBody struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func (e *testEnv) register(t *testing.T, name, email, password string) authBody {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/api/users/register", "",
		map[string]string{"name": name, "email": email, "password": password})
	require.Equal(t, http.StatusCreated, rr.Code, "body: %s", rr.Body.String())
	return decode[authBody](t, rr)
}

// newAdmin inserts an admin straight into the store; there is no public
// route that mints one.
func (e *testEnv) newAdmin(t *testing.T) (models.User, string) {
	t.Helper()
	u, err := e.users.Create(context.Background(), models.User{
		Name: "Root", Email: "root@x.com", Role: models.RoleAdmin, PasswordHash: "x",
	})
	require.NoError(t, err)
	token, err := e.tokens.Generate(u.ID)
	require.NoError(t, err)
	return u, token
}

func TestHealth(t *testing.T) {
	e := newTestEnv(t)
	rr := e.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", rr.Body.String())
}

func TestRegisterLoginFlow(t *testing.T) {
	e := newTestEnv(t)

	reg := e.register(t, "Alice", "alice@x.com", "secret1")
	require.NotEmpty(t, reg.Token)
	require.NotEmpty(t, reg.User.ID)
	require.Equal(t, "user", reg.User.Role)

	rr := e.do(t, http.MethodPost, "/api/users/login", "",
		map[string]string{"email": "alice@x.com", "password": "secret1"})
	require.Equal(t, http.StatusOK, rr.Code)
	login := decode[authBody](t, rr)
	require.Equal(t, reg.User.ID, login.User.ID)

	// wrong password and unknown email produce the same merged outcome
	wrong := e.do(t, http.MethodPost, "/api/users/login", "",
		map[string]string{"email": "alice@x.com", "password": "wrong"})
	unknown := e.do(t, http.MethodPost, "/api/users/login", "",
		map[string]string{"email": "nobody@x.com", "password": "secret1"})
	require.Equal(t, http.StatusUnauthorized, wrong.Code)
	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, wrong.Body.String(), unknown.Body.String())

	// missing fields
	rr = e.do(t, http.MethodPost, "/api/users/login", "", map[string]string{"email": "alice@x.com"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegisterNeverReturnsPassword(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "Alice", "alice@x.com", "secret1")

	token := e.register(t, "Bob", "bob@x.com", "hunter22").Token
	rr := e.do(t, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotContains(t, rr.Body.String(), "hunter22")
	require.NotContains(t, rr.Body.String(), "password")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newTestEnv(t)
	e.register(t, "Alice", "alice@x.com", "secret1")

	rr := e.do(t, http.MethodPost, "/api/users/register", "",
		map[string]string{"name": "Evil Alice", "email": "Alice@X.com", "password": "secret2"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decode[map[string]string](t, rr)
	require.Equal(t, "email", body["field"])
}

func TestRegisterValidation(t *testing.T) {
	e := newTestEnv(t)

	rr := e.do(t, http.MethodPost, "/api/users/register", "",
		map[string]string{"name": "Alice", "password": "secret1"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = e.do(t, http.MethodPost, "/api/users/register", "",
		map[string]string{"name": "Alice", "email": "not-an-email", "password": "secret1"})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = e.do(t, http.MethodPost, "/api/users/register", "",
		map[string]string{"name": "Alice", "email": "alice@x.com", "password": "short"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "password", decode[map[string]string](t, rr)["field"])
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	e := newTestEnv(t)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/users/profile"},
		{http.MethodPut, "/api/users/profile"},
		{http.MethodGet, "/api/users/stats"},
		{http.MethodPost, "/api/exercises"},
		{http.MethodGet, "/api/workouts"},
		{http.MethodPost, "/api/workouts"},
		{http.MethodGet, "/api/workouts/recent"},
		{http.MethodGet, "/api/measurements"},
		{http.MethodGet, "/api/measurements/stats"},
	}
	for _, tc := range cases {
		rr := e.do(t, tc.method, tc.path, "", nil)
		require.Equal(t, http.StatusUnauthorized, rr.Code, "%s %s", tc.method, tc.path)
	}
}

func TestProfilePartialUpdate(t *testing.T) {
	e := newTestEnv(t)
	token := e.register(t, "Alice", "alice@x.com", "secret1").Token

	rr := e.do(t, http.MethodPut, "/api/users/profile", token,
		map[string]any{"weight": 80.5, "goals": "get strong"})
	require.Equal(t, http.StatusOK, rr.Code)

	profile := decode[models.User](t, e.do(t, http.MethodGet, "/api/users/profile", token, nil))
	require.Equal(t, "Alice", profile.Name)
	require.NotNil(t, profile.Weight)
	require.Equal(t, 80.5, *profile.Weight)
	require.Equal(t, "get strong", profile.Goals)
	require.Nil(t, profile.Height)

	// a present zero is stored, absent fields stay untouched
	rr = e.do(t, http.MethodPut, "/api/users/profile", token, map[string]any{"bodyFat": 0})
	require.Equal(t, http.StatusOK, rr.Code)

	profile = decode[models.User](t, e.do(t, http.MethodGet, "/api/users/profile", token, nil))
	require.NotNil(t, profile.BodyFat)
	require.Equal(t, 0.0, *profile.BodyFat)
	require.Equal(t, 80.5, *profile.Weight)
	require.Equal(t, "get strong", profile.Goals)
}

func TestWorkoutOwnership(t *testing.T) {
	e := newTestEnv(t)
	alice := e.register(t, "Alice", "alice@x.com", "secret1").Token
	bob := e.register(t, "Bob", "bob@x.com", "secret2").Token

	created := decode[models.Workout](t, e.do(t, http.MethodPost, "/api/workouts", alice,
		map[string]any{"name": "Push Day"}))
	require.NotEmpty(t, created.ID)

	id := created.ID
	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodGet, "/api/workouts/"+id, bob, nil).Code)
	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodPut, "/api/workouts/"+id, bob,
		map[string]any{"name": "Stolen"}).Code)
	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodDelete, "/api/workouts/"+id, bob, nil).Code)

	// repeated reads by the owner are identical
	first := e.do(t, http.MethodGet, "/api/workouts/"+id, alice, nil)
	second := e.do(t, http.MethodGet, "/api/workouts/"+id, alice, nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, first.Body.String(), second.Body.String())

	require.Equal(t, http.StatusOK, e.do(t, http.MethodDelete, "/api/workouts/"+id, alice, nil).Code)
	require.Equal(t, http.StatusNotFound, e.do(t, http.MethodGet, "/api/workouts/"+id, alice, nil).Code)
}

func TestWorkoutPartialUpdate(t *testing.T) {
	e := newTestEnv(t)
	token := e.register(t, "Alice", "alice@x.com", "secret1").Token

	created := decode[models.Workout](t, e.do(t, http.MethodPost, "/api/workouts", token, map[string]any{
		"name":     "Leg Day",
		"date":     "2025-08-01T10:00:00Z",
		"duration": 45,
		"notes":    "felt good",
	}))

	rr := e.do(t, http.MethodPut, "/api/workouts/"+created.ID, token, map[string]any{"notes": "rough one"})
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[models.Workout](t, rr)

	require.Equal(t, "Leg Day", updated.Name)
	require.True(t, updated.Date.Equal(created.Date))
	require.NotNil(t, updated.Duration)
	require.Equal(t, 45, *updated.Duration)
	require.Equal(t, "rough one", updated.Notes)
}

func TestWorkoutTotalVolumeScenario(t *testing.T) {
	e := newTestEnv(t)
	token := e.register(t, "Alice", "alice@x.com", "secret1").Token

	rr := e.do(t, http.MethodPost, "/api/workouts", token, map[string]any{
		"name": "Volume Day",
		"exercises": []map[string]any{
			{"exerciseId": "ex-1", "name": "Bench Press", "sets": []map[string]any{
				{"setNumber": 1, "weight": 100, "reps": 5, "completed": true},
			}},
			{"exerciseId": "ex-2", "name": "Squat", "sets": []map[string]any{
				{"setNumber": 1, "weight": 100, "reps": 5, "completed": true},
			}},
		},
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	w := decode[models.Workout](t, rr)
	require.Equal(t, 1000.0, w.TotalVolume())
}

func TestRecentWorkouts(t *testing.T) {
	e := newTestEnv(t)
	token := e.register(t, "Alice", "alice@x.com", "secret1").Token

	base := time.Date(2025, 8, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		rr := e.do(t, http.MethodPost, "/api/workouts", token, map[string]any{
			"name": fmt.Sprintf("Workout %d", i),
			"date": base.AddDate(0, 0, i).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	recent := decode[[]models.Workout](t, e.do(t, http.MethodGet, "/api/workouts/recent", token, nil))
	require.Len(t, recent, 5)
	require.Equal(t, "Workout 6", recent[0].Name)
	for i := 1; i < len(recent); i++ {
		require.False(t, recent[i].Date.After(recent[i-1].Date), "dates must be descending")
	}

	limited := decode[[]models.Workout](t, e.do(t, http.MethodGet, "/api/workouts/recent?limit=2", token, nil))
	require.Len(t, limited, 2)
}

func TestWorkoutTemplates(t *testing.T) {
	e := newTestEnv(t)
	alice := e.register(t, "Alice", "alice@x.com", "secret1").Token
	bob := e.register(t, "Bob", "bob@x.com", "secret2").Token

	tpl := decode[models.Workout](t, e.do(t, http.MethodPost, "/api/workouts", alice, map[string]any{
		"name":       "Push Template",
		"isTemplate": true,
		"exercises": []map[string]any{
			{"exerciseId": "ex-1", "name": "Bench Press", "sets": []map[string]any{
				{"setNumber": 1, "reps": 8},
			}},
		},
	}))
	require.True(t, tpl.IsTemplate)

	templates := decode[[]models.Workout](t, e.do(t, http.MethodGet, "/api/workouts/templates", alice, nil))
	require.Len(t, templates, 1)

	// a foreign template cannot be cloned
	rr := e.do(t, http.MethodPost, "/api/workouts/from-template/"+tpl.ID, bob, nil)
	require.Equal(t, http.StatusForbidden, rr.Code)

	rr = e.do(t, http.MethodPost, "/api/workouts/from-template/missing-id", alice, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = e.do(t, http.MethodPost, "/api/workouts/from-template/"+tpl.ID, alice, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	clone := decode[models.Workout](t, rr)
	require.False(t, clone.IsTemplate)
	require.NotEqual(t, tpl.ID, clone.ID)
	require.Equal(t, tpl.Name, clone.Name)
	require.Equal(t, tpl.Exercises, clone.Exercises)
	require.WithinDuration(t, time.Now(), clone.Date, time.Minute)

	// the template itself is untouched
	kept := decode[models.Workout](t, e.do(t, http.MethodGet, "/api/workouts/"+tpl.ID, alice, nil))
	require.True(t, kept.IsTemplate)
}

func TestUserStats(t *testing.T) {
	e := newTestEnv(t)
	token := e.register(t, "Alice", "alice@x.com", "secret1").Token

	mk := func(date time.Time, exercises int) {
		entries := make([]map[string]any, exercises)
		for i := range entries {
			entries[i] = map[string]any{"exerciseId": fmt.Sprintf("ex-%d", i), "name": "Exercise"}
		}
		rr := e.do(t, http.MethodPost, "/api/workouts", token, map[string]any{
			"name":      "W",
			"date":      date.Format(time.RFC3339),
			"exercises": entries,
		})
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	now := time.Now()
	mk(now, 2)
	mk(now, 3)
	mk(now.AddDate(0, 0, -30), 1)

	stats := decode[services.UserStats](t, e.do(t, http.MethodGet, "/api/users/stats", token, nil))
	require.Equal(t, 3, stats.TotalWorkouts)
	require.Equal(t, 2, stats.WorkoutsThisWeek)
	require.Equal(t, 6, stats.TotalExercises)
}

func TestMeasurementOwnershipAndStats(t *testing.T) {
	e := newTestEnv(t)
	alice := e.register(t, "Alice", "alice@x.com", "secret1").Token
	bob := e.register(t, "Bob", "bob@x.com", "secret2").Token

	first := decode[models.Measurement](t, e.do(t, http.MethodPost, "/api/measurements", alice,
		map[string]any{"date": "2024-12-01T00:00:00Z", "weight": 78, "chest": 100}))
	second := decode[models.Measurement](t, e.do(t, http.MethodPost, "/api/measurements", alice,
		map[string]any{"date": "2025-03-01T00:00:00Z", "weight": 75, "bodyFat": 18}))
	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)

	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodGet, "/api/measurements/"+first.ID, bob, nil).Code)
	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodDelete, "/api/measurements/"+first.ID, bob, nil).Code)

	list := decode[[]models.Measurement](t, e.do(t, http.MethodGet, "/api/measurements", alice, nil))
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID, "ordered by date descending")

	stats := decode[services.MeasurementStats](t, e.do(t, http.MethodGet, "/api/measurements/stats", alice, nil))
	require.NotNil(t, stats.Latest)
	require.Equal(t, second.ID, stats.Latest.ID)
	require.NotNil(t, stats.Changes)
	require.NotNil(t, stats.Changes.Weight)
	require.Equal(t, -3.0, *stats.Changes.Weight)
	require.Nil(t, stats.Changes.Chest, "chest missing on the latest endpoint")

	// bob has no measurements at all
	empty := decode[services.MeasurementStats](t, e.do(t, http.MethodGet, "/api/measurements/stats", bob, nil))
	require.Nil(t, empty.Latest)
	require.Nil(t, empty.Changes)
}

func TestMeasurementPartialUpdatePreservesZero(t *testing.T) {
	e := newTestEnv(t)
	token := e.register(t, "Alice", "alice@x.com", "secret1").Token

	m := decode[models.Measurement](t, e.do(t, http.MethodPost, "/api/measurements", token,
		map[string]any{"weight": 80, "notes": "morning"}))

	rr := e.do(t, http.MethodPut, "/api/measurements/"+m.ID, token, map[string]any{"bodyFat": 0})
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[models.Measurement](t, rr)

	require.NotNil(t, updated.BodyFat)
	require.Equal(t, 0.0, *updated.BodyFat)
	require.NotNil(t, updated.Weight)
	require.Equal(t, 80.0, *updated.Weight)
	require.Equal(t, "morning", updated.Notes)
}

func TestExerciseLibrary(t *testing.T) {
	e := newTestEnv(t)
	_, err := seed.Run(context.Background(), e.exercises)
	require.NoError(t, err)

	// browsing is public
	all := decode[[]models.Exercise](t, e.do(t, http.MethodGet, "/api/exercises", "", nil))
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		require.LessOrEqual(t, strings.ToLower(all[i-1].Name), strings.ToLower(all[i].Name), "name ascending")
	}

	back := decode[[]models.Exercise](t, e.do(t, http.MethodGet, "/api/exercises?category=back", "", nil))
	require.NotEmpty(t, back)
	for _, ex := range back {
		require.Equal(t, models.CategoryBack, ex.Category)
	}

	// search spans muscle lists
	found := decode[[]models.Exercise](t, e.do(t, http.MethodGet, "/api/exercises?search=hamstrings", "", nil))
	require.NotEmpty(t, found)
	for _, ex := range found {
		require.True(t, ex.MatchesSearch("hamstrings"))
	}

	rr := e.do(t, http.MethodGet, "/api/exercises/missing-id", "", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCustomExerciseOwnership(t *testing.T) {
	e := newTestEnv(t)
	alice := e.register(t, "Alice", "alice@x.com", "secret1").Token
	aliceID := e.registerID(t, alice)
	bob := e.register(t, "Bob", "bob@x.com", "secret2").Token
	_, admin := e.newAdmin(t)

	rr := e.do(t, http.MethodPost, "/api/exercises", alice, map[string]any{
		"name":         "Cable Fly",
		"category":     "chest",
		"instructions": "Pull the handles together in a wide arc.",
		"mainMuscles":  []string{"chest"},
		"equipment":    "cable machine",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[models.Exercise](t, rr)
	require.True(t, created.IsCustom)
	require.Equal(t, aliceID, created.CreatedBy)
	require.Equal(t, models.DifficultyIntermediate, created.Difficulty, "difficulty defaults")

	// another regular user may not touch it; the creator and admins may
	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodPut, "/api/exercises/"+created.ID, bob,
		map[string]any{"name": "Hijacked"}).Code)
	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodDelete, "/api/exercises/"+created.ID, bob, nil).Code)

	rr = e.do(t, http.MethodPut, "/api/exercises/"+created.ID, alice, map[string]any{"difficulty": "advanced"})
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[models.Exercise](t, rr)
	require.Equal(t, models.DifficultyAdvanced, updated.Difficulty)
	require.Equal(t, "Cable Fly", updated.Name, "partial update leaves name alone")

	require.Equal(t, http.StatusOK, e.do(t, http.MethodPut, "/api/exercises/"+created.ID, admin,
		map[string]any{"equipment": "cables"}).Code)
	require.Equal(t, http.StatusOK, e.do(t, http.MethodDelete, "/api/exercises/"+created.ID, admin, nil).Code)
}

func TestStockExercisesAreAdminOnly(t *testing.T) {
	e := newTestEnv(t)
	_, err := seed.Run(context.Background(), e.exercises)
	require.NoError(t, err)
	alice := e.register(t, "Alice", "alice@x.com", "secret1").Token
	_, admin := e.newAdmin(t)

	all := decode[[]models.Exercise](t, e.do(t, http.MethodGet, "/api/exercises", "", nil))
	require.NotEmpty(t, all)
	stock := all[0]
	require.False(t, stock.IsCustom)
	require.Empty(t, stock.CreatedBy)

	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodPut, "/api/exercises/"+stock.ID, alice,
		map[string]any{"name": "Renamed"}).Code)
	require.Equal(t, http.StatusForbidden, e.do(t, http.MethodDelete, "/api/exercises/"+stock.ID, alice, nil).Code)

	require.Equal(t, http.StatusOK, e.do(t, http.MethodPut, "/api/exercises/"+stock.ID, admin,
		map[string]any{"instructions": "Updated form cues."}).Code)
}

// registerID reads the caller's own id back off the profile endpoint.
func (e *testEnv) registerID(t *testing.T, token string) string {
	t.Helper()
	profile := decode[models.User](t, e.do(t, http.MethodGet, "/api/users/profile", token, nil))
	return profile.ID
}
