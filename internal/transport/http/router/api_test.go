package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fittrack/internal/core/auth"
	"fittrack/internal/domain"
	"fittrack/internal/query"
	"fittrack/pkg/utils"
)

func init() { gin.SetMode(gin.TestMode) }

type env struct {
	users     *domain.FakeUserRepository
	programs  *domain.FakeProgramRepository
	exercises *domain.FakeExerciseRepository
	completed *domain.FakeCompletedExerciseRepository
	jwt       *auth.JWTer
	engine    *gin.Engine
}

func newEnv() *env {
	e := &env{
		users:     &domain.FakeUserRepository{},
		programs:  &domain.FakeProgramRepository{},
		exercises: &domain.FakeExerciseRepository{},
		completed: &domain.FakeCompletedExerciseRepository{},
		jwt:       &auth.JWTer{Secret: []byte("test-secret"), Issuer: "fittrack", TTL: time.Hour},
	}
	e.engine = NewAPIEngine(Deps{
		Log:       zap.NewNop(),
		JWT:       e.jwt,
		Users:     e.users,
		Programs:  e.programs,
		Exercises: e.exercises,
		Completed: e.completed,
	})
	return e
}

// asUser wires token resolution for u and returns its Authorization header.
func (e *env) asUser(t *testing.T, u *domain.User) string {
	t.Helper()
	e.users.FindByIDFn = func(ctx context.Context, id uint64) (*domain.User, error) {
		if id == u.ID {
			return u, nil
		}
		return nil, nil
	}
	token, err := e.jwt.Issue(u.ID, u.Role)
	require.NoError(t, err)
	return "Bearer " + token
}

func (e *env) do(method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Meta    *struct {
		Total      int64 `json:"total"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int   `json:"totalPages"`
	} `json:"meta"`
	Details []string `json:"details"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func uintPtr(v uint64) *uint64 { return &v }
func strPtr(s string) *string  { return &s }

func TestHealth(t *testing.T) {
	e := newEnv()
	w := e.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRegister(t *testing.T) {
	e := newEnv()
	e.users.FindByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return nil, nil
	}
	e.users.CreateFn = func(ctx context.Context, u *domain.User) error {
		u.ID = 11
		return nil
	}

	w := e.do(http.MethodPost, "/auth/register",
		`{"email":"jane@example.com","password":"supersecret","role":"user","nickName":"jane"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "User successfully registered", body.Message)

	var data struct {
		ID    uint64 `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, uint64(11), data.ID)
	assert.NotEmpty(t, data.Token)
}

func TestRegisterEmailTaken(t *testing.T) {
	e := newEnv()
	e.users.FindByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 1, Email: email}, nil
	}

	w := e.do(http.MethodPost, "/auth/register",
		`{"email":"jane@example.com","password":"supersecret","role":"user"}`, nil)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Email already in use", decode(t, w).Message)
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv()

	w := e.do(http.MethodPost, "/auth/register",
		`{"email":"nope","password":"short","role":"root"}`, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation error in body", body.Message)
	assert.Len(t, body.Details, 3)
}

func TestLoginDoesNotRevealAccountExistence(t *testing.T) {
	e := newEnv()
	hashed := utils.HashPassword("rightpassword")

	e.users.FindByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		if email == "known@example.com" {
			return &domain.User{ID: 1, Email: email, Password: hashed, Role: domain.RoleUser}, nil
		}
		return nil, nil
	}

	unknown := e.do(http.MethodPost, "/auth/login",
		`{"email":"ghost@example.com","password":"whateverpw"}`, nil)
	wrongPw := e.do(http.MethodPost, "/auth/login",
		`{"email":"known@example.com","password":"wrongpassword"}`, nil)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPw.Code)
	// identical envelopes, no oracle
	assert.Equal(t, unknown.Body.String(), wrongPw.Body.String())
}

func TestLogin(t *testing.T) {
	e := newEnv()
	hashed := utils.HashPassword("rightpassword")
	e.users.FindByEmailFn = func(ctx context.Context, email string) (*domain.User, error) {
		return &domain.User{ID: 3, Email: email, Password: hashed, Role: domain.RoleAdmin}, nil
	}

	w := e.do(http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"rightpassword"}`, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Login successful", body.Message)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	claims, err := e.jwt.Parse(data.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), claims.UID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestUsersListRequiresAuth(t *testing.T) {
	e := newEnv()
	w := e.do(http.MethodGet, "/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUsersListAdminSeesProfilesWithoutPasswords(t *testing.T) {
	e := newEnv()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	token := e.asUser(t, admin)

	e.users.ListFn = func(ctx context.Context, p query.Params) ([]domain.User, int64, error) {
		return []domain.User{
			{ID: 2, Email: "a@b.com", NickName: strPtr("alpha"), Role: domain.RoleUser, Password: "hash-a"},
			{ID: 3, Email: "c@d.com", NickName: strPtr("gamma"), Role: domain.RoleUser, Password: "hash-c"},
		}, 2, nil
	}

	w := e.do(http.MethodGet, "/users", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@b.com")
	assert.NotContains(t, w.Body.String(), "hash-a")
	assert.NotContains(t, w.Body.String(), "password")

	body := decode(t, w)
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(2), body.Meta.Total)
	assert.Equal(t, 1, body.Meta.TotalPages)
}

func TestUsersListRegularUserSeesNicknamesOnly(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 9, Role: domain.RoleUser})

	e.users.ListFn = func(ctx context.Context, p query.Params) ([]domain.User, int64, error) {
		return []domain.User{
			{ID: 2, Email: "a@b.com", NickName: strPtr("alpha"), Role: domain.RoleUser},
		}, 1, nil
	}

	w := e.do(http.MethodGet, "/users", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	var data []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
	require.Len(t, data, 1)
	assert.Contains(t, data[0], "id")
	assert.Contains(t, data[0], "nickName")
	assert.NotContains(t, data[0], "email")
	assert.NotContains(t, data[0], "role")
}

func TestUsersMe(t *testing.T) {
	e := newEnv()
	me := &domain.User{
		ID: 5, Role: domain.RoleUser,
		Name: strPtr("Jane"), Surname: strPtr("Doe"), NickName: strPtr("jd"),
	}
	token := e.asUser(t, me)

	w := e.do(http.MethodGet, "/users/me", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "User detail", body.Message)
	assert.JSONEq(t, `{"name":"Jane","surname":"Doe","age":null,"nickName":"jd"}`, string(body.Data))
}

func TestUsersGetForbiddenForRegularUser(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 5, Role: domain.RoleUser})

	w := e.do(http.MethodGet, "/users/7", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUsersGetNotFound(t *testing.T) {
	e := newEnv()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	// one lookup fn serves both token resolution and the handler fetch
	e.users.FindByIDFn = func(ctx context.Context, id uint64) (*domain.User, error) {
		if id == admin.ID {
			return admin, nil
		}
		return nil, nil
	}
	token, err := e.jwt.Issue(admin.ID, admin.Role)
	require.NoError(t, err)

	w := e.do(http.MethodGet, "/users/999", "", map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decode(t, w).Message)
}

func TestUsersUpdateAppliesWhitelistOnly(t *testing.T) {
	e := newEnv()
	admin := &domain.User{ID: 1, Role: domain.RoleAdmin}
	target := &domain.User{ID: 7, Email: "keep@me.com", Role: domain.RoleUser, Name: strPtr("Old")}
	e.users.FindByIDFn = func(ctx context.Context, id uint64) (*domain.User, error) {
		switch id {
		case admin.ID:
			return admin, nil
		case target.ID:
			return target, nil
		}
		return nil, nil
	}
	var saved *domain.User
	e.users.UpdateFn = func(ctx context.Context, u *domain.User) error {
		saved = u
		return nil
	}
	token, err := e.jwt.Issue(admin.ID, admin.Role)
	require.NoError(t, err)

	// email and password are not updatable; unknown fields are dropped
	w := e.do(http.MethodPut, "/users/7",
		`{"name":"New","email":"evil@x.com","password":"hijacked1"}`,
		map[string]string{"Authorization": "Bearer " + token})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, saved)
	assert.Equal(t, "New", *saved.Name)
	assert.Equal(t, "keep@me.com", saved.Email)
	assert.Empty(t, saved.Password)
}

func TestUsersUpdateRejectsBadID(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	w := e.do(http.MethodPut, "/users/abc", `{"name":"New"}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation error in params", body.Message)
	assert.Equal(t, []string{"id must be a positive integer"}, body.Details)
}

func TestUsersDelete(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.users.SoftDeleteFn = func(ctx context.Context, id uint64) (bool, error) {
		return id == 7, nil
	}

	w := e.do(http.MethodDelete, "/users/7", "", map[string]string{"Authorization": token})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User deleted", decode(t, w).Message)

	w = e.do(http.MethodDelete, "/users/8", "", map[string]string{"Authorization": token})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExercisesListIsPublic(t *testing.T) {
	e := newEnv()
	e.exercises.ListFn = func(ctx context.Context, p query.Params) ([]domain.Exercise, int64, error) {
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 5, p.Limit)
		assert.Equal(t, "press", p.Search)
		return []domain.Exercise{
			{ID: 1, Name: "Bench press", Difficulty: domain.DifficultyMedium,
				ProgramID: uintPtr(4), Program: &domain.Program{ID: 4, Name: "Push day"}},
		}, 12, nil
	}

	w := e.do(http.MethodGet, "/exercises?page=2&limit=5&search=press", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "List of exercises", body.Message)
	assert.Contains(t, string(body.Data), "Push day")
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(12), body.Meta.Total)
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestExerciseCreateRequiresAdmin(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 2, Role: domain.RoleUser})

	w := e.do(http.MethodPost, "/exercises",
		`{"name":"Squat","difficulty":"hard","programID":1}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestExerciseCreate(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.programs.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Program, error) {
		return &domain.Program{ID: id, Name: "Leg day"}, nil
	}
	e.exercises.CreateFn = func(ctx context.Context, ex *domain.Exercise) error {
		ex.ID = 21
		require.NotNil(t, ex.ProgramID)
		assert.Equal(t, uint64(4), *ex.ProgramID)
		return nil
	}

	w := e.do(http.MethodPost, "/exercises",
		`{"name":"Squat","difficulty":"hard","programID":4}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Exercise created", body.Message)
	assert.JSONEq(t, `{"id":21}`, string(body.Data))
}

func TestExerciseCreateUnknownProgram(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.programs.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Program, error) {
		return nil, nil
	}

	w := e.do(http.MethodPost, "/exercises",
		`{"name":"Squat","difficulty":"hard","programID":999}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Program not found", decode(t, w).Message)
}

func TestExerciseUpdateNeedsAtLeastOneField(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	w := e.do(http.MethodPut, "/exercises/5", `{}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"at least one field must be provided"}, decode(t, w).Details)
}

func TestExerciseUpdate(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.exercises.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Exercise, error) {
		return &domain.Exercise{ID: id, Name: "Squat", Difficulty: domain.DifficultyEasy}, nil
	}
	var saved *domain.Exercise
	e.exercises.UpdateFn = func(ctx context.Context, ex *domain.Exercise) error {
		saved = ex
		return nil
	}

	w := e.do(http.MethodPut, "/exercises/5", `{"difficulty":"hard"}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, saved)
	assert.Equal(t, "Squat", saved.Name)
	assert.Equal(t, domain.DifficultyHard, saved.Difficulty)
}

func TestExerciseDeleteNotFound(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.exercises.DeleteFn = func(ctx context.Context, id uint64) (bool, error) {
		return false, nil
	}

	w := e.do(http.MethodDelete, "/exercises/5", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Exercise not found", decode(t, w).Message)
}

func TestProgramsListIsPublic(t *testing.T) {
	e := newEnv()
	e.programs.ListFn = func(ctx context.Context, p query.Params) ([]domain.Program, int64, error) {
		return []domain.Program{{ID: 1, Name: "Push day"}}, 1, nil
	}

	w := e.do(http.MethodGet, "/programs", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "List of programs", body.Message)
	assert.Contains(t, string(body.Data), "Push day")
}

func TestProgramCreate(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.programs.CreateFn = func(ctx context.Context, p *domain.Program) error {
		p.ID = 6
		return nil
	}

	w := e.do(http.MethodPost, "/programs", `{"name":"Pull day"}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Program created", body.Message)
	assert.JSONEq(t, `{"id":6}`, string(body.Data))
}

func TestAssignExercise(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.programs.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Program, error) {
		return &domain.Program{ID: id}, nil
	}
	// currently held by program 2; assignment moves it
	e.exercises.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Exercise, error) {
		return &domain.Exercise{ID: id, ProgramID: uintPtr(2)}, nil
	}
	var movedTo *uint64
	e.exercises.SetProgramFn = func(ctx context.Context, id uint64, programID *uint64) error {
		movedTo = programID
		return nil
	}

	w := e.do(http.MethodPut, "/programs/3/exercise/9", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Exercise assigned to program", decode(t, w).Message)
	require.NotNil(t, movedTo)
	assert.Equal(t, uint64(3), *movedTo)
}

func TestAssignExerciseAlreadyInProgram(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.programs.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Program, error) {
		return &domain.Program{ID: id}, nil
	}
	e.exercises.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Exercise, error) {
		return &domain.Exercise{ID: id, ProgramID: uintPtr(3)}, nil
	}

	w := e.do(http.MethodPut, "/programs/3/exercise/9", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Exercise is already in this program", decode(t, w).Message)
}

func TestAssignExerciseUnknownProgram(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.programs.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Program, error) {
		return nil, nil
	}

	w := e.do(http.MethodPut, "/programs/3/exercise/9", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Program not found", decode(t, w).Message)
}

func TestUnassignExerciseNotInProgram(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.exercises.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Exercise, error) {
		return &domain.Exercise{ID: id, ProgramID: uintPtr(8)}, nil
	}

	w := e.do(http.MethodDelete, "/programs/3/exercise/9", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Exercise is not in this program", decode(t, w).Message)
}

func TestUnassignExercise(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.exercises.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Exercise, error) {
		return &domain.Exercise{ID: id, ProgramID: uintPtr(3)}, nil
	}
	var cleared bool
	e.exercises.SetProgramFn = func(ctx context.Context, id uint64, programID *uint64) error {
		cleared = programID == nil
		return nil
	}

	w := e.do(http.MethodDelete, "/programs/3/exercise/9", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Exercise removed from program", decode(t, w).Message)
	assert.True(t, cleared)
}

func TestCompletedCreateDefaultsTimestampAndOwner(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 42, Role: domain.RoleUser})

	e.exercises.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Exercise, error) {
		return &domain.Exercise{ID: id, Name: "Plank"}, nil
	}
	var saved *domain.CompletedExercise
	e.completed.CreateFn = func(ctx context.Context, ce *domain.CompletedExercise) error {
		ce.ID = 100
		saved = ce
		return nil
	}

	before := time.Now()
	w := e.do(http.MethodPost, "/users/me/completed-exercises",
		`{"exerciseId":4,"duration":300}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Completed exercise recorded", decode(t, w).Message)
	require.NotNil(t, saved)
	assert.Equal(t, uint64(42), saved.UserID)
	assert.Equal(t, uint64(4), saved.ExerciseID)
	assert.Equal(t, 300, saved.Duration)
	assert.False(t, saved.CompletedAt.Before(before))
}

func TestCompletedCreateHonorsExplicitTimestamp(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 42, Role: domain.RoleUser})

	e.exercises.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Exercise, error) {
		return &domain.Exercise{ID: id}, nil
	}
	var saved *domain.CompletedExercise
	e.completed.CreateFn = func(ctx context.Context, ce *domain.CompletedExercise) error {
		saved = ce
		return nil
	}

	w := e.do(http.MethodPost, "/users/me/completed-exercises",
		`{"exerciseId":4,"duration":300,"completedAt":"2026-08-30T07:00:00Z"}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, saved)
	assert.Equal(t, time.Date(2026, 8, 30, 7, 0, 0, 0, time.UTC), saved.CompletedAt.UTC())
}

func TestCompletedCreateUnknownExercise(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 42, Role: domain.RoleUser})

	e.exercises.FindByIDFn = func(ctx context.Context, id uint64) (*domain.Exercise, error) {
		return nil, nil
	}

	w := e.do(http.MethodPost, "/users/me/completed-exercises",
		`{"exerciseId":999,"duration":300}`,
		map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Exercise not found", decode(t, w).Message)
}

func TestCompletedListScopedToCaller(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 42, Role: domain.RoleUser})

	e.completed.ListByOwnerFn = func(ctx context.Context, userID uint64, p query.Params) ([]domain.CompletedExercise, int64, error) {
		assert.Equal(t, uint64(42), userID)
		return []domain.CompletedExercise{{ID: 1, UserID: userID, ExerciseID: 4, Duration: 300}}, 25, nil
	}

	w := e.do(http.MethodGet, "/users/me/completed-exercises", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "List of completed exercises", body.Message)
	require.NotNil(t, body.Meta)
	assert.Equal(t, int64(25), body.Meta.Total)
	assert.Equal(t, 3, body.Meta.TotalPages)
}

func TestCompletedDeleteOnlyOwnRecords(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 42, Role: domain.RoleUser})

	e.completed.DeleteByOwnerFn = func(ctx context.Context, id, userID uint64) (bool, error) {
		assert.Equal(t, uint64(42), userID)
		// record 9 belongs to somebody else, the owner-scoped delete misses
		return false, nil
	}

	w := e.do(http.MethodDelete, "/users/me/completed-exercises/9", "", map[string]string{"Authorization": token})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Completed exercise not found", decode(t, w).Message)
}

func TestSlovakLocalization(t *testing.T) {
	e := newEnv()
	token := e.asUser(t, &domain.User{ID: 1, Role: domain.RoleAdmin})

	e.users.SoftDeleteFn = func(ctx context.Context, id uint64) (bool, error) {
		return false, nil
	}

	w := e.do(http.MethodDelete, "/users/7", "", map[string]string{
		"Authorization": token,
		"language":      "sk",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Používateľ sa nenašiel", decode(t, w).Message)
}

func TestDataIsNeverNull(t *testing.T) {
	e := newEnv()
	e.exercises.ListFn = func(ctx context.Context, p query.Params) ([]domain.Exercise, int64, error) {
		return nil, 0, nil
	}

	w := e.do(http.MethodGet, "/exercises", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"data":null`)
}
