package api

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"

	"roster/internal/config"
	"roster/internal/domain"
	"roster/internal/errors"
	"roster/internal/repository/sqlite"
	"roster/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.NewConfig()
	cfg.Database.Dir = t.TempDir()
	return cfg
}

func openRepo(t *testing.T, cfg *config.Config) sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(filepath.Join(cfg.Database.Dir, cfg.Database.Filename))
	require.NoError(t, err)
	return repo
}

func setupAPI(t *testing.T) (API, *config.Config) {
	t.Helper()
	cfg := testConfig(t)
	a, err := New(context.Background(), openRepo(t, cfg), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a, cfg
}

func TestAPI_AddAndFindEmployees(t *testing.T) {
	a, _ := setupAPI(t)
	ctx := context.Background()

	ana, err := a.AddEmployee(ctx, " Ana ", "Eng")
	require.NoError(t, err)
	assert.Equal(t, domain.Employee{ID: 1, Name: "Ana", Department: "Eng"}, ana)

	bo, err := a.AddEmployee(ctx, "Bo", "Sales")
	require.NoError(t, err)
	assert.Equal(t, 2, bo.ID)

	found, err := a.FindEmployee(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, bo, found)

	_, err = a.FindEmployee(ctx, 3)
	assert.True(t, errors.IsNotFound(err))
	_, err = a.FindEmployee(ctx, 0)
	assert.True(t, errors.IsNotFound(err))

	employees, err := a.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Employee{ana, bo}, employees)

	second, err := a.EmployeeAt(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, bo, second)
	_, err = a.EmployeeAt(ctx, 2)
	assert.True(t, errors.IsNotFound(err))
	_, err = a.EmployeeAt(ctx, -1)
	assert.True(t, errors.IsNotFound(err))
}

func TestAPI_AddEmployee_Validation(t *testing.T) {
	cfg := testConfig(t)
	cfg.Validation.NameMaxLength = 5
	a, err := New(context.Background(), openRepo(t, cfg), cfg, nil)
	require.NoError(t, err)
	defer a.Close()
	ctx := context.Background()

	tests := []struct {
		name       string
		empName    string
		department string
	}{
		{name: "empty name", empName: "", department: "Eng"},
		{name: "blank department", empName: "Ana", department: "  "},
		{name: "name over limit", empName: "Alexandria", department: "Eng"},
		{name: "department over limit", empName: "Ana", department: "Engineering"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.AddEmployee(ctx, tt.empName, tt.department)
			assert.True(t, errors.IsValidation(err))
		})
	}

	employees, err := a.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)
}

func TestAPI_TaskLifecycle(t *testing.T) {
	a, _ := setupAPI(t)
	ctx := context.Background()

	ana, err := a.AddEmployee(ctx, "Ana", "Eng")
	require.NoError(t, err)
	_, err = a.AddEmployee(ctx, "Bo", "Sales")
	require.NoError(t, err)

	task, err := a.AssignTask(ctx, ana.ID, "Design", 10, "")
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
	assert.Equal(t, domain.KindCoding, task.Kind())

	logged, err := a.LogHours(ctx, ana.ID, 0, 4)
	require.NoError(t, err)
	assert.Equal(t, 40, logged.ProgressPercent())
	assert.False(t, logged.Completed())

	logged, err = a.LogHours(ctx, ana.ID, 0, 6)
	require.NoError(t, err)
	assert.True(t, logged.Completed())

	rows, err := a.Report(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].EmployeeName)
	assert.Equal(t, "Design", rows[0].TaskName)
	assert.Equal(t, services.StatusCompleted, rows[0].Status)

	summary, err := a.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, services.ReportSummary{Employees: 2, Assignments: 1, Completed: 1, AveragePercent: 100}, summary)
}

func TestAPI_AssignTask_Errors(t *testing.T) {
	a, _ := setupAPI(t)
	ctx := context.Background()

	_, err := a.AssignTask(ctx, 1, "Design", 10, domain.KindCoding)
	assert.True(t, errors.IsNotFound(err))

	ana, err := a.AddEmployee(ctx, "Ana", "Eng")
	require.NoError(t, err)

	_, err = a.AssignTask(ctx, ana.ID, "", 10, domain.KindCoding)
	assert.True(t, errors.IsValidation(err))
	_, err = a.AssignTask(ctx, ana.ID, "X", 0, domain.KindCoding)
	assert.True(t, errors.IsValidation(err))
	_, err = a.AssignTask(ctx, ana.ID, "X", 10001, domain.KindCoding)
	assert.True(t, errors.IsValidation(err))

	tasks, err := a.TasksFor(ctx, ana.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestAPI_LogHours_Errors(t *testing.T) {
	a, _ := setupAPI(t)
	ctx := context.Background()
	ana, err := a.AddEmployee(ctx, "Ana", "Eng")
	require.NoError(t, err)
	_, err = a.AssignTask(ctx, ana.ID, "Fix bug", 5, domain.KindTesting)
	require.NoError(t, err)

	_, err = a.LogHours(ctx, ana.ID, 0, -1)
	assert.True(t, errors.IsValidation(err))

	_, err = a.LogHours(ctx, ana.ID, 1, 1)
	assert.True(t, errors.IsNotFound(err))

	tasks, err := a.TasksFor(ctx, ana.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, tasks[0].HoursWorked())
}

func TestAPI_AssignExistingSharesRecord(t *testing.T) {
	a, _ := setupAPI(t)
	ctx := context.Background()
	ana, _ := a.AddEmployee(ctx, "Ana", "Eng")
	bo, _ := a.AddEmployee(ctx, "Bo", "Sales")

	task, err := a.AssignTask(ctx, ana.ID, "Pairing", 4, domain.KindReview)
	require.NoError(t, err)

	shared, err := a.AssignExisting(ctx, bo.ID, ana.ID, 0)
	require.NoError(t, err)
	assert.Same(t, task, shared)

	// same employee twice is allowed too
	_, err = a.AssignExisting(ctx, ana.ID, ana.ID, 0)
	require.NoError(t, err)

	_, err = a.LogHours(ctx, bo.ID, 0, 2)
	require.NoError(t, err)

	rows, err := a.Report(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, "50%", row.Status)
	}

	_, err = a.AssignExisting(ctx, bo.ID, ana.ID, 5)
	assert.True(t, errors.IsNotFound(err))
}

func TestAPI_StateSurvivesRestart(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	first, err := New(ctx, openRepo(t, cfg), cfg, nil)
	require.NoError(t, err)
	ana, _ := first.AddEmployee(ctx, "Ana", "Eng")
	bo, _ := first.AddEmployee(ctx, "Bo", "Sales")
	_, err = first.AssignTask(ctx, ana.ID, "Design", 10, domain.KindCoding)
	require.NoError(t, err)
	_, err = first.AssignTask(ctx, ana.ID, "Docs", 3, domain.KindDocumentation)
	require.NoError(t, err)
	_, err = first.AssignExisting(ctx, bo.ID, ana.ID, 0)
	require.NoError(t, err)
	_, err = first.LogHours(ctx, ana.ID, 0, 4)
	require.NoError(t, err)
	before, err := first.Report(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(ctx, openRepo(t, cfg), cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	after, err := second.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	// the shared record is still one record after reload
	_, err = second.LogHours(ctx, bo.ID, 0, 6)
	require.NoError(t, err)
	anaTasks, err := second.TasksFor(ctx, ana.ID)
	require.NoError(t, err)
	assert.True(t, anaTasks[0].Completed())

	reloaded, err := second.EmployeeAt(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, bo, reloaded)

	cy, err := second.AddEmployee(ctx, "Cy", "Ops")
	require.NoError(t, err)
	assert.Equal(t, 3, cy.ID)
}

func TestAPI_LogsMutations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := testConfig(t)
	a, err := New(context.Background(), openRepo(t, cfg), cfg, zap.New(core))
	require.NoError(t, err)
	defer a.Close()

	_, err = a.AddEmployee(context.Background(), "Ana", "Eng")
	require.NoError(t, err)

	entries := logs.FilterMessage("employee added").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].ContextMap()["employee_id"])
}

// failingRepo wraps a working repository and fails the selected writes.
type failingRepo struct {
	sqlite.Repository
	failWrites bool
}

var errDiskFull = stderrors.New("disk full")

func (r *failingRepo) CreateEmployee(ctx context.Context, e *sqlite.Employee) error {
	if r.failWrites {
		return errors.NewDatabaseError("create employee", errDiskFull)
	}
	return r.Repository.CreateEmployee(ctx, e)
}

func (r *failingRepo) AssignNewTask(ctx context.Context, task *sqlite.Task, assignment *sqlite.Assignment) error {
	if r.failWrites {
		return errors.NewDatabaseError("assign task", errDiskFull)
	}
	return r.Repository.AssignNewTask(ctx, task, assignment)
}

func (r *failingRepo) CreateAssignment(ctx context.Context, assignment *sqlite.Assignment) error {
	if r.failWrites {
		return errors.NewDatabaseError("create assignment", errDiskFull)
	}
	return r.Repository.CreateAssignment(ctx, assignment)
}

func (r *failingRepo) UpdateTaskProgress(ctx context.Context, id int64, hoursWorked int) error {
	if r.failWrites {
		return errors.NewDatabaseError("update progress", errDiskFull)
	}
	return r.Repository.UpdateTaskProgress(ctx, id, hoursWorked)
}

func TestAPI_FailedWritesLeaveRosterUnchanged(t *testing.T) {
	cfg := testConfig(t)
	repo := &failingRepo{Repository: openRepo(t, cfg)}
	a, err := New(context.Background(), repo, cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()
	ctx := context.Background()

	ana, err := a.AddEmployee(ctx, "Ana", "Eng")
	require.NoError(t, err)
	_, err = a.AssignTask(ctx, ana.ID, "Design", 10, domain.KindCoding)
	require.NoError(t, err)
	before, err := a.Report(ctx)
	require.NoError(t, err)

	repo.failWrites = true

	_, err = a.AddEmployee(ctx, "Bo", "Sales")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
	_, err = a.AssignTask(ctx, ana.ID, "Docs", 2, domain.KindDocumentation)
	assert.Error(t, err)
	_, err = a.AssignExisting(ctx, ana.ID, ana.ID, 0)
	assert.Error(t, err)
	_, err = a.LogHours(ctx, ana.ID, 0, 5)
	assert.Error(t, err)

	after, err := a.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	employees, err := a.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 1)

	repo.failWrites = false
	bo, err := a.AddEmployee(ctx, "Bo", "Sales")
	require.NoError(t, err)
	assert.Equal(t, 2, bo.ID)
}

func TestAPI_LogsFailedWrites(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := testConfig(t)
	repo := &failingRepo{Repository: openRepo(t, cfg), failWrites: true}
	a, err := New(context.Background(), repo, cfg, zap.New(core))
	require.NoError(t, err)
	defer a.Close()

	_, err = a.AddEmployee(context.Background(), "Ana", "Eng")
	require.Error(t, err)

	entries := logs.FilterMessage("repository write failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "store employee", fields["operation"])
	logged, ok := fields["error"].(map[string]interface{})
	require.True(t, ok, "error should be logged as an object, got %T", fields["error"])
	assert.Equal(t, "database", logged["type"])
	assert.Equal(t, "disk full", logged["cause"])

	// user errors are not logged
	_, err = a.AddEmployee(context.Background(), "", "Eng")
	require.Error(t, err)
	assert.Len(t, logs.FilterMessage("repository write failed").All(), 1)
}

func TestAPI_CancelledContext(t *testing.T) {
	a, _ := setupAPI(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.ListEmployees(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	_, err = a.Report(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_RejectsCorruptSnapshot(t *testing.T) {
	tests := []struct {
		name     string
		employee sqlite.Employee
	}{
		// employee 2 without employee 1 cannot be replayed
		{name: "identifier gap", employee: sqlite.Employee{ID: 2, Name: "Bo", Department: "Sales"}},
		{name: "untrimmed name", employee: sqlite.Employee{ID: 1, Name: " Bo ", Department: "Sales"}},
		{name: "blank department", employee: sqlite.Employee{ID: 1, Name: "Bo", Department: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			repo := openRepo(t, cfg)
			defer repo.Close()
			ctx := context.Background()
			require.NoError(t, repo.CreateEmployee(ctx, &tt.employee))

			_, err := New(ctx, repo, cfg, nil)
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeDatabase))
		})
	}
}
