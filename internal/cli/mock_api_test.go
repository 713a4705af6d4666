package cli

import (
	"bytes"
	"context"
	"testing"

	"roster/internal/api"
	"roster/internal/config"
	"roster/internal/domain"
	"roster/internal/services"
)

// mockAPI implements api.API on top of the in-memory services, without a
// database. failures forces an error from the named method.
type mockAPI struct {
	store  *services.EmployeeStore
	board  *services.TaskBoard
	report *services.ProgressReport
	nextID int64

	failures map[string]error
	closed   bool
}

func newMockAPI() *mockAPI {
	return &mockAPI{
		store:    services.NewEmployeeStore(),
		board:    services.NewTaskBoard(),
		report:   services.NewProgressReport(),
		nextID:   1,
		failures: make(map[string]error),
	}
}

var _ api.API = (*mockAPI)(nil)

func (m *mockAPI) failWith(method string, err error) {
	m.failures[method] = err
}

func (m *mockAPI) AddEmployee(ctx context.Context, name, department string) (domain.Employee, error) {
	if err := m.failures["AddEmployee"]; err != nil {
		return domain.Employee{}, err
	}
	return m.store.AddEmployee(name, department)
}

func (m *mockAPI) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := m.failures["ListEmployees"]; err != nil {
		return nil, err
	}
	return m.store.ListEmployees(), nil
}

func (m *mockAPI) FindEmployee(ctx context.Context, id int) (domain.Employee, error) {
	if err := m.failures["FindEmployee"]; err != nil {
		return domain.Employee{}, err
	}
	return m.store.FindByID(id)
}

func (m *mockAPI) EmployeeAt(ctx context.Context, position int) (domain.Employee, error) {
	if err := m.failures["EmployeeAt"]; err != nil {
		return domain.Employee{}, err
	}
	return m.store.EmployeeAt(position)
}

func (m *mockAPI) AssignTask(ctx context.Context, employeeID int, name string, duration int, kind domain.TaskKind) (*domain.TaskRecord, error) {
	if err := m.failures["AssignTask"]; err != nil {
		return nil, err
	}
	employee, err := m.store.FindByID(employeeID)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		kind = domain.DefaultTaskKind
	}
	task, err := domain.NewTaskRecordOfKind(name, duration, kind)
	if err != nil {
		return nil, err
	}
	task.ID = m.nextID
	m.nextID++
	m.board.Assign(employee, task)
	return task, nil
}

func (m *mockAPI) AssignExisting(ctx context.Context, employeeID, fromEmployeeID, position int) (*domain.TaskRecord, error) {
	if err := m.failures["AssignExisting"]; err != nil {
		return nil, err
	}
	employee, err := m.store.FindByID(employeeID)
	if err != nil {
		return nil, err
	}
	from, err := m.store.FindByID(fromEmployeeID)
	if err != nil {
		return nil, err
	}
	task, err := m.board.TaskAt(from, position)
	if err != nil {
		return nil, err
	}
	m.board.Assign(employee, task)
	return task, nil
}

func (m *mockAPI) TasksFor(ctx context.Context, employeeID int) ([]*domain.TaskRecord, error) {
	if err := m.failures["TasksFor"]; err != nil {
		return nil, err
	}
	employee, err := m.store.FindByID(employeeID)
	if err != nil {
		return nil, err
	}
	return m.board.TasksFor(employee), nil
}

func (m *mockAPI) LogHours(ctx context.Context, employeeID, position, hours int) (*domain.TaskRecord, error) {
	if err := m.failures["LogHours"]; err != nil {
		return nil, err
	}
	employee, err := m.store.FindByID(employeeID)
	if err != nil {
		return nil, err
	}
	task, err := m.board.TaskAt(employee, position)
	if err != nil {
		return nil, err
	}
	if err := m.board.Advance(task, hours); err != nil {
		return nil, err
	}
	return task, nil
}

func (m *mockAPI) Report(ctx context.Context) ([]services.ProgressRow, error) {
	if err := m.failures["Report"]; err != nil {
		return nil, err
	}
	return m.report.Generate(m.store, m.board), nil
}

func (m *mockAPI) Summary(ctx context.Context) (services.ReportSummary, error) {
	if err := m.failures["Summary"]; err != nil {
		return services.ReportSummary{}, err
	}
	rows := m.report.Generate(m.store, m.board)
	return m.report.Summarize(m.store.Count(), rows), nil
}

func (m *mockAPI) Close() error {
	m.closed = true
	return nil
}

// setupTestApp returns an App over a fresh mock and the buffer it prints to
func setupTestApp(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()
	mock := newMockAPI()
	out := &bytes.Buffer{}
	return NewApp(mock, config.NewConfig(), out), mock, out
}

// seedRoster adds Ana with a 10 hour Design task and Bo with nothing
func seedRoster(t *testing.T, mock *mockAPI) {
	t.Helper()
	ctx := context.Background()
	ana, err := mock.AddEmployee(ctx, "Ana", "Eng")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := mock.AddEmployee(ctx, "Bo", "Sales"); err != nil {
		t.Fatal(err)
	}
	if _, err := mock.AssignTask(ctx, ana.ID, "Design", 10, domain.KindReview); err != nil {
		t.Fatal(err)
	}
}
