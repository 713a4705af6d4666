package api

import (
	"context"
	"time"

	"roster/internal/config"
	"roster/internal/domain"
	"roster/internal/errors"
	"roster/internal/repository/sqlite"
	"roster/internal/services"
	"roster/internal/validation"

	"go.uber.org/zap"
)

// API is the roster surface used by the CLI and the interactive form.
// Positions are 0-based. Every mutation is written to the repository before
// the in-memory roster changes, so a failed call leaves both untouched.
type API interface {
	// Employee operations
	AddEmployee(ctx context.Context, name, department string) (domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	FindEmployee(ctx context.Context, id int) (domain.Employee, error)
	EmployeeAt(ctx context.Context, position int) (domain.Employee, error)

	// Task operations
	AssignTask(ctx context.Context, employeeID int, name string, duration int, kind domain.TaskKind) (*domain.TaskRecord, error)
	AssignExisting(ctx context.Context, employeeID, fromEmployeeID, position int) (*domain.TaskRecord, error)
	TasksFor(ctx context.Context, employeeID int) ([]*domain.TaskRecord, error)
	LogHours(ctx context.Context, employeeID, position, hours int) (*domain.TaskRecord, error)

	// Reporting
	Report(ctx context.Context) ([]services.ProgressRow, error)
	Summary(ctx context.Context) (services.ReportSummary, error)

	Close() error
}

type apiImpl struct {
	repo   sqlite.Repository
	store  *services.EmployeeStore
	board  *services.TaskBoard
	report *services.ProgressReport
	mapper *domain.Mapper

	employeeValidator *validation.EmployeeValidator
	taskValidator     *validation.TaskValidator

	queryTimeout time.Duration
	writeTimeout time.Duration
	logger       *zap.Logger
}

// New builds the roster from the repository contents and returns an API
// backed by both.
func New(ctx context.Context, repo sqlite.Repository, cfg *config.Config, logger *zap.Logger) (API, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &apiImpl{
		repo:              repo,
		store:             services.NewEmployeeStore(),
		board:             services.NewTaskBoard(),
		report:            services.NewProgressReport(),
		mapper:            domain.NewMapper(),
		employeeValidator: validation.NewEmployeeValidatorWithConfig(cfg),
		taskValidator:     validation.NewTaskValidatorWithConfig(cfg),
		queryTimeout:      cfg.GetQueryTimeout(),
		writeTimeout:      cfg.GetWriteTimeout(),
		logger:            logger,
	}

	if err := a.hydrate(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// ========== Employee operations ==========

func (a *apiImpl) AddEmployee(ctx context.Context, name, department string) (domain.Employee, error) {
	if err := a.employeeValidator.ValidateEmployeeLimits(name, department); err != nil {
		return domain.Employee{}, errors.NewValidationError("invalid employee", err)
	}
	cleanName, cleanDepartment, err := a.employeeValidator.GetValidEmployee(name, department)
	if err != nil {
		return domain.Employee{}, errors.NewValidationError("invalid employee", err)
	}

	next := domain.Employee{ID: a.store.Count() + 1, Name: cleanName, Department: cleanDepartment}
	writeCtx, cancel := context.WithTimeout(ctx, a.writeTimeout)
	defer cancel()
	if err := a.repo.CreateEmployee(writeCtx, a.mapper.Employee.ToDatabase(next)); err != nil {
		a.logError("store employee", err)
		return domain.Employee{}, err
	}

	employee, err := a.store.AddEmployee(cleanName, cleanDepartment)
	if err != nil {
		return domain.Employee{}, err
	}
	a.logger.Info("employee added",
		zap.Int("employee_id", employee.ID),
		zap.String("department", employee.Department))
	return employee, nil
}

func (a *apiImpl) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.store.ListEmployees(), nil
}

func (a *apiImpl) FindEmployee(ctx context.Context, id int) (domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return domain.Employee{}, err
	}
	if err := a.employeeValidator.ValidateEmployeeID(id); err != nil {
		return domain.Employee{}, errors.NewEmployeeNotFoundError(id)
	}
	return a.store.FindByID(id)
}

// EmployeeAt returns the employee at a 0-based position in the listing
func (a *apiImpl) EmployeeAt(ctx context.Context, position int) (domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return domain.Employee{}, err
	}
	return a.store.EmployeeAt(position)
}

// ========== Task operations ==========

func (a *apiImpl) AssignTask(ctx context.Context, employeeID int, name string, duration int, kind domain.TaskKind) (*domain.TaskRecord, error) {
	employee, err := a.FindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		kind = domain.DefaultTaskKind
	}
	if err := a.taskValidator.ValidateTaskLimits(name, duration); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}
	task, err := domain.NewTaskRecordOfKind(name, duration, kind)
	if err != nil {
		return nil, err
	}

	dbTask := a.mapper.Task.ToDatabase(task)
	assignment := &sqlite.Assignment{
		EmployeeID: int64(employee.ID),
		Position:   len(a.board.TasksFor(employee)),
	}
	writeCtx, cancel := context.WithTimeout(ctx, a.writeTimeout)
	defer cancel()
	if err := a.repo.AssignNewTask(writeCtx, dbTask, assignment); err != nil {
		a.logError("store task", err)
		return nil, err
	}

	task.ID = dbTask.ID
	a.board.Assign(employee, task)
	a.logger.Info("task assigned",
		zap.Int("employee_id", employee.ID),
		zap.Int64("task_id", task.ID),
		zap.String("kind", task.Kind().String()),
		zap.Int("duration", task.Duration()))
	return task, nil
}

func (a *apiImpl) AssignExisting(ctx context.Context, employeeID, fromEmployeeID, position int) (*domain.TaskRecord, error) {
	employee, err := a.FindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	source, err := a.FindEmployee(ctx, fromEmployeeID)
	if err != nil {
		return nil, err
	}
	task, err := a.board.TaskAt(source, position)
	if err != nil {
		return nil, err
	}

	assignment := &sqlite.Assignment{
		EmployeeID: int64(employee.ID),
		TaskID:     task.ID,
		Position:   len(a.board.TasksFor(employee)),
	}
	writeCtx, cancel := context.WithTimeout(ctx, a.writeTimeout)
	defer cancel()
	if err := a.repo.CreateAssignment(writeCtx, assignment); err != nil {
		a.logError("store assignment", err)
		return nil, err
	}

	a.board.Assign(employee, task)
	a.logger.Info("task shared",
		zap.Int("employee_id", employee.ID),
		zap.Int("from_employee_id", source.ID),
		zap.Int64("task_id", task.ID))
	return task, nil
}

func (a *apiImpl) TasksFor(ctx context.Context, employeeID int) ([]*domain.TaskRecord, error) {
	employee, err := a.FindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return a.board.TasksFor(employee), nil
}

func (a *apiImpl) LogHours(ctx context.Context, employeeID, position, hours int) (*domain.TaskRecord, error) {
	employee, err := a.FindEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	task, err := a.board.TaskAt(employee, position)
	if err != nil {
		return nil, err
	}

	// advance a copy first so the stored value matches what memory will hold
	preview := *task
	if err := preview.AdvanceProgress(hours); err != nil {
		return nil, err
	}

	writeCtx, cancel := context.WithTimeout(ctx, a.writeTimeout)
	defer cancel()
	if err := a.repo.UpdateTaskProgress(writeCtx, task.ID, preview.HoursWorked()); err != nil {
		a.logError("store progress", err)
		return nil, err
	}

	if err := a.board.Advance(task, hours); err != nil {
		return nil, err
	}
	a.logger.Debug("hours logged",
		zap.Int("employee_id", employee.ID),
		zap.Int64("task_id", task.ID),
		zap.Int("hours", hours),
		zap.Int("percent", task.ProgressPercent()),
		zap.Bool("completed", task.Completed()))
	return task, nil
}

// ========== Reporting ==========

func (a *apiImpl) Report(ctx context.Context) ([]services.ProgressRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.report.Generate(a.store, a.board), nil
}

func (a *apiImpl) Summary(ctx context.Context) (services.ReportSummary, error) {
	rows, err := a.Report(ctx)
	if err != nil {
		return services.ReportSummary{}, err
	}
	return a.report.Summarize(a.store.Count(), rows), nil
}

func (a *apiImpl) Close() error {
	_ = a.logger.Sync()
	return a.repo.Close()
}

func (a *apiImpl) logError(operation string, err error) {
	if !errors.ShouldLogError(err) {
		return
	}
	field := zap.Error(err)
	if appErr, ok := errors.AsAppError(err); ok {
		field = zap.Object("error", appErr)
	}
	a.logger.Error("repository write failed", zap.String("operation", operation), field)
}
