package sqlite

import (
	"context"
	"database/sql"

	"roster/internal/errors"
	"roster/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	// Employee operations
	CreateEmployee(ctx context.Context, employee *Employee) error
	ListEmployees(ctx context.Context) ([]*Employee, error)

	// Task operations
	ListTasks(ctx context.Context) ([]*Task, error)
	UpdateTaskProgress(ctx context.Context, id int64, hoursWorked int) error

	// Assignment operations
	CreateAssignment(ctx context.Context, assignment *Assignment) error
	AssignNewTask(ctx context.Context, task *Task, assignment *Assignment) error
	ListAssignments(ctx context.Context) ([]*Assignment, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and brings its schema up to date.
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// one connection: ":memory:" databases are per-connection, and the
	// roster has a single caller anyway
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("enable foreign keys", err)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateEmployee stores an employee under the identifier it already carries
func (r *SQLiteRepository) CreateEmployee(ctx context.Context, employee *Employee) error {
	if employee.CreatedAt.IsZero() {
		employee.CreatedAt = nowForDB()
	}

	query := `INSERT INTO employees (id, name, department, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, employee.ID, employee.Name, employee.Department, FormatTimeForDB(employee.CreatedAt))
	if err != nil {
		return HandleDatabaseError("create employee", err)
	}
	return nil
}

// ListEmployees retrieves all employees in identifier order
func (r *SQLiteRepository) ListEmployees(ctx context.Context) ([]*Employee, error) {
	query := `SELECT id, name, department, created_at FROM employees ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, "employees", query, ScanEmployees)
}

func createTask(ctx context.Context, db DBTX, task *Task) error {
	if task.CreatedAt.IsZero() {
		task.CreatedAt = nowForDB()
	}

	query := `
	INSERT INTO tasks (name, kind, duration_hours, hours_worked, created_at)
	VALUES (?, ?, ?, ?, ?)`

	id, err := ExecuteInsert(ctx, db, "create task", query, task.Name, task.Kind, task.DurationHours, task.HoursWorked, FormatTimeForDB(task.CreatedAt))
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

// ListTasks retrieves all tasks in creation order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT id, name, kind, duration_hours, hours_worked, created_at FROM tasks ORDER BY id ASC`
	return QueryMultiple(ctx, r.db, "tasks", query, ScanTasks)
}

// UpdateTaskProgress records the hours worked on a task
func (r *SQLiteRepository) UpdateTaskProgress(ctx context.Context, id int64, hoursWorked int) error {
	query := `UPDATE tasks SET hours_worked = ? WHERE id = ?`
	return ExecuteUpdate(ctx, r.db, "task", id, query, hoursWorked, id)
}

// CreateAssignment links an existing task to an employee
func (r *SQLiteRepository) CreateAssignment(ctx context.Context, assignment *Assignment) error {
	return createAssignment(ctx, r.db, assignment)
}

func createAssignment(ctx context.Context, db DBTX, assignment *Assignment) error {
	if assignment.AssignedAt.IsZero() {
		assignment.AssignedAt = nowForDB()
	}

	query := `
	INSERT INTO assignments (employee_id, task_id, position, assigned_at)
	VALUES (?, ?, ?, ?)`

	id, err := ExecuteInsert(ctx, db, "create assignment", query, assignment.EmployeeID, assignment.TaskID, assignment.Position, FormatTimeForDB(assignment.AssignedAt))
	if err != nil {
		return err
	}
	assignment.ID = id
	return nil
}

// AssignNewTask stores a task and its first assignment atomically
func (r *SQLiteRepository) AssignNewTask(ctx context.Context, task *Task, assignment *Assignment) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := createTask(ctx, tx, task); err != nil {
			return err
		}
		assignment.TaskID = task.ID
		return createAssignment(ctx, tx, assignment)
	})
}

// ListAssignments retrieves every assignment grouped by employee in position order
func (r *SQLiteRepository) ListAssignments(ctx context.Context) ([]*Assignment, error) {
	query := `
	SELECT id, employee_id, task_id, position, assigned_at
	FROM assignments
	ORDER BY employee_id ASC, position ASC`
	return QueryMultiple(ctx, r.db, "assignments", query, ScanAssignments)
}
