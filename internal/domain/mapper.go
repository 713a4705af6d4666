package domain

import (
	"roster/internal/repository/sqlite"
)

// EmployeeMapper handles conversion between domain and database Employee models.
type EmployeeMapper struct{}

// NewEmployeeMapper creates a new EmployeeMapper instance.
func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// ToDatabase converts a domain Employee to a database Employee.
func (m *EmployeeMapper) ToDatabase(employee Employee) *sqlite.Employee {
	return &sqlite.Employee{
		ID:         int64(employee.ID),
		Name:       employee.Name,
		Department: employee.Department,
	}
}

// FromDatabase converts a database Employee to a domain Employee.
func (m *EmployeeMapper) FromDatabase(dbEmployee *sqlite.Employee) Employee {
	return Employee{
		ID:         int(dbEmployee.ID),
		Name:       dbEmployee.Name,
		Department: dbEmployee.Department,
	}
}

// FromDatabaseSlice converts a slice of database Employees to domain Employees.
func (m *EmployeeMapper) FromDatabaseSlice(dbEmployees []*sqlite.Employee) []Employee {
	employees := make([]Employee, len(dbEmployees))
	for i, employee := range dbEmployees {
		employees[i] = m.FromDatabase(employee)
	}
	return employees
}

// TaskMapper handles conversion between domain TaskRecords and database Tasks.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain TaskRecord to a database Task.
func (m *TaskMapper) ToDatabase(task *TaskRecord) *sqlite.Task {
	return &sqlite.Task{
		ID:            task.ID,
		Name:          task.Name(),
		Kind:          string(task.Kind()),
		DurationHours: task.Duration(),
		HoursWorked:   task.HoursWorked(),
	}
}

// FromDatabase rebuilds a domain TaskRecord from a database Task. Rows that
// break the record invariants are rejected.
func (m *TaskMapper) FromDatabase(dbTask *sqlite.Task) (*TaskRecord, error) {
	kind, err := ParseTaskKind(dbTask.Kind)
	if err != nil {
		return nil, err
	}
	return RestoreTaskRecord(dbTask.ID, dbTask.Name, dbTask.DurationHours, dbTask.HoursWorked, kind)
}

// FromDatabaseSlice converts database Tasks to domain TaskRecords keyed by ID.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) (map[int64]*TaskRecord, error) {
	tasks := make(map[int64]*TaskRecord, len(dbTasks))
	for _, dbTask := range dbTasks {
		task, err := m.FromDatabase(dbTask)
		if err != nil {
			return nil, err
		}
		tasks[task.ID] = task
	}
	return tasks, nil
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Employee *EmployeeMapper
	Task     *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Employee: NewEmployeeMapper(),
		Task:     NewTaskMapper(),
	}
}
