package api

import (
	"context"
	"fmt"

	"roster/internal/errors"

	"go.uber.org/zap"
)

// hydrate replays the stored roster into the in-memory store and board.
// Employees go through the store in ID order so the store hands out the
// same identifiers; a gap or mismatch means the snapshot is corrupt.
func (a *apiImpl) hydrate(ctx context.Context) error {
	queryCtx, cancel := context.WithTimeout(ctx, a.queryTimeout)
	defer cancel()

	dbEmployees, err := a.repo.ListEmployees(queryCtx)
	if err != nil {
		return err
	}
	for _, stored := range a.mapper.Employee.FromDatabaseSlice(dbEmployees) {
		employee, err := a.store.AddEmployee(stored.Name, stored.Department)
		if err != nil {
			return errors.NewDatabaseError("load employees", err)
		}
		if employee != stored {
			return errors.NewDatabaseError("load employees",
				fmt.Errorf("stored employee %q replayed as %q", stored, employee))
		}
	}

	dbTasks, err := a.repo.ListTasks(queryCtx)
	if err != nil {
		return err
	}
	tasks, err := a.mapper.Task.FromDatabaseSlice(dbTasks)
	if err != nil {
		return errors.NewDatabaseError("load tasks", err)
	}

	dbAssignments, err := a.repo.ListAssignments(queryCtx)
	if err != nil {
		return err
	}
	for _, assignment := range dbAssignments {
		employee, err := a.store.FindByID(int(assignment.EmployeeID))
		if err != nil {
			return errors.NewDatabaseError("load assignments", err)
		}
		task, ok := tasks[assignment.TaskID]
		if !ok {
			return errors.NewDatabaseError("load assignments",
				fmt.Errorf("assignment %d references missing task %d", assignment.ID, assignment.TaskID))
		}
		if want := len(a.board.TasksFor(employee)); assignment.Position != want {
			return errors.NewDatabaseError("load assignments",
				fmt.Errorf("employee %d has assignment at position %d, expected %d", employee.ID, assignment.Position, want))
		}
		a.board.Assign(employee, task)
	}

	a.logger.Debug("roster loaded",
		zap.Int("employees", a.store.Count()),
		zap.Int("tasks", len(tasks)),
		zap.Int("assignments", a.board.AssignmentCount()))
	return nil
}
