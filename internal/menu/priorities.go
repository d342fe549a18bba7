package menu

import "fmt"

func loadPriorityGrid(ctx Context) (*GridModel, error) {
	duties := ctx.Store.Duties()
	model := &GridModel{Columns: make([]GridColumn, 0, len(duties))}
	for _, duty := range duties {
		col := GridColumn{ID: duty.ID, Title: duty.Name}
		for _, assignment := range duty.Assignments {
			col.Cells = append(col.Cells, Item{
				ID:          assignment.Member,
				Label:       fmt.Sprintf("%s, priority %d", assignment.Member, assignment.Priority),
				SearchLabel: assignment.Member,
			})
		}
		model.Columns = append(model.Columns, col)
	}
	return model, nil
}

// PriorityCycleAction advances the priority of the assignment behind a grid
// cell and reports the new value.
func PriorityCycleAction(ctx Context, columnID string, cell Item) (string, error) {
	priority, err := ctx.Store.CyclePriority(columnID, cell.ID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s set to priority %d", cell.ID, priority), nil
}
