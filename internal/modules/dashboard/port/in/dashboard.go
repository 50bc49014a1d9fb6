package in

import (
	"context"

	"coachdash/internal/modules/dashboard/dto"
)

type Usecase interface {
	Load(ctx context.Context) (dto.DashboardOutput, error)
	ToggleTask(ctx context.Context, input dto.ToggleTaskInput) (dto.DashboardOutput, error)
	ResetTasks(ctx context.Context) (dto.DashboardOutput, error)
	ImportSession(ctx context.Context, input dto.ImportSessionInput) error
}
