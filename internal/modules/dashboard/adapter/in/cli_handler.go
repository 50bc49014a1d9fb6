package in

import (
	"context"

	dashboarddto "coachdash/internal/modules/dashboard/dto"
	dashboardin "coachdash/internal/modules/dashboard/port/in"
)

type CLIHandler struct {
	usecase dashboardin.Usecase
}

func NewCLIHandler(usecase dashboardin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Load(ctx context.Context) (dashboarddto.DashboardOutput, error) {
	return h.usecase.Load(ctx)
}

func (h CLIHandler) ToggleTask(ctx context.Context, index int) (dashboarddto.DashboardOutput, error) {
	return h.usecase.ToggleTask(ctx, dashboarddto.ToggleTaskInput{Index: index})
}

func (h CLIHandler) ResetTasks(ctx context.Context) (dashboarddto.DashboardOutput, error) {
	return h.usecase.ResetTasks(ctx)
}

func (h CLIHandler) ImportSession(ctx context.Context, payload []byte) error {
	return h.usecase.ImportSession(ctx, dashboarddto.ImportSessionInput{Payload: payload})
}
