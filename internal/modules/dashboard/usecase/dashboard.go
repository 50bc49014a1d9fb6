package usecase

import (
	"context"
	"sync"

	"coachdash/internal/modules/dashboard/domain"
	dashboarddto "coachdash/internal/modules/dashboard/dto"
	dashboardin "coachdash/internal/modules/dashboard/port/in"
	"coachdash/internal/modules/dashboard/service"
)

// Interactor loads the two persisted inputs once and keeps them for the
// lifetime of the view; toggles work against that snapshot.
type Interactor struct {
	svc *service.DashboardService

	mu        sync.Mutex
	loaded    bool
	profile   domain.Profile
	completed domain.CompletedSet
}

func NewInteractor(svc *service.DashboardService) dashboardin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Load(ctx context.Context) (dashboarddto.DashboardOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	return toOutput(domain.Derive(i.profile, i.completed)), nil
}

func (i *Interactor) ToggleTask(ctx context.Context, input dashboarddto.ToggleTaskInput) (dashboarddto.DashboardOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	next := i.completed.Toggle(input.Index)
	if err := i.svc.SaveCompleted(ctx, next); err != nil {
		return dashboarddto.DashboardOutput{}, err
	}
	i.completed = next
	return toOutput(domain.Derive(i.profile, i.completed)), nil
}

func (i *Interactor) ResetTasks(ctx context.Context) (dashboarddto.DashboardOutput, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.ensureLoaded(ctx)
	if err := i.svc.SaveCompleted(ctx, domain.CompletedSet{}); err != nil {
		return dashboarddto.DashboardOutput{}, err
	}
	i.completed = domain.CompletedSet{}
	return toOutput(domain.Derive(i.profile, i.completed)), nil
}

func (i *Interactor) ImportSession(ctx context.Context, input dashboarddto.ImportSessionInput) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if err := i.svc.StoreSession(ctx, input.Payload); err != nil {
		return err
	}
	i.loaded = false
	return nil
}

func (i *Interactor) ensureLoaded(ctx context.Context) {
	if i.loaded {
		return
	}
	i.profile = i.svc.LoadProfile(ctx)
	i.completed = i.svc.LoadCompleted(ctx)
	i.loaded = true
}

func toOutput(v domain.ViewState) dashboarddto.DashboardOutput {
	items := make([]dashboarddto.ActionItemOutput, len(v.ActionItems))
	for idx, item := range v.ActionItems {
		items[idx] = dashboarddto.ActionItemOutput{Index: item.Index, Text: item.Text, Done: item.Done}
	}
	insights := make([]dashboarddto.InsightOutput, len(v.Insights))
	for idx, in := range v.Insights {
		insights[idx] = dashboarddto.InsightOutput{Kind: string(in.Kind), Title: in.Title, Message: in.Message}
	}
	completed := append([]int{}, v.Completed...)
	dangling := append([]int{}, v.Dangling...)
	return dashboarddto.DashboardOutput{
		Origin:         string(v.Origin),
		ClientName:     v.ClientName,
		Readiness:      v.Readiness,
		ReadinessLevel: string(v.ReadinessLevel),
		Areas:          toAreas(v.Areas),
		BalanceAverage: v.BalanceAverage,
		BalanceDisplay: v.BalanceDisplay,
		BalanceLevel:   string(v.BalanceLevel),
		ActionItems:    items,
		Completed:      completed,
		Dangling:       dangling,
		CompletionRate: v.CompletionRate,
		Insights:       insights,
		FocusAreas:     toAreas(v.FocusAreas),
	}
}

func toAreas(scores []domain.AreaScore) []dashboarddto.AreaOutput {
	out := make([]dashboarddto.AreaOutput, len(scores))
	for idx, s := range scores {
		out[idx] = dashboarddto.AreaOutput{Key: s.Area.Key, Label: s.Area.Label, Icon: s.Area.Icon, Score: s.Score}
	}
	return out
}
