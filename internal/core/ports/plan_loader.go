package ports

import "go.trai.ch/camplan/internal/core/domain"

// PlanLoader defines the interface for loading the shop catalog and the
// parts plan.
//
//go:generate go run go.uber.org/mock/mockgen -source=plan_loader.go -destination=mocks/mock_plan_loader.go -package=mocks
type PlanLoader interface {
	// Load reads the plan file at the given path and returns the parsed
	// plan: catalog, parts and cache settings.
	Load(path string) (*domain.Plan, error)
}
