// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workflow owns the project lifecycle: intake validation, the
// stage machine (intake, strategy_ready, package_ready), and the
// per-project serialization that keeps concurrent operations on one
// project from interleaving writes. All project mutations flow through the
// Orchestrator; no other component writes a Project record.
package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/brand-engine/internal/asset"
	"github.com/pdiddy/brand-engine/internal/strategy"
	"github.com/pdiddy/brand-engine/pkg/types"
)

// ProjectStore is the durable keyed storage the orchestrator writes
// through. Get returns an error satisfying errors.Is(err, ErrNotFound) for
// unknown ids; Save is atomic per document.
type ProjectStore interface {
	Get(ctx context.Context, id string) (*types.Project, error)
	Save(ctx context.Context, p *types.Project) error
	List(ctx context.Context, limit int) ([]types.Project, error)
}

// Orchestrator sequences the brand workflow over a project store and the
// two generators.
type Orchestrator struct {
	store      ProjectStore
	strategies *strategy.Generator
	assets     *asset.Generator
	packages   *asset.Assembler
	locks      keyedMutex
	now        func() time.Time
}

// New returns an Orchestrator over the given collaborators.
func New(store ProjectStore, strategies *strategy.Generator, assets *asset.Generator, packages *asset.Assembler) *Orchestrator {
	return &Orchestrator{
		store:      store,
		strategies: strategies,
		assets:     assets,
		packages:   packages,
		now:        time.Now,
	}
}

// CreateProject validates the intake input and persists a new project at
// the intake stage.
func (o *Orchestrator) CreateProject(ctx context.Context, input types.BusinessInput) (*types.Project, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	p := &types.Project{
		ID:            uuid.NewString(),
		BusinessInput: input,
		Status:        types.StatusIntake,
		CreatedAt:     o.now().UTC(),
	}
	if err := o.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("persisting new project: %w", err)
	}
	return p, nil
}

// GetProject loads a project by id.
func (o *Orchestrator) GetProject(ctx context.Context, id string) (*types.Project, error) {
	return o.store.Get(ctx, id)
}

// ListProjects returns up to limit projects, most recent first.
func (o *Orchestrator) ListProjects(ctx context.Context, limit int) ([]types.Project, error) {
	return o.store.List(ctx, limit)
}

// GenerateStrategy produces and persists a brand strategy for the project,
// advancing it to strategy_ready. On failure the stored project is left
// exactly as it was; no partial strategy is ever persisted.
func (o *Orchestrator) GenerateStrategy(ctx context.Context, projectID string) (*types.BrandStrategy, error) {
	unlock := o.locks.lock(projectID)
	defer unlock()

	p, err := o.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	s, err := o.strategies.Generate(ctx, p.BusinessInput)
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	p.Strategy = s
	if !p.Status.AtLeast(types.StatusStrategyReady) {
		p.Status = types.StatusStrategyReady
	}
	if err := o.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("persisting strategy: %w", err)
	}
	return s, nil
}

// GenerateAsset produces one asset of the requested type and persists it,
// replacing any existing record for that type. Generation failure is
// already contained as a placeholder by the asset generator, so this call
// fails only on an unknown project, a missing strategy, or an invalid
// asset type.
func (o *Orchestrator) GenerateAsset(ctx context.Context, projectID string, assetType types.AssetType, customContext string) (*types.Asset, error) {
	if !assetType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetType, assetType)
	}

	unlock := o.locks.lock(projectID)
	defer unlock()

	p, err := o.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := requireStrategy(p); err != nil {
		return nil, err
	}

	a := o.assets.Generate(ctx, p, assetType, customContext)

	if p.Assets == nil {
		p.Assets = make(map[types.AssetType]types.Asset, len(types.CanonicalAssetTypes))
	}
	p.Assets[assetType] = a
	if err := o.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("persisting asset: %w", err)
	}
	return &a, nil
}

// GenerateCompletePackage assembles the full canonical asset set,
// persists it, and advances the project to package_ready. Re-invoking on a
// package_ready project regenerates, replacing records type-by-type. The
// returned slice always holds exactly one asset per canonical type, in
// canonical order.
func (o *Orchestrator) GenerateCompletePackage(ctx context.Context, projectID string) ([]types.Asset, error) {
	unlock := o.locks.lock(projectID)
	defer unlock()

	p, err := o.store.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := requireStrategy(p); err != nil {
		return nil, err
	}

	assets := o.packages.Assemble(ctx, p)

	if p.Assets == nil {
		p.Assets = make(map[types.AssetType]types.Asset, len(assets))
	}
	for _, a := range assets {
		p.Assets[a.AssetType] = a
	}
	p.Status = types.StatusPackageReady
	if err := o.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("persisting package: %w", err)
	}
	return assets, nil
}

// requireStrategy gates asset operations on the strategy stage.
func requireStrategy(p *types.Project) error {
	if !p.Status.AtLeast(types.StatusStrategyReady) || p.Strategy == nil {
		return fmt.Errorf("%w: project %s has status %s, strategy required first", ErrPrecondition, p.ID, p.Status)
	}
	return nil
}

// validateInput checks the required intake fields.
func validateInput(input types.BusinessInput) error {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"business_name", input.BusinessName},
		{"business_description", input.BusinessDescription},
		{"industry", input.Industry},
		{"target_audience", input.TargetAudience},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
