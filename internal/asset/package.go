// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package asset

import (
	"context"
	"sync"
	"time"

	"github.com/pdiddy/brand-engine/pkg/types"
)

const (
	defaultMaxInFlight = 3
	defaultSlotTimeout = 90 * time.Second
)

// Assembler drives a Generator over the canonical asset set. The six
// per-type calls share no mutable state and run concurrently, bounded by
// maxInFlight to respect upstream rate limits. Assembly joins on all six
// outcomes: a slow or failed slot becomes a placeholder and never cancels
// the others.
type Assembler struct {
	gen         *Generator
	maxInFlight int
	slotTimeout time.Duration
}

// NewAssembler returns an Assembler with config defaults applied.
func NewAssembler(gen *Generator, cfg types.AssetConfig) *Assembler {
	maxInFlight := cfg.MaxInFlight
	if maxInFlight <= 0 {
		maxInFlight = defaultMaxInFlight
	}
	slotTimeout := cfg.SlotTimeout
	if slotTimeout <= 0 {
		slotTimeout = defaultSlotTimeout
	}
	return &Assembler{gen: gen, maxInFlight: maxInFlight, slotTimeout: slotTimeout}
}

// Assemble generates one asset for each canonical type and returns exactly
// len(CanonicalAssetTypes) assets in canonical order. Individual failures
// surface as placeholder assets in their slot; Assemble itself cannot fail.
func (a *Assembler) Assemble(ctx context.Context, p *types.Project) []types.Asset {
	results := make([]types.Asset, len(types.CanonicalAssetTypes))
	sem := make(chan struct{}, a.maxInFlight)

	var wg sync.WaitGroup
	for i, assetType := range types.CanonicalAssetTypes {
		wg.Add(1)
		go func(slot int, assetType types.AssetType) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			slotCtx, cancel := context.WithTimeout(ctx, a.slotTimeout)
			defer cancel()
			results[slot] = a.gen.Generate(slotCtx, p, assetType, "")
		}(i, assetType)
	}
	wg.Wait()

	return results
}
