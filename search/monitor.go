package search

import (
	"github.com/poiesic/resolvit/core"
	"github.com/poiesic/resolvit/index"
)

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(query string)
	AfterNormalize(normalized string)
	AfterSemanticScan(hits []index.Hit)
	WeightsResolved(weights WeightSet)
	Finish(results []core.Candidate)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                  {}
func (n *noopMonitor) AfterNormalize(_ string)         {}
func (n *noopMonitor) AfterSemanticScan(_ []index.Hit) {}
func (n *noopMonitor) WeightsResolved(_ WeightSet)     {}
func (n *noopMonitor) Finish(_ []core.Candidate)       {}
