package service

import "github.com/scoutbase/founderrag/core"

// SearchMonitor provides hooks to observe the retrieval pipeline.
// Implement this interface to track intermediate steps during search.
type SearchMonitor interface {
	Start(query string, limit int)
	AfterVectorSearch(candidates []core.Candidate)
	ResultAssembled(result *core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ int)                  {}
func (n *noopMonitor) AfterVectorSearch(_ []core.Candidate)   {}
func (n *noopMonitor) ResultAssembled(_ *core.SearchResult)   {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)          {}
