// Package pool precomputes the candidate resource lists the scheduler
// draws from: one sorted list of (shop, machine, tool) triples per
// operation kind.
package pool

import (
	"sort"

	"go.trai.ch/camplan/internal/core/domain"
)

// Pool holds the per-kind candidate lists. It is built once per shop
// configuration, is read-only afterwards and may be shared across
// concurrent scheduling runs without synchronization.
type Pool struct {
	byKind map[domain.Kind][]domain.Candidate
}

// Build constructs the pool from the catalog. Every tool contributes one
// candidate per kind it prices; kinds without a priority are excluded from
// that kind's list. Each list is sorted ascending by the candidate order,
// so the head of a list is the most preferred triple.
func Build(catalog domain.Catalog) *Pool {
	byKind := make(map[domain.Kind][]domain.Candidate)

	for si := range catalog.Shops {
		shop := &catalog.Shops[si]
		for mi := range shop.Machines {
			machine := &shop.Machines[mi]
			for ti := range machine.Tools {
				tool := &machine.Tools[ti]
				for _, kind := range tool.Kinds() {
					priority, ok := tool.PriorityFor(kind)
					if !ok {
						continue
					}
					byKind[kind] = append(byKind[kind], domain.Candidate{
						Priority:   priority,
						ShopID:     shop.ID,
						MachineID:  machine.ID,
						Tool:       tool,
						ToolNumber: tool.Number,
						Controller: machine.Controller,
					})
				}
			}
		}
	}

	for kind := range byKind {
		list := byKind[kind]
		sort.SliceStable(list, func(i, j int) bool { return list[i].Less(list[j]) })
	}

	return &Pool{byKind: byKind}
}

// Candidates returns the sorted candidate list for a kind. The returned
// slice is owned by the pool and must not be mutated.
func (p *Pool) Candidates(kind domain.Kind) []domain.Candidate {
	return p.byKind[kind]
}

// Size returns the number of candidates for a kind, for logging.
func (p *Pool) Size(kind domain.Kind) int {
	return len(p.byKind[kind])
}
