package workreport

import "sitelabour/internal/dto"

// AllocationKey identifies one labour bucket inside a day.
type AllocationKey struct {
	TeamId       int
	LabourTypeId int
}

// SumAllocations totals allocation counts across every item in the payload,
// keyed by (team, labour type). Items without allocations contribute nothing.
func SumAllocations(items []dto.WorkItemPayload) map[AllocationKey]int {
	totals := make(map[AllocationKey]int)
	for _, item := range items {
		for _, alloc := range item.Allocations {
			key := AllocationKey{TeamId: alloc.TeamId, LabourTypeId: alloc.LabourTypeId}
			totals[key] += alloc.Count
		}
	}
	return totals
}

// ComputeRemaining subtracts the allocated totals from the attendance counts.
// Over-allocation yields a negative remainder on purpose: the caller surfaces
// it as a warning, it never blocks a save. Buckets allocated without any
// attendance row start from zero.
func ComputeRemaining(attendance map[AllocationKey]int, items []dto.WorkItemPayload) map[AllocationKey]int {
	remaining := make(map[AllocationKey]int, len(attendance))
	for key, count := range attendance {
		remaining[key] = count
	}
	for key, allocated := range SumAllocations(items) {
		remaining[key] -= allocated
	}
	return remaining
}
