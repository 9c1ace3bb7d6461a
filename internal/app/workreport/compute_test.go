package workreport

import (
	"testing"

	"sitelabour/internal/dto"
)

func TestComputeRemainingAcrossItems(t *testing.T) {
	attendance := map[AllocationKey]int{
		{TeamId: 1, LabourTypeId: 10}: 10,
	}
	items := []dto.WorkItemPayload{
		{
			WorkDescription: "Formwork",
			Allocations: []dto.WorkAllocationRow{
				{TeamId: 1, LabourTypeId: 10, Count: 5},
			},
		},
		{
			WorkDescription: "Rebar",
			Allocations: []dto.WorkAllocationRow{
				{TeamId: 1, LabourTypeId: 10, Count: 3},
			},
		},
	}

	remaining := ComputeRemaining(attendance, items)
	if got := remaining[AllocationKey{TeamId: 1, LabourTypeId: 10}]; got != 2 {
		t.Fatalf("remaining = %d, want 2", got)
	}
}

func TestComputeRemainingGoesNegative(t *testing.T) {
	attendance := map[AllocationKey]int{
		{TeamId: 1, LabourTypeId: 10}: 10,
	}
	items := []dto.WorkItemPayload{
		{Allocations: []dto.WorkAllocationRow{{TeamId: 1, LabourTypeId: 10, Count: 5}}},
		{Allocations: []dto.WorkAllocationRow{{TeamId: 1, LabourTypeId: 10, Count: 3}}},
		{Allocations: []dto.WorkAllocationRow{{TeamId: 1, LabourTypeId: 10, Count: 5}}},
	}

	remaining := ComputeRemaining(attendance, items)
	if got := remaining[AllocationKey{TeamId: 1, LabourTypeId: 10}]; got != -3 {
		t.Fatalf("remaining = %d, want -3 (over-allocation is allowed)", got)
	}
}

func TestComputeRemainingUnknownBucketStartsAtZero(t *testing.T) {
	attendance := map[AllocationKey]int{}
	items := []dto.WorkItemPayload{
		{Allocations: []dto.WorkAllocationRow{{TeamId: 2, LabourTypeId: 20, Count: 4}}},
	}

	remaining := ComputeRemaining(attendance, items)
	if got := remaining[AllocationKey{TeamId: 2, LabourTypeId: 20}]; got != -4 {
		t.Fatalf("remaining = %d, want -4", got)
	}
}

func TestSumAllocationsIgnoresEmptyItems(t *testing.T) {
	items := []dto.WorkItemPayload{
		{WorkDescription: "Survey only"},
		{Allocations: []dto.WorkAllocationRow{
			{TeamId: 1, LabourTypeId: 10, Count: 2},
			{TeamId: 1, LabourTypeId: 11, Count: 7},
		}},
	}

	totals := SumAllocations(items)
	if len(totals) != 2 {
		t.Fatalf("buckets = %d, want 2", len(totals))
	}
	if totals[AllocationKey{TeamId: 1, LabourTypeId: 11}] != 7 {
		t.Fatalf("bucket 1/11 = %d, want 7", totals[AllocationKey{TeamId: 1, LabourTypeId: 11}])
	}
}
