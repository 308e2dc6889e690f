package requisitionmock

import (
	"context"
	"errors"
	"testing"

	domain "seismic-catalog/internal/domain/requisition"
)

func TestRepo_Defaults(t *testing.T) {
	m := &Repo{}
	ctx := context.Background()

	if err := m.Create(ctx, &domain.Requisition{}); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
	if err := m.UpdateDecision(ctx, &domain.Requisition{}, domain.StatusPendingL2); err != nil {
		t.Fatalf("UpdateDecision default: want nil, got %v", err)
	}
	if _, err := m.GetByID(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetByID default: want context.Canceled, got %v", err)
	}
	if _, err := m.GetByIDForUpdate(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("GetByIDForUpdate default: want context.Canceled, got %v", err)
	}
	if _, err := m.List(ctx, domain.Visibility{All: true}); !errors.Is(err, context.Canceled) {
		t.Fatalf("List default: want context.Canceled, got %v", err)
	}
}

func TestRepo_ForwardsToFns(t *testing.T) {
	ctx := context.Background()
	var gotVis domain.Visibility
	var gotExpected domain.Status

	m := &Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domain.Requisition, error) {
			return &domain.Requisition{ID: id}, nil
		},
		ListFn: func(_ context.Context, v domain.Visibility) ([]domain.Requisition, error) {
			gotVis = v
			return []domain.Requisition{{ID: 1}, {ID: 2}}, nil
		},
		UpdateDecisionFn: func(_ context.Context, _ *domain.Requisition, expected domain.Status) error {
			gotExpected = expected
			return domain.ErrStaleStatus
		},
	}

	r, err := m.GetByID(ctx, 7)
	if err != nil || r.ID != 7 {
		t.Fatalf("GetByID forwarded = %+v, %v", r, err)
	}
	rows, err := m.List(ctx, domain.Visibility{RequesterID: "U1"})
	if err != nil || len(rows) != 2 || gotVis.RequesterID != "U1" {
		t.Fatalf("List forwarded = %v, %v, vis=%+v", rows, err, gotVis)
	}
	if err := m.UpdateDecision(ctx, r, domain.StatusL2Approved); !errors.Is(err, domain.ErrStaleStatus) || gotExpected != domain.StatusL2Approved {
		t.Fatalf("UpdateDecision forwarded err=%v expected=%s", err, gotExpected)
	}
}
