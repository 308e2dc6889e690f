package uowmock

import (
	"context"
	"errors"
	"testing"

	"seismic-catalog/internal/domain/requisition"
	"seismic-catalog/internal/domain/uow"
	"seismic-catalog/internal/testutil/requisitionmock"
	"seismic-catalog/internal/testutil/usermock"
)

func TestUoW_WithinTx_Happy(t *testing.T) {
	ctx := context.Background()

	reqs := &requisitionmock.Repo{}
	users := &usermock.Repo{}
	repos := uow.Repos{Requisitions: reqs, Users: users}

	innerCalled := false
	m := &UoW{
		WithinTxFn: func(gotCtx context.Context, fn func(r uow.Repos) error) error {
			if gotCtx != ctx {
				t.Fatalf("WithinTx: ctx mismatch")
			}
			return fn(repos)
		},
	}

	err := m.WithinTx(ctx, func(r uow.Repos) error {
		innerCalled = true
		if r.Requisitions != reqs || r.Users != users {
			t.Fatalf("WithinTx: repos not forwarded correctly")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx: unexpected err: %v", err)
	}
	if !innerCalled {
		t.Fatalf("WithinTx: inner fn not called")
	}
}

func TestUoW_Defaults_Unimplemented(t *testing.T) {
	ctx := context.Background()
	m := &UoW{}
	if err := m.WithinTx(ctx, func(uow.Repos) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinTx default: want errUnimplemented, got %v", err)
	}
	if err := m.WithinRequisitionTx(ctx, 1, func(uow.Repos, *requisition.Requisition) error { return nil }); !errors.Is(err, errUnimplemented) {
		t.Fatalf("WithinRequisitionTx default: want errUnimplemented, got %v", err)
	}
}

func TestPassthrough_LocksThenCalls(t *testing.T) {
	ctx := context.Background()
	locked := &requisition.Requisition{ID: 7, CurrentApprovalStatus: requisition.StatusPendingL2}
	reqs := &requisitionmock.Repo{
		GetByIDForUpdateFn: func(_ context.Context, id uint64) (*requisition.Requisition, error) {
			if id != 7 {
				t.Fatalf("locked id = %d, want 7", id)
			}
			return locked, nil
		},
	}
	m := Passthrough(uow.Repos{Requisitions: reqs})

	called := false
	err := m.WithinRequisitionTx(ctx, 7, func(_ uow.Repos, req *requisition.Requisition) error {
		called = true
		if req != locked {
			t.Fatalf("locked row not forwarded")
		}
		return nil
	})
	if err != nil || !called {
		t.Fatalf("WithinRequisitionTx err=%v called=%v", err, called)
	}
}

func TestPassthrough_LockErrorSkipsCallback(t *testing.T) {
	reqs := &requisitionmock.Repo{
		GetByIDForUpdateFn: func(context.Context, uint64) (*requisition.Requisition, error) {
			return nil, requisition.ErrNotFound
		},
	}
	m := Passthrough(uow.Repos{Requisitions: reqs})
	err := m.WithinRequisitionTx(context.Background(), 1, func(uow.Repos, *requisition.Requisition) error {
		t.Fatalf("callback must not run")
		return nil
	})
	if !errors.Is(err, requisition.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestUoW_FluentSetters_And_Reset(t *testing.T) {
	m := New()
	m.WithWithinTx(func(context.Context, func(uow.Repos) error) error { return nil }).
		WithWithinRequisitionTx(func(context.Context, uint64, func(uow.Repos, *requisition.Requisition) error) error { return nil })

	if m.WithinTxFn == nil || m.WithinRequisitionTxFn == nil {
		t.Fatalf("fluent setters didn't assign funcs")
	}
	m.Reset()
	if m.WithinTxFn != nil || m.WithinRequisitionTxFn != nil {
		t.Fatalf("Reset should clear function fields")
	}
}
