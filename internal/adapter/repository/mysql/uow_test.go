package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"seismic-catalog/internal/domain/requisition"
	"seismic-catalog/internal/domain/uow"
	"seismic-catalog/internal/domain/user"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	reqRepo := NewRequisitionRepository(db)
	userRepo := NewUserRepository(db)

	var id uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Users.Create(ctx, &user.User{Name: "U", CPFNo: "C-COMMIT", PasswordHash: "h", UserType: user.RoleDataEntry}); err != nil {
			return err
		}
		req := makeRequisition(t, "commit", "C-COMMIT")
		if err := r.Requisitions.Create(ctx, req); err != nil {
			return err
		}
		id = req.ID
		return nil
	})
	if err != nil {
		t.Fatalf("WithinTx commit err: %v", err)
	}

	if _, err := reqRepo.GetByID(ctx, id); err != nil {
		t.Fatalf("requisition not visible after commit: %v", err)
	}
	if _, err := userRepo.GetByCPFNo(ctx, "C-COMMIT"); err != nil {
		t.Fatalf("user not visible after commit: %v", err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	reqRepo := NewRequisitionRepository(db)
	userRepo := NewUserRepository(db)
	sentinel := errors.New("boom")

	var id uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Users.Create(ctx, &user.User{Name: "U", CPFNo: "C-ROLL", PasswordHash: "h", UserType: user.RoleDataEntry}); err != nil {
			return err
		}
		req := makeRequisition(t, "rollback", "C-ROLL")
		if err := r.Requisitions.Create(ctx, req); err != nil {
			return err
		}
		id = req.ID
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}

	if _, err := reqRepo.GetByID(ctx, id); !errors.Is(err, requisition.ErrNotFound) {
		t.Fatalf("expected requisition absent after rollback, got %v", err)
	}
	if _, err := userRepo.GetByCPFNo(ctx, "C-ROLL"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user absent after rollback, got %v", err)
	}
}

func TestGormUoW_WithinRequisitionTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewRequisitionRepository(db)

	seed := makeRequisition(t, "target", "U1")
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	err := guow.WithinRequisitionTx(ctx, seed.ID, func(r uow.Repos, req *requisition.Requisition) error {
		if req == nil || req.ID != seed.ID || req.CurrentApprovalStatus != requisition.StatusPendingL2 {
			t.Fatalf("unexpected requisition passed to fn: %+v", req)
		}
		if err := requisition.Apply(req, requisition.Decision{Action: requisition.ActionDeclineL2, ApproverID: "L2A", At: time.Now()}); err != nil {
			return err
		}
		return r.Requisitions.UpdateDecision(ctx, req, requisition.StatusPendingL2)
	})
	if err != nil {
		t.Fatalf("WithinRequisitionTx commit err: %v", err)
	}

	got, err := repo.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("GetByID post-commit: %v", err)
	}
	if got.CurrentApprovalStatus != requisition.StatusL2Declined {
		t.Fatalf("status not updated, got=%s", got.CurrentApprovalStatus)
	}
}

func TestGormUoW_WithinRequisitionTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	repo := NewRequisitionRepository(db)

	seed := makeRequisition(t, "rb", "U1")
	if err := repo.Create(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}
	sentinel := errors.New("stop")

	_ = guow.WithinRequisitionTx(ctx, seed.ID, func(r uow.Repos, req *requisition.Requisition) error {
		if err := requisition.Apply(req, requisition.Decision{Action: requisition.ActionApproveL2, ApproverID: "L2A", At: time.Now()}); err != nil {
			return err
		}
		if err := r.Requisitions.UpdateDecision(ctx, req, requisition.StatusPendingL2); err != nil {
			return err
		}
		return sentinel
	})

	got, err := repo.GetByID(ctx, seed.ID)
	if err != nil {
		t.Fatalf("post-rollback GetByID: %v", err)
	}
	if got.CurrentApprovalStatus != requisition.StatusPendingL2 || got.L2ApproverID != nil {
		t.Fatalf("expected untouched row after rollback, got %+v", got)
	}
}

func TestGormUoW_WithinRequisitionTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	guow := NewGormUoW(db)

	err := guow.WithinRequisitionTx(context.Background(), 999, func(uow.Repos, *requisition.Requisition) error {
		t.Fatalf("callback should not be called when requisition missing")
		return nil
	})
	if !errors.Is(err, requisition.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
