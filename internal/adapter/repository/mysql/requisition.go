package mysql

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "seismic-catalog/internal/domain/requisition"
)

type RequisitionRepository struct{ db *gorm.DB }

func NewRequisitionRepository(db *gorm.DB) *RequisitionRepository {
	return &RequisitionRepository{db: db}
}

func (r *RequisitionRepository) Create(ctx context.Context, req *domain.Requisition) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(req).Error, "insert requisition")
}

func (r *RequisitionRepository) GetByID(ctx context.Context, id uint64) (*domain.Requisition, error) {
	var out domain.Requisition
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err, "get requisition")
	}
	return &out, nil
}

func (r *RequisitionRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Requisition, error) {
	var out domain.Requisition
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out).Error
	if err != nil {
		return nil, translate(err, "lock requisition")
	}
	return &out, nil
}

func (r *RequisitionRepository) List(ctx context.Context, v domain.Visibility) ([]domain.Requisition, error) {
	out := []domain.Requisition{}
	q := r.db.WithContext(ctx).Model(&domain.Requisition{})
	if !v.All {
		where, args := visibilityClause(v)
		q = q.Where(where, args...)
	}
	if err := q.Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, errors.Wrap(err, "list requisitions")
	}
	return out, nil
}

// UpdateDecision is a compare-and-swap on current_approval_status.
func (r *RequisitionRepository) UpdateDecision(ctx context.Context, req *domain.Requisition, expected domain.Status) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Requisition{}).
		Where("id = ? AND current_approval_status = ?", req.ID, expected).
		Updates(map[string]any{
			"current_approval_status": req.CurrentApprovalStatus,
			"l2_approver_id":          req.L2ApproverID,
			"l2_approval_date":        req.L2ApprovalDate,
			"l2_comments":             req.L2Comments,
			"l3_approver_id":          req.L3ApproverID,
			"l3_approval_date":        req.L3ApprovalDate,
			"l3_comments":             req.L3Comments,
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "update requisition decision")
	}
	if res.RowsAffected == 0 {
		return domain.ErrStaleStatus
	}
	return nil
}

// visibilityClause ORs the predicates of v into one WHERE fragment.
func visibilityClause(v domain.Visibility) (string, []any) {
	if v.Empty() {
		return "1 = 0", nil
	}
	var (
		conds []string
		args  []any
	)
	if v.RequesterID != "" {
		conds = append(conds, "requester_user_id = ?")
		args = append(args, v.RequesterID)
	}
	if v.Status != "" {
		conds = append(conds, "current_approval_status = ?")
		args = append(args, v.Status)
	}
	if v.L2ApproverID != "" {
		conds = append(conds, "l2_approver_id = ?")
		args = append(args, v.L2ApproverID)
	}
	if v.L3ApproverID != "" {
		conds = append(conds, "l3_approver_id = ?")
		args = append(args, v.L3ApproverID)
	}
	return "(" + strings.Join(conds, " OR ") + ")", args
}

func translate(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return errors.Wrap(err, op)
}
