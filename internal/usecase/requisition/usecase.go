package requisition

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"seismic-catalog/internal/auth"
	domain "seismic-catalog/internal/domain/requisition"
	"seismic-catalog/internal/domain/uow"
	"seismic-catalog/internal/domain/user"
)

// Authorizer decides whether a role may take a workflow action.
type Authorizer interface {
	Allowed(ctx context.Context, role user.Role, action domain.Action) (bool, error)
}

// UnknownRolePolicy selects what list returns for a role outside the known set.
type UnknownRolePolicy string

const (
	// UnknownRoleRestrict shows only fully approved requisitions.
	UnknownRoleRestrict UnknownRolePolicy = "restrict"
	// UnknownRoleDeny fails the listing with ErrUnauthorized.
	UnknownRoleDeny UnknownRolePolicy = "deny"
)

const defaultTxTimeout = 10 * time.Second

type Usecase struct {
	repo        domain.Repository
	uow         uow.UnitOfWork
	authz       Authorizer
	validate    *validator.Validate
	now         func() time.Time
	txTimeout   time.Duration
	unknownRole UnknownRolePolicy
	logger      *logrus.Entry
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func WithTxTimeout(d time.Duration) Option { return func(u *Usecase) { u.txTimeout = d } }

func WithUnknownRolePolicy(p UnknownRolePolicy) Option {
	return func(u *Usecase) { u.unknownRole = p }
}

func WithLogger(l *logrus.Logger) Option {
	return func(u *Usecase) { u.logger = l.WithField("component", "requisition") }
}

// NewUsecase: repo serves reads, tx serves every mutation.
func NewUsecase(repo domain.Repository, tx uow.UnitOfWork, authz Authorizer, opts ...Option) *Usecase {
	u := &Usecase{
		repo:        repo,
		uow:         tx,
		authz:       authz,
		validate:    newValidator(),
		now:         time.Now,
		txTimeout:   defaultTxTimeout,
		unknownRole: UnknownRoleRestrict,
		logger:      logrus.WithField("component", "requisition"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// List returns every requisition the caller may see, newest first.
func (u *Usecase) List(ctx context.Context, caller auth.Principal) ([]RequisitionDTO, error) {
	if !caller.Role.Valid() && u.unknownRole == UnknownRoleDeny {
		return nil, domain.ErrUnauthorized
	}
	rows, err := u.repo.List(ctx, domain.VisibilityFor(caller.Role, caller.ID))
	if err != nil {
		return nil, u.storageError(ctx, "list", err)
	}
	out := make([]RequisitionDTO, 0, len(rows))
	for i := range rows {
		dto, err := Project(&rows[i])
		if err != nil {
			return nil, u.storageError(ctx, "list", err)
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*RequisitionDTO, error) {
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, u.storageError(ctx, "get", err)
	}
	dto, err := Project(r)
	if err != nil {
		return nil, u.storageError(ctx, "get", err)
	}
	return dto, nil
}

// Create submits a new requisition on behalf of requesterID.
func (u *Usecase) Create(ctx context.Context, in CreateInput, requesterID string) (*RequisitionDTO, error) {
	if err := validateCreate(u.validate, &in); err != nil {
		return nil, err
	}
	row, err := toRow(in, requesterID)
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return nil, err
		}
		return nil, u.storageError(ctx, "create", err)
	}

	ctx, cancel := context.WithTimeout(ctx, u.txTimeout)
	defer cancel()

	var created *domain.Requisition
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Requisitions.Create(ctx, row); err != nil {
			return err
		}
		fresh, err := r.Requisitions.GetByID(ctx, row.ID)
		if err != nil {
			return err
		}
		created = fresh
		return nil
	})
	if err != nil {
		return nil, u.storageError(ctx, "create", err)
	}
	requisitionsCreated.Inc()
	u.logger.WithContext(ctx).WithFields(logrus.Fields{
		"requisition_id": created.ID,
		"requester":      requesterID,
	}).Info("requisition submitted")

	dto, err := Project(created)
	if err != nil {
		return nil, u.storageError(ctx, "create", err)
	}
	return dto, nil
}

// Decide applies an approver's verdict. Guards run in order: existence,
// role, then state precondition, all under the row lock.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (dto *RequisitionDTO, err error) {
	defer func() { recordDecision(in.Action, err) }()

	ctx, cancel := context.WithTimeout(ctx, u.txTimeout)
	defer cancel()

	var updated *domain.Requisition
	err = u.uow.WithinRequisitionTx(ctx, in.ID, func(r uow.Repos, req *domain.Requisition) error {
		ok, err := u.authz.Allowed(ctx, in.Actor.Role, in.Action)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUnauthorized
		}

		from := req.CurrentApprovalStatus
		decision := domain.Decision{
			Action:     in.Action,
			ApproverID: in.Actor.ID,
			Comments:   in.Comments,
			At:         u.now(),
		}
		if err := domain.Apply(req, decision); err != nil {
			return err
		}
		if err := r.Requisitions.UpdateDecision(ctx, req, from); err != nil {
			if !errors.Is(err, domain.ErrStaleStatus) {
				return err
			}
			// lost a race the lock did not prevent; report what won
			cur, getErr := r.Requisitions.GetByID(ctx, in.ID)
			if getErr != nil {
				return getErr
			}
			return &domain.TransitionError{Action: in.Action, Current: cur.CurrentApprovalStatus}
		}
		updated = req
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrUnauthorized),
			errors.Is(err, domain.ErrInvalidTransition):
			return nil, err
		}
		return nil, u.storageError(ctx, "decide", err)
	}

	u.logger.WithContext(ctx).WithFields(logrus.Fields{
		"requisition_id": updated.ID,
		"action":         in.Action,
		"approver":       in.Actor.ID,
		"status":         updated.CurrentApprovalStatus,
		"final":          updated.CurrentApprovalStatus.Terminal(),
	}).Info("requisition decided")

	dto, err = Project(updated)
	if err != nil {
		return nil, u.storageError(ctx, "decide", err)
	}
	return dto, nil
}

func (u *Usecase) storageError(ctx context.Context, op string, err error) error {
	u.logger.WithContext(ctx).WithError(err).WithField("op", op).Error("requisition storage failure")
	return &domain.StorageError{Op: op, Err: err}
}
