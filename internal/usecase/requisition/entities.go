package requisition

import (
	"seismic-catalog/internal/auth"
	domain "seismic-catalog/internal/domain/requisition"
)

// CreateInput is the submitted requisition form. Pointer fields distinguish
// an absent key from an empty value.
type CreateInput struct {
	Subject                     string          `json:"subject"                     validate:"required"`
	DateOfRequisition           *string         `json:"dateOfRequisition"           validate:"omitempty,datetime=2006-01-02"`
	ProjectDistrict             *string         `json:"projectDistrict"`
	Sheet                       *string         `json:"sheet"`
	Remark                      *string         `json:"remark"`
	DataTypes                   []DataTypeInput `json:"dataTypes"                   validate:"required,dive"`
	SlNoData                    []SlNoDataInput `json:"slNoData"                    validate:"required,dive"`
	PreparedBySignature         *string         `json:"preparedBySignature"`
	PreparedByDesignation       *string         `json:"preparedByDesignation"`
	GroupCoordinatorSignature   *string         `json:"groupCoordinatorSignature"`
	GroupCoordinatorDesignation *string         `json:"groupCoordinatorDesignation"`
}

type DataTypeInput struct {
	SlNo             *int    `json:"slNo"             validate:"required"`
	TypeOfData       *string `json:"typeOfData"       validate:"required"`
	SlNoRequired     *string `json:"slNoRequired"     validate:"required"`
	DataObserver     *string `json:"dataObserver"     validate:"required"`
	ProjectObjective *string `json:"projectObjective" validate:"required"`
	Remarks          *string `json:"remarks"          validate:"required"`
}

type SlNoDataInput struct {
	SlNo        *int    `json:"slNo"        validate:"required"`
	Description *string `json:"description" validate:"required"`
	MobileNo    *string `json:"mobileNo"    validate:"required"`
	Designation *string `json:"designation" validate:"required"`
}

type DecideInput struct {
	ID       uint64
	Action   domain.Action
	Actor    auth.Principal
	Comments *string
}

// RequisitionDTO is the wire shape of a requisition. Absent values are
// serialized as null, never omitted.
type RequisitionDTO struct {
	ID                          uint64            `json:"id"`
	Subject                     string            `json:"subject"`
	DateOfRequisition           *string           `json:"dateOfRequisition"`
	ProjectDistrict             *string           `json:"projectDistrict"`
	Sheet                       *string           `json:"sheet"`
	Remark                      *string           `json:"remark"`
	DataTypes                   []domain.DataType `json:"dataTypes"`
	SlNoData                    []domain.SlNoData `json:"slNoData"`
	PreparedBySignature         *string           `json:"preparedBySignature"`
	PreparedByDesignation       *string           `json:"preparedByDesignation"`
	GroupCoordinatorSignature   *string           `json:"groupCoordinatorSignature"`
	GroupCoordinatorDesignation *string           `json:"groupCoordinatorDesignation"`
	RequesterUserID             string            `json:"requesterUserId"`
	CurrentApprovalStatus       domain.Status     `json:"currentApprovalStatus"`
	L2ApproverID                *string           `json:"l2ApproverId"`
	L2ApprovalDate              *string           `json:"l2ApprovalDate"`
	L2Comments                  *string           `json:"l2Comments"`
	L3ApproverID                *string           `json:"l3ApproverId"`
	L3ApprovalDate              *string           `json:"l3ApprovalDate"`
	L3Comments                  *string           `json:"l3Comments"`
	CreatedAt                   string            `json:"createdAt"`
}
