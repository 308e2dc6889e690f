package requisition

import (
	"fmt"
	"time"

	domain "seismic-catalog/internal/domain/requisition"
)

const dateLayout = "2006-01-02"

// Project maps a stored row to its wire shape.
func Project(r *domain.Requisition) (*RequisitionDTO, error) {
	if !r.CurrentApprovalStatus.Valid() {
		return nil, fmt.Errorf("requisition %d: unknown status %q", r.ID, r.CurrentApprovalStatus)
	}
	dataTypes, err := domain.DecodeDataTypes(r.DataTypesJSON)
	if err != nil {
		return nil, err
	}
	slNoData, err := domain.DecodeSlNoData(r.SlNoDataJSON)
	if err != nil {
		return nil, err
	}
	return &RequisitionDTO{
		ID:                          r.ID,
		Subject:                     r.Subject,
		DateOfRequisition:           formatTime(r.DateOfRequisition, dateLayout),
		ProjectDistrict:             r.ProjectDistrict,
		Sheet:                       r.Sheet,
		Remark:                      r.Remark,
		DataTypes:                   dataTypes,
		SlNoData:                    slNoData,
		PreparedBySignature:         r.PreparedBySignature,
		PreparedByDesignation:       r.PreparedByDesignation,
		GroupCoordinatorSignature:   r.GroupCoordinatorSignature,
		GroupCoordinatorDesignation: r.GroupCoordinatorDesignation,
		RequesterUserID:             r.RequesterUserID,
		CurrentApprovalStatus:       r.CurrentApprovalStatus,
		L2ApproverID:                r.L2ApproverID,
		L2ApprovalDate:              formatTime(r.L2ApprovalDate, time.RFC3339),
		L2Comments:                  r.L2Comments,
		L3ApproverID:                r.L3ApproverID,
		L3ApprovalDate:              formatTime(r.L3ApprovalDate, time.RFC3339),
		L3Comments:                  r.L3Comments,
		CreatedAt:                   r.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// toRow maps a validated form to a fresh row in the initial state.
func toRow(in CreateInput, requesterID string) (*domain.Requisition, error) {
	dataTypes := make([]domain.DataType, 0, len(in.DataTypes))
	for _, d := range in.DataTypes {
		dataTypes = append(dataTypes, domain.DataType{
			SlNo:             *d.SlNo,
			TypeOfData:       *d.TypeOfData,
			SlNoRequired:     *d.SlNoRequired,
			DataObserver:     *d.DataObserver,
			ProjectObjective: *d.ProjectObjective,
			Remarks:          *d.Remarks,
		})
	}
	slNoData := make([]domain.SlNoData, 0, len(in.SlNoData))
	for _, s := range in.SlNoData {
		slNoData = append(slNoData, domain.SlNoData{
			SlNo:        *s.SlNo,
			Description: *s.Description,
			MobileNo:    *s.MobileNo,
			Designation: *s.Designation,
		})
	}
	dtJSON, err := domain.EncodeDataTypes(dataTypes)
	if err != nil {
		return nil, err
	}
	slJSON, err := domain.EncodeSlNoData(slNoData)
	if err != nil {
		return nil, err
	}

	var date *time.Time
	if in.DateOfRequisition != nil {
		d, err := time.Parse(dateLayout, *in.DateOfRequisition)
		if err != nil {
			return nil, &domain.ValidationError{Field: "dateOfRequisition", Reason: "must be a date in YYYY-MM-DD format"}
		}
		date = &d
	}

	return &domain.Requisition{
		Subject:                     in.Subject,
		DateOfRequisition:           date,
		ProjectDistrict:             in.ProjectDistrict,
		Sheet:                       in.Sheet,
		Remark:                      in.Remark,
		DataTypesJSON:               dtJSON,
		SlNoDataJSON:                slJSON,
		PreparedBySignature:         in.PreparedBySignature,
		PreparedByDesignation:       in.PreparedByDesignation,
		GroupCoordinatorSignature:   in.GroupCoordinatorSignature,
		GroupCoordinatorDesignation: in.GroupCoordinatorDesignation,
		RequesterUserID:             requesterID,
		CurrentApprovalStatus:       domain.StatusPendingL2,
	}, nil
}

func formatTime(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(layout)
	return &s
}
