package requisition

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPendingL2  Status = "Pending_L2_Approval"
	StatusL2Approved Status = "L2_Approved"
	StatusL2Declined Status = "L2_Declined"
	StatusL3Approved Status = "L3_Approved"
	StatusL3Declined Status = "L3_Declined"
)

var statuses = []Status{StatusPendingL2, StatusL2Approved, StatusL2Declined, StatusL3Approved, StatusL3Declined}

func (s Status) Valid() bool {
	for _, known := range statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	switch s {
	case StatusL2Declined, StatusL3Approved, StatusL3Declined:
		return true
	}
	return false
}

// DataType is one row of the "data types requested" table on the form.
type DataType struct {
	SlNo             int    `json:"slNo"`
	TypeOfData       string `json:"typeOfData"`
	SlNoRequired     string `json:"slNoRequired"`
	DataObserver     string `json:"dataObserver"`
	ProjectObjective string `json:"projectObjective"`
	Remarks          string `json:"remarks"`
}

// SlNoData is one row of the serial-number detail table on the form.
type SlNoData struct {
	SlNo        int    `json:"slNo"`
	Description string `json:"description"`
	MobileNo    string `json:"mobileNo"`
	Designation string `json:"designation"`
}

// Requisition is the storage row of a requisition form. Collections are kept
// as encoded text and decoded through DecodeDataTypes / DecodeSlNoData.
type Requisition struct {
	ID                uint64     `gorm:"primaryKey;column:id"`
	Subject           string     `gorm:"size:255;not null;column:subject"`
	DateOfRequisition *time.Time `gorm:"type:date;column:date_of_requisition"`
	ProjectDistrict   *string    `gorm:"size:255;column:project_district"`
	Sheet             *string    `gorm:"size:255;column:sheet"`
	Remark            *string    `gorm:"type:text;column:remark"`

	DataTypesJSON *datatypes.JSON `gorm:"type:text;column:data_types_json"`
	SlNoDataJSON  *datatypes.JSON `gorm:"type:text;column:sl_no_data_json"`

	PreparedBySignature         *string `gorm:"type:longtext;column:prepared_by_signature"`
	PreparedByDesignation       *string `gorm:"size:255;column:prepared_by_designation"`
	GroupCoordinatorSignature   *string `gorm:"type:longtext;column:group_coordinator_signature"`
	GroupCoordinatorDesignation *string `gorm:"size:255;column:group_coordinator_designation"`

	RequesterUserID       string `gorm:"size:64;not null;index:idx_requisition_forms_requester;column:requester_user_id"`
	CurrentApprovalStatus Status `gorm:"size:32;not null;index:idx_requisition_forms_status;column:current_approval_status"`

	L2ApproverID   *string    `gorm:"size:64;index:idx_requisition_forms_l2_approver;column:l2_approver_id"`
	L2ApprovalDate *time.Time `gorm:"column:l2_approval_date"`
	L2Comments     *string    `gorm:"type:text;column:l2_comments"`

	L3ApproverID   *string    `gorm:"size:64;index:idx_requisition_forms_l3_approver;column:l3_approver_id"`
	L3ApprovalDate *time.Time `gorm:"column:l3_approval_date"`
	L3Comments     *string    `gorm:"type:text;column:l3_comments"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at"`
}

func (Requisition) TableName() string { return "requisition_forms" }
