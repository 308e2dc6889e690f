package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"seismic-catalog/internal/domain/requisition"
	"seismic-catalog/internal/domain/user"
)

// openTestDB creates an in-memory sqlite DB. A single connection keeps every
// query on the same in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&requisition.Requisition{}, &user.User{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func makeRequisition(t *testing.T, subject, requester string) *requisition.Requisition {
	t.Helper()
	dts, err := requisition.EncodeDataTypes([]requisition.DataType{
		{SlNo: 1, TypeOfData: "2D", SlNoRequired: "Y", DataObserver: "A.Singh", ProjectObjective: "Exploration"},
	})
	if err != nil {
		t.Fatalf("encode data types: %v", err)
	}
	sl, err := requisition.EncodeSlNoData([]requisition.SlNoData{
		{SlNo: 1, Description: "Line 12", MobileNo: "9999999999", Designation: "Geologist"},
	})
	if err != nil {
		t.Fatalf("encode sl no data: %v", err)
	}
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return &requisition.Requisition{
		Subject:               subject,
		DateOfRequisition:     &day,
		ProjectDistrict:       strPtr("Jorhat"),
		DataTypesJSON:         dts,
		SlNoDataJSON:          sl,
		RequesterUserID:       requester,
		CurrentApprovalStatus: requisition.StatusPendingL2,
	}
}
