package models

// All returns every model for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&OwnerModel{},
		&CleaningTeamModel{},
		&PropertyModel{},
		&ReservationModel{},
		&CleaningScheduleModel{},
		&FinancialDocumentModel{},
		&DocumentItemModel{},
		&PaymentRecordModel{},
		&QuotationModel{},
	}
}
