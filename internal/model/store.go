package model

// Store is a physical shop location.
type Store struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" gorm:"not null;index"`
	Location string `json:"location" gorm:"not null"`
}

// TableName specifies the table name.
func (Store) TableName() string { return "stores" }

// StoreCreate is the payload accepted when creating a store.
type StoreCreate struct {
	Name     string `json:"name" validate:"required"`
	Location string `json:"location" validate:"required"`
}

// Build returns the record to insert.
func (in StoreCreate) Build() *Store {
	return &Store{Name: in.Name, Location: in.Location}
}

// StoreUpdate carries the fields of a store to overwrite; nil means keep.
type StoreUpdate struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Location *string `json:"location" validate:"omitempty,min=1"`
}

// ApplyTo merges the present fields into s.
func (in StoreUpdate) ApplyTo(s *Store) {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Location != nil {
		s.Location = *in.Location
	}
}

// StoreInspection is the outcome of inspecting a store on a given day.
type StoreInspection struct {
	ID             int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	StoreID        int64  `json:"store_id" gorm:"not null;index"`
	InspectionDate Date   `json:"inspection_date" gorm:"not null;index"`
	Result         string `json:"result" gorm:"not null"`

	Store *Store `json:"-" gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name.
func (StoreInspection) TableName() string { return "store_inspections" }

// StoreInspectionCreate is the payload accepted when recording an inspection.
type StoreInspectionCreate struct {
	StoreID        int64  `json:"store_id" validate:"required,gt=0"`
	InspectionDate Date   `json:"inspection_date" validate:"required"`
	Result         string `json:"result" validate:"required"`
}

// Build returns the record to insert.
func (in StoreInspectionCreate) Build() *StoreInspection {
	return &StoreInspection{StoreID: in.StoreID, InspectionDate: in.InspectionDate, Result: in.Result}
}

// StoreInspectionUpdate carries the fields of an inspection to overwrite.
type StoreInspectionUpdate struct {
	StoreID        *int64  `json:"store_id" validate:"omitempty,gt=0"`
	InspectionDate *Date   `json:"inspection_date" validate:"omitempty"`
	Result         *string `json:"result" validate:"omitempty,min=1"`
}

// ApplyTo merges the present fields into si.
func (in StoreInspectionUpdate) ApplyTo(si *StoreInspection) {
	if in.StoreID != nil {
		si.StoreID = *in.StoreID
	}
	if in.InspectionDate != nil && !in.InspectionDate.IsZero() {
		si.InspectionDate = *in.InspectionDate
	}
	if in.Result != nil {
		si.Result = *in.Result
	}
}
