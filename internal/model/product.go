package model

// Product is an item offered for sale.
type Product struct {
	ID    int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string  `json:"name" gorm:"not null;index"`
	Price float64 `json:"price" gorm:"not null"`
}

// TableName specifies the table name.
func (Product) TableName() string { return "products" }

// ProductCreate is the payload accepted when creating a product.
type ProductCreate struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"price" validate:"required"`
}

// Build returns the record to insert.
func (in ProductCreate) Build() *Product {
	p := &Product{Name: in.Name}
	if in.Price != nil {
		p.Price = *in.Price
	}
	return p
}

// ProductUpdate carries the fields of a product to overwrite.
type ProductUpdate struct {
	Name  *string  `json:"name" validate:"omitempty,min=1"`
	Price *float64 `json:"price"`
}

// ApplyTo merges the present fields into p.
func (in ProductUpdate) ApplyTo(p *Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
}

// ProductArrival records a delivery of some quantity of a product.
type ProductArrival struct {
	ID          int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID   int64 `json:"product_id" gorm:"not null;index"`
	ArrivalDate Date  `json:"arrival_date" gorm:"not null;index"`
	Quantity    int   `json:"quantity" gorm:"not null;check:chk_product_arrivals_quantity,quantity >= 0"`

	Product *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name.
func (ProductArrival) TableName() string { return "product_arrivals" }

// ProductArrivalCreate is the payload accepted when recording an arrival.
type ProductArrivalCreate struct {
	ProductID   int64 `json:"product_id" validate:"required,gt=0"`
	ArrivalDate Date  `json:"arrival_date" validate:"required"`
	Quantity    *int  `json:"quantity" validate:"required,min=0"`
}

// Build returns the record to insert.
func (in ProductArrivalCreate) Build() *ProductArrival {
	pa := &ProductArrival{ProductID: in.ProductID, ArrivalDate: in.ArrivalDate}
	if in.Quantity != nil {
		pa.Quantity = *in.Quantity
	}
	return pa
}

// ProductArrivalUpdate carries the fields of an arrival to overwrite.
type ProductArrivalUpdate struct {
	ProductID   *int64 `json:"product_id" validate:"omitempty,gt=0"`
	ArrivalDate *Date  `json:"arrival_date" validate:"omitempty"`
	Quantity    *int   `json:"quantity" validate:"omitempty,min=0"`
}

// ApplyTo merges the present fields into pa.
func (in ProductArrivalUpdate) ApplyTo(pa *ProductArrival) {
	if in.ProductID != nil {
		pa.ProductID = *in.ProductID
	}
	if in.ArrivalDate != nil && !in.ArrivalDate.IsZero() {
		pa.ArrivalDate = *in.ArrivalDate
	}
	if in.Quantity != nil {
		pa.Quantity = *in.Quantity
	}
}
