package model

// Customer is a registered buyer. Email is unique across customers.
type Customer struct {
	ID    int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" gorm:"not null;index"`
	Email string `json:"email" gorm:"not null;uniqueIndex:idx_customers_email"`
}

// TableName specifies the table name.
func (Customer) TableName() string { return "customers" }

// CustomerCreate is the payload accepted when registering a customer.
type CustomerCreate struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// Build returns the record to insert.
func (in CustomerCreate) Build() *Customer {
	return &Customer{Name: in.Name, Email: in.Email}
}

// CustomerUpdate carries the fields of a customer to overwrite.
type CustomerUpdate struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
}

// ApplyTo merges the present fields into c.
func (in CustomerUpdate) ApplyTo(c *Customer) {
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Email != nil {
		c.Email = *in.Email
	}
}

// Purchase is a customer buying a quantity of a product on a given day.
type Purchase struct {
	ID           int64 `json:"id" gorm:"primaryKey;autoIncrement"`
	CustomerID   int64 `json:"customer_id" gorm:"not null;index"`
	ProductID    int64 `json:"product_id" gorm:"not null;index"`
	PurchaseDate Date  `json:"purchase_date" gorm:"not null;index"`
	Quantity     int   `json:"quantity" gorm:"not null;check:chk_purchases_quantity,quantity >= 0"`

	Customer *Customer `json:"-" gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Product  *Product  `json:"-" gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName specifies the table name.
func (Purchase) TableName() string { return "purchases" }

// PurchaseCreate is the payload accepted when recording a purchase.
type PurchaseCreate struct {
	CustomerID   int64 `json:"customer_id" validate:"required,gt=0"`
	ProductID    int64 `json:"product_id" validate:"required,gt=0"`
	PurchaseDate Date  `json:"purchase_date" validate:"required"`
	Quantity     *int  `json:"quantity" validate:"required,min=0"`
}

// Build returns the record to insert.
func (in PurchaseCreate) Build() *Purchase {
	p := &Purchase{CustomerID: in.CustomerID, ProductID: in.ProductID, PurchaseDate: in.PurchaseDate}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	return p
}

// PurchaseUpdate carries the fields of a purchase to overwrite.
type PurchaseUpdate struct {
	CustomerID   *int64 `json:"customer_id" validate:"omitempty,gt=0"`
	ProductID    *int64 `json:"product_id" validate:"omitempty,gt=0"`
	PurchaseDate *Date  `json:"purchase_date" validate:"omitempty"`
	Quantity     *int   `json:"quantity" validate:"omitempty,min=0"`
}

// ApplyTo merges the present fields into p.
func (in PurchaseUpdate) ApplyTo(p *Purchase) {
	if in.CustomerID != nil {
		p.CustomerID = *in.CustomerID
	}
	if in.ProductID != nil {
		p.ProductID = *in.ProductID
	}
	if in.PurchaseDate != nil && !in.PurchaseDate.IsZero() {
		p.PurchaseDate = *in.PurchaseDate
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
}
