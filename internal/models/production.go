package models

import "time"

type LogStatus string

const (
	LogStatusProcessing LogStatus = "PROCESSING"
	LogStatusDone       LogStatus = "DONE"
	LogStatusExpired    LogStatus = "EXPIRED"
	LogStatusDamaged    LogStatus = "DAMAGED"
)

type LogType string

const (
	LogTypeProduction LogType = "PRODUCTION"
	LogTypePurchase   LogType = "PURCHASE"
)

type TransactionType string

const (
	TransactionTypeImport TransactionType = "IMPORT"
	TransactionTypeExport TransactionType = "EXPORT"
)

type ProductionPlan struct {
	ID          int        `gorm:"column:plan_id;primaryKey;autoIncrement" json:"plan_id"`
	KitchenID   *int       `json:"kitchen_id,omitempty"`
	CreatedByID int        `gorm:"column:created_by;not null;index"        json:"created_by"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID"                  json:"-"`
	PlanDate    *time.Time `gorm:"type:date"                               json:"plan_date,omitempty"`
	StartDate   *time.Time `gorm:"type:date"                               json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"type:date"                               json:"end_date,omitempty"`
	Status      string     `json:"status"`
	Note        string     `json:"note"`
}

// LogBatch records one produced or purchased batch of a product.
type LogBatch struct {
	ID             int             `gorm:"column:batch_id;primaryKey;autoIncrement" json:"batch_id"`
	PlanID         *int            `gorm:"index"                                    json:"plan_id,omitempty"`
	Plan           *ProductionPlan `gorm:"foreignKey:PlanID"                        json:"-"`
	ProductID      int             `gorm:"not null;index"                           json:"product_id"`
	Product        *Product        `gorm:"foreignKey:ProductID"                     json:"-"`
	Quantity       *float64        `json:"quantity,omitempty"`
	ProductionDate *time.Time      `gorm:"type:date"                                json:"production_date,omitempty"`
	ExpiryDate     *time.Time      `gorm:"type:date"                                json:"expiry_date,omitempty"`
	Status         LogStatus       `gorm:"type:varchar(20)"                         json:"status"`
	Type           LogType         `gorm:"type:varchar(20)"                         json:"type"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Inventory struct {
	ID         int        `gorm:"column:inventory_id;primaryKey;autoIncrement" json:"inventory_id"`
	ProductID  int        `gorm:"not null;index"                               json:"product_id"`
	Product    *Product   `gorm:"foreignKey:ProductID"                         json:"-"`
	BatchID    int        `gorm:"not null;uniqueIndex"                         json:"batch_id"`
	Batch      *LogBatch  `gorm:"foreignKey:BatchID"                           json:"-"`
	Quantity   *float64   `json:"quantity,omitempty"`
	ExpiryDate *time.Time `gorm:"type:date"                                    json:"expiry_date,omitempty"`
}

type InventoryTransaction struct {
	ID          int             `gorm:"column:transaction_id;primaryKey;autoIncrement" json:"transaction_id"`
	ProductID   int             `gorm:"not null;index"                                 json:"product_id"`
	Product     *Product        `gorm:"foreignKey:ProductID"                           json:"-"`
	CreatedByID int             `gorm:"column:created_by;not null"                     json:"created_by"`
	CreatedBy   *User           `gorm:"foreignKey:CreatedByID"                         json:"-"`
	BatchID     *int            `gorm:"index"                                          json:"batch_id,omitempty"`
	Batch       *LogBatch       `gorm:"foreignKey:BatchID"                             json:"-"`
	Type        TransactionType `gorm:"type:varchar(20)"                               json:"type"`
	Quantity    *float64        `json:"quantity,omitempty"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"created_at"`
}
