package models

type ProductType string

const (
	ProductTypeRawMaterial     ProductType = "RAW_MATERIAL"
	ProductTypeSemiFinished    ProductType = "SEMI_FINISHED"
	ProductTypeFinishedProduct ProductType = "FINISHED_PRODUCT"
)

type Product struct {
	ID            int         `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	ProductName   string      `gorm:"not null"                                   json:"product_name"`
	ProductType   ProductType `gorm:"type:varchar(32);not null"                  json:"product_type"`
	Unit          string      `gorm:"not null"                                   json:"unit"`
	ShelfLifeDays *int        `json:"shelf_life_days,omitempty"`
}

type Recipe struct {
	ID            int            `gorm:"column:recipe_id;primaryKey;autoIncrement" json:"recipe_id"`
	RecipeName    string         `gorm:"not null"                                  json:"recipe_name"`
	YieldQuantity *float64       `json:"yield_quantity,omitempty"`
	Description   string         `json:"description"`
	ProductID     int            `gorm:"not null;index"                            json:"product_id"`
	Product       *Product       `gorm:"foreignKey:ProductID"                      json:"-"`
	RecipeDetails []RecipeDetail `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"recipe_details,omitempty"`
}

// RecipeDetail is one raw-material line of a recipe.
type RecipeDetail struct {
	ID            int      `gorm:"column:recipe_detail_id;primaryKey;autoIncrement" json:"recipe_detail_id"`
	RecipeID      int      `gorm:"not null;index"                                   json:"recipe_id"`
	RawMaterialID int      `gorm:"not null"                                         json:"raw_material_id"`
	RawMaterial   *Product `gorm:"foreignKey:RawMaterialID"                         json:"-"`
	Quantity      float64  `gorm:"not null"                                         json:"quantity"`
}
