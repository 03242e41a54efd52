package models

type Role struct {
	ID       int    `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	RoleName string `gorm:"unique;not null"                         json:"role_name"`
}

type Store struct {
	ID        int    `gorm:"column:store_id;primaryKey;autoIncrement" json:"store_id"`
	StoreName string `gorm:"not null"                                 json:"store_name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

// User is a kitchen or store account. A store-bound user is linked to exactly one store.
type User struct {
	ID       int    `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username string `gorm:"unique;not null"                         json:"username"`
	Password string `gorm:"not null"                                json:"-"`
	FullName string `json:"full_name"`
	RoleID   int    `gorm:"not null;index"                          json:"role_id"`
	Role     *Role  `gorm:"foreignKey:RoleID"                       json:"-"`
	StoreID  *int   `gorm:"uniqueIndex"                             json:"store_id,omitempty"`
	Store    *Store `gorm:"foreignKey:StoreID"                      json:"-"`
}
