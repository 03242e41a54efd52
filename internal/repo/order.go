package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/Skotchmaster/kitchen_control/internal/models"
)

type GormRepo struct {
	DB *gorm.DB
}

func NewGormRepo(db *gorm.DB) *GormRepo {
	return &GormRepo{DB: db}
}

func orderedDetails(db *gorm.DB) *gorm.DB {
	return db.Order("order_detail_id ASC")
}

// Insert writes the order and all of its details in one transaction and
// fills in the generated identifiers. On failure the identifiers are cleared
// again so the struct matches the rolled back database.
func (r *GormRepo) Insert(ctx context.Context, order *models.Order) error {
	details := order.OrderDetails
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order.OrderDetails = nil
		if err := tx.Omit("Delivery", "Plan").Create(order).Error; err != nil {
			return err
		}

		for i := range details {
			details[i].OrderID = order.ID
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}
		return nil
	})
	order.OrderDetails = details
	if err != nil {
		order.ID = 0
		for i := range details {
			details[i].ID = 0
			details[i].OrderID = 0
		}
		return err
	}
	return nil
}

func (r *GormRepo) FindByID(ctx context.Context, id int) (*models.Order, error) {
	var order models.Order
	if err := r.DB.WithContext(ctx).
		Preload("OrderDetails", orderedDetails).
		Where("order_id = ?", id).
		First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindAll returns every order in ascending id order, which is insertion order.
func (r *GormRepo) FindAll(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.DB.WithContext(ctx).
		Preload("OrderDetails", orderedDetails).
		Order("order_id ASC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// DeleteByID removes the order and its details in one transaction.
// It reports whether an order row was actually removed.
func (r *GormRepo) DeleteByID(ctx context.Context, id int) (bool, error) {
	deleted := false

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderDetail{}).Error; err != nil {
			return err
		}

		res := tx.Where("order_id = ?", id).Delete(&models.Order{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
