package models

// All lists every record in migration order.
func All() []any {
	return []any{
		&Role{},
		&Store{},
		&User{},
		&Product{},
		&Recipe{},
		&RecipeDetail{},
		&ProductionPlan{},
		&LogBatch{},
		&Inventory{},
		&InventoryTransaction{},
		&Delivery{},
		&Order{},
		&OrderDetail{},
		&QualityFeedback{},
	}
}
