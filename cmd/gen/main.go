package main

import (
	"saletafood/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CategoryModel{},
		model.ProductModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.UserModel{},
		model.VisitorModel{},
		model.WebsiteSettingModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
