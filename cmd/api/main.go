package main

import (
	"shopapi/internal/config"
	"shopapi/internal/domain/model"
	"shopapi/internal/handler"
	"shopapi/internal/infra/db"
	infraRepo "shopapi/internal/infra/repository"
	"shopapi/internal/server"
	"shopapi/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	//.envは任意（無くても起動できる）
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}

	//スキーマは起動時に冪等に作る
	if err := gormDB.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Order{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//Usecase生成
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)

	//Handler生成
	customerH := handler.NewCustomerHandler(customerUC)
	productH := handler.NewProductHandler(productUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	if err := server.Start(cfg.Addr(), customerH, productH, orderH); err != nil {
		panic(err)
	}
}
