package main

import (
	"log"
	"os"
	"time"

	"circletel-admin-be/internal/model"
	"circletel-admin-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeds a development database: one admin user plus a handful of orders
// spread across the lifecycle so every admin screen has something to show.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedAdminUser(db)
	seedOrders(db)

	color.Green("✅ Seeding completed")
}

func seedAdminUser(db *gorm.DB) {
	email := "admin@circletel.co.za"

	var count int64
	db.Model(&model.AdminUser{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		color.Yellow("Admin user %s already exists, skipping", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error: failed to hash password: %v", err)
	}

	admin := model.AdminUser{
		Id:           uuid.New(),
		FullName:     "CircleTel Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         "admin",
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Error: failed to seed admin user: %v", err)
	}
	color.Green("Created admin user %s (password: ChangeMe123!)", email)
}

func seedOrders(db *gorm.DB) {
	var count int64
	db.Model(&model.ConsumerOrder{}).Count(&count)
	if count > 0 {
		color.Yellow("Orders already present, skipping order seed")
		return
	}

	customerId := uuid.New()

	// Verified, active debit-order method for the activation-ready order.
	method := model.CustomerPaymentMethod{
		Id:               uuid.New(),
		CustomerId:       customerId,
		MethodType:       "debit_order",
		MandateStatus:    "active",
		IsActive:         true,
		IsPrimary:        true,
		EncryptedDetails: datatypes.JSON([]byte(`{"verified": true, "bank": "FNB", "account_last4": "4821"}`)),
	}
	if err := db.Create(&method).Error; err != nil {
		log.Fatalf("Error: failed to seed payment method: %v", err)
	}

	scheduled := time.Now().AddDate(0, 0, 3)
	docUrl := "/uploads/sample-installation-report.pdf"

	orders := []model.ConsumerOrder{
		{
			Id:                  uuid.New(),
			OrderNumber:         "ORD-2025-00001",
			CustomerId:          uuid.New(),
			CustomerName:        "Thabo Mokoena",
			CustomerEmail:       "thabo.mokoena@example.co.za",
			PackageName:         "HomeFibre Premium",
			PackageSpeed:        "100/50 Mbps",
			PackagePrice:        899,
			InstallationFee:     0,
			InstallationAddress: "12 Protea Road",
			Suburb:              "Rondebosch",
			City:                "Cape Town",
			Province:            "Western Cape",
			PostalCode:          "7700",
			Status:              "pending",
		},
		{
			Id:                        uuid.New(),
			OrderNumber:               "ORD-2025-00002",
			CustomerId:                uuid.New(),
			CustomerName:              "Lerato Dlamini",
			CustomerEmail:             "lerato.dlamini@example.co.za",
			PackageName:               "HomeFibre Essential",
			PackageSpeed:              "50/25 Mbps",
			PackagePrice:              599,
			InstallationFee:           999,
			InstallationAddress:       "48 Jan Smuts Avenue",
			Suburb:                    "Craighall",
			City:                      "Johannesburg",
			Province:                  "Gauteng",
			PostalCode:                "2196",
			Status:                    "installation_scheduled",
			InstallationScheduledDate: &scheduled,
		},
		{
			Id:                      uuid.New(),
			OrderNumber:             "ORD-2025-00003",
			CustomerId:              customerId,
			CustomerName:            "Sipho Ndlovu",
			CustomerEmail:           "sipho.ndlovu@example.co.za",
			PackageName:             "HomeFibre Pro",
			PackageSpeed:            "200/100 Mbps",
			PackagePrice:            1099,
			InstallationFee:         0,
			InstallationAddress:     "7 Marine Drive",
			Suburb:                  "Umhlanga",
			City:                    "Durban",
			Province:                "KwaZulu-Natal",
			PostalCode:              "4320",
			Status:                  "installation_completed",
			InstallationDocumentUrl: &docUrl,
			PaymentMethodId:         &method.Id,
		},
	}

	for _, o := range orders {
		if err := db.Create(&o).Error; err != nil {
			log.Fatalf("Error: failed to seed order %s: %v", o.OrderNumber, err)
		}
		color.Cyan("Seeded order %s (%s)", o.OrderNumber, o.Status)
	}
}
