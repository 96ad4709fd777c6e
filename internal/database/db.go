package database

import (
	"log"

	"github.com/byildiz78/td-invoice/internal/config"
	"github.com/byildiz78/td-invoice/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init: Postgres bağlantısını açar ve şemayı günceller. Belge verisi burada
// tutulmaz; sadece kullanıcılar ve sorgu kayıtları kalıcıdır.
func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Veritabanına bağlanılamadı: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.FetchLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate hatası: %v", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
}
