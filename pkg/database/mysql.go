package database

import (
	"course_share_backend/internal/config"
	"course_share_backend/internal/model"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
		cfg.Database.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	// release 模式默认不自动迁移，-migrate 参数强制执行
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		err = db.AutoMigrate(
			&model.User{},
			&model.Course{},
			&model.Rating{},
			&model.Enrollment{},
		)

		if err != nil {
			return nil, err
		}

		log.Println("Database migration completed")
	}

	// 空库时创建初始管理员账号，审核流程需要至少一个管理员
	var count int64
	db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count)
	if count == 0 {
		password := os.Getenv("ADMIN_INITIAL_PASSWORD")
		if password == "" {
			password = "changeme123"
			log.Println("ADMIN_INITIAL_PASSWORD not set, seeding admin with default password")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin := &model.User{
			Username: "admin",
			Email:    "admin@courseshare.local",
			Password: string(hashed),
			Role:     model.RoleAdmin,
		}
		if err := db.Create(admin).Error; err != nil {
			return nil, err
		}
		log.Println("Seeded initial admin account")
	}

	return db, nil
}
