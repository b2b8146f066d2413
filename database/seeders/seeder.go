// Package seeders populates a fresh database: a starter catalog and the
// optional environment-driven admin/manager accounts.
package seeders

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/bookstore/app/models"
	"github.com/shashiranjanraj/bookstore/app/repositories"
	"github.com/shashiranjanraj/bookstore/config"
	"github.com/shashiranjanraj/bookstore/pkg/basicauth"
	"github.com/shashiranjanraj/bookstore/pkg/logger"
)

// Run executes every seeder. Each one is idempotent, so Run is safe to call
// on every startup.
func Run(db *gorm.DB) error {
	if err := SeedBooks(db); err != nil {
		return err
	}
	return SeedAccounts(db)
}

// SeedBooks inserts the starter catalog when the books table is empty.
func SeedBooks(db *gorm.DB) error {
	count, err := repositories.NewBookRepository(db).Count()
	if err != nil {
		return fmt.Errorf("seed books: count: %w", err)
	}
	if count > 0 {
		return nil
	}

	english := "English"
	books := []models.Book{
		{Name: "The Great Gatsby", Author: "F. Scott Fitzgerald", Description: "A portrait of the Jazz Age.", Language: &english, Year: intPtr(1925), Price: 19.99, Stock: 50},
		{Name: "1984", Author: "George Orwell", Description: "A dystopian classic.", Language: &english, Year: intPtr(1949), Price: 24.99, Stock: 40},
		{Name: "The Hobbit", Author: "J.R.R. Tolkien", Description: "There and back again.", Language: &english, Year: intPtr(1937), Price: 29.99, Stock: 25},
	}

	if err := db.Create(&books).Error; err != nil {
		return fmt.Errorf("seed books: %w", err)
	}
	logger.Info("seeded catalog", "books", len(books))
	return nil
}

// SeedAccounts creates the admin and manager bootstrap accounts when their
// credentials are present in the environment. Existing emails are skipped.
func SeedAccounts(db *gorm.DB) error {
	accounts := []struct {
		email, password, name, role string
	}{
		{config.AdminSeedEmail(), config.AdminSeedPassword(), config.AdminSeedName(), models.RoleAdmin},
		{config.ManagerSeedEmail(), config.ManagerSeedPassword(), config.ManagerSeedName(), models.RoleEmployee},
	}

	users := repositories.NewUserRepository(db)
	for _, acc := range accounts {
		if acc.email == "" || acc.password == "" {
			continue
		}

		exists, err := users.EmailExists(acc.email)
		if err != nil {
			return fmt.Errorf("seed accounts: %w", err)
		}
		if exists {
			continue
		}

		hash, err := basicauth.HashPassword(acc.password)
		if err != nil {
			return fmt.Errorf("seed accounts: hash: %w", err)
		}

		user := models.User{Name: acc.name, Email: acc.email, PasswordHash: hash, Role: acc.role}
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&models.Profile{UserID: user.ID}).Error
		})
		if err != nil {
			return fmt.Errorf("seed accounts: create %s: %w", acc.email, err)
		}
		logger.Info("seeded account", "email", acc.email, "role", acc.role)
	}
	return nil
}

func intPtr(n int) *int { return &n }
