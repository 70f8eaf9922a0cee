package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"newsboard/internal/config"
	"newsboard/internal/db"
	"newsboard/internal/model"
	"newsboard/internal/repository"
)

type seedUser struct {
	firstName string
	lastName  string
	email     string
	password  string
	posts     []seedPost
}

type seedPost struct {
	title   string
	content string
}

var fixtures = []seedUser{
	{
		firstName: "Alice",
		lastName:  "Reed",
		email:     "alice@example.com",
		password:  "password123",
		posts: []seedPost{
			{title: "Welcome to Newsboard", content: "The first post on a fresh install."},
			{title: "Local development tips", content: "Run the server with SQLITE_PATH pointing at a scratch file."},
		},
	},
	{
		firstName: "Bob",
		lastName:  "Stone",
		email:     "bob@example.com",
		password:  "password123",
		posts: []seedPost{
			{title: "Hello from Bob", content: "A second author so ownership checks have something to reject."},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.News{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	newsRepo := repository.NewNewsRepository(gormDB)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, fixture := range fixtures {
		if _, err := userRepo.FindByEmail(ctx, fixture.email); err == nil {
			log.Printf("Skipping %s, already present", fixture.email)
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check %s: %v", fixture.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(fixture.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		user := &model.User{
			FirstName:    fixture.firstName,
			LastName:     fixture.lastName,
			Email:        fixture.email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create %s: %v", fixture.email, err)
		}

		for _, post := range fixture.posts {
			news := &model.News{
				Title:   post.title,
				Content: post.content,
				UserID:  user.ID,
			}
			if err := newsRepo.Create(ctx, news); err != nil {
				log.Fatalf("Failed to create post %q: %v", post.title, err)
			}
		}
		created++
	}

	log.Printf("Seed completed: %d users created, %d skipped", created, skipped)
}
