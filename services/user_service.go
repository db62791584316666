package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/jerekarp/hyte-backend/config"
	"github.com/jerekarp/hyte-backend/models"
	"github.com/jerekarp/hyte-backend/utils"
)

func RegisterUser(username, password, email string) (*models.User, *models.RequestError) {
	var count int64
	if err := config.DB.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, models.ServerError("Database error")
	}
	if count > 0 {
		return nil, models.BadRequest("username or email already in use")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, models.ServerError("could not hash password")
	}

	user := models.User{
		Username:  username,
		Password:  hashed,
		Email:     email,
		UserLevel: models.UserLevelRegular,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, models.ServerError(err.Error())
	}
	return &user, nil
}

// AuthenticateUser checks the credentials and mints a JWT carrying
// user_id and user_level.
func AuthenticateUser(username, password string) (string, *models.User, *models.RequestError) {
	var user models.User
	err := config.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && !utils.CheckPasswordHash(password, user.Password)) {
		return "", nil, &models.RequestError{Status: 401, Message: "Invalid username or password"}
	}
	if err != nil {
		return "", nil, models.ServerError("Database error")
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, user.UserLevel)
	if err != nil {
		return "", nil, models.ServerError("could not generate token")
	}
	return token, &user, nil
}

func FindUserByID(id uint) (*models.User, *models.RequestError) {
	var user models.User
	err := config.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NotFound("User not found")
	}
	if err != nil {
		return nil, models.ServerError("Database error")
	}
	return &user, nil
}

// SeedDemoUsers creates the three demo accounts on an empty users table.
// Passwords are hashed; the old mock data shipped them in the clear.
func SeedDemoUsers() {
	var count int64
	if err := config.DB.Model(&models.User{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	demo := []struct {
		username, password, email, level string
	}{
		{"johndoe", "password1", "johndoe@example.com", models.UserLevelRegular},
		{"janedoe", "password2", "janedoe@example.com", models.UserLevelRegular},
		{"bobsmith", "password3", "bobsmith@example.com", models.UserLevelAdmin},
	}

	for _, d := range demo {
		hashed, err := utils.HashPassword(d.password)
		if err != nil {
			log.Printf("seed: hash failed for %s: %v", d.username, err)
			continue
		}
		user := models.User{
			Username:  d.username,
			Password:  hashed,
			Email:     d.email,
			UserLevel: d.level,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Printf("seed: create failed for %s: %v", d.username, err)
		}
	}
}
