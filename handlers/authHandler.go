package handlers

import (
	"net/http"

	"github.com/Aishwarya-deoraj/Sustainability-tracker/middleware"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/models"
	"github.com/Aishwarya-deoraj/Sustainability-tracker/utils"
	"github.com/gin-gonic/gin"
)

func SignUp(c *gin.Context) {
	var input models.SignUpInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	if err := middleware.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := userSvc.SignUp(input)
	if err != nil {
		abortWithServiceError(c, "signup", err)
		return
	}

	token, _ := utils.GenerateToken(user.ID, user.Username)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

func SignIn(c *gin.Context) {
	var input models.SignInInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	user, err := userSvc.Authenticate(input.Email, input.Password)
	if err != nil {
		abortWithServiceError(c, "signin", err)
		return
	}

	token, _ := utils.GenerateToken(user.ID, user.Username)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// CreateLegacyUser keeps the passwordless creation path alive for old
// clients. Idempotent on username.
func CreateLegacyUser(c *gin.Context) {
	var input models.LegacyUserInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid data"})
		return
	}

	user, err := userSvc.LegacyCreate(input)
	if err != nil {
		abortWithServiceError(c, "create_legacy_user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user_id": user.ID, "username": user.Username})
}

func Profile(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, user)
}
