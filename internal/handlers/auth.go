package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rogue-drones/workflow/db"
	"github.com/rogue-drones/workflow/internal/auth"
	"github.com/rogue-drones/workflow/internal/models"
	"github.com/rogue-drones/workflow/internal/store"
	"github.com/rogue-drones/workflow/internal/types"
	"github.com/rogue-drones/workflow/internal/utils"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
}

// LoginRequest is form-encoded, OAuth2 password-flow style: the username
// field carries the email.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func RegisterUser(ctx *gin.Context) {
	var req RegisterRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	hash, err := auth.HashPassword(req.Password)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: hash,
		IsActive:       true,
		IsAdmin:        false,
	}

	users := store.NewUserStore(db.DB)

	if err := users.Create(ctx.Request.Context(), &user); err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// LoginUser returns an identical 401 for an unknown email and a wrong
// password so callers cannot tell which check failed.
func LoginUser(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBind(&req); err != nil {
		RespondError(ctx, types.NewValidation("Invalid request: %v", err))
		return
	}

	users := store.NewUserStore(db.DB)

	email := strings.ToLower(strings.TrimSpace(req.Username))
	user, err := users.GetByEmail(ctx.Request.Context(), email)

	if err != nil || !auth.VerifyPassword(req.Password, user.HashedPassword) {
		RespondError(ctx, types.NewAuth("Incorrect email or password"))
		return
	}

	token, err := auth.GenerateToken(user.ID)

	if err != nil {
		log.Printf("Failed to generate token: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	users := store.NewUserStore(db.DB)

	user, err := users.GetByID(ctx.Request.Context(), currentUser.ID)

	if err != nil {
		RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}
