package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barberbook/barberbook-api/internal/auth"
	"github.com/barberbook/barberbook-api/internal/cache"
	"github.com/barberbook/barberbook-api/internal/config"
	"github.com/barberbook/barberbook-api/internal/httperr"
	"github.com/barberbook/barberbook-api/internal/models"
)

// GoogleAuthHandler runs the customer sign-in: redirect to Google,
// exchange the callback code, upsert the account and hand out the same
// session JWT the password flow uses.
type GoogleAuthHandler struct {
	db     *gorm.DB
	config *config.Config
	google *auth.Google
	states *cache.OAuthState
}

func NewGoogleAuthHandler(
	db *gorm.DB,
	cfg *config.Config,
	google *auth.Google,
	states *cache.OAuthState,
) *GoogleAuthHandler {
	return &GoogleAuthHandler{
		db:     db,
		config: cfg,
		google: google,
		states: states,
	}
}

func (h *GoogleAuthHandler) Login(c *gin.Context) {
	state := uuid.NewString()
	if err := h.states.Put(c.Request.Context(), state); err != nil {
		httperr.Internal(c, "oauth_unavailable", "Não foi possível iniciar o login.")
		return
	}

	c.Redirect(http.StatusFound, h.google.AuthURL(state))
}

func (h *GoogleAuthHandler) Callback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")

	if state == "" || code == "" || !h.states.Consume(c.Request.Context(), state) {
		httperr.BadRequest(c, "invalid_oauth_state", "Login inválido ou expirado.")
		return
	}

	profile, err := h.google.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Error().Err(err).Msg("google exchange failed")
		httperr.Unauthorized(c, "oauth_failed", "Não foi possível completar o login.")
		return
	}

	user, err := h.upsertCustomer(profile)
	if err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao registrar usuário.")
		return
	}

	token, err := generateToken(h.config, user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(user),
		"token": token,
	})
}

// upsertCustomer matches by provider id first, then by email so a
// returning user never ends up with two accounts.
func (h *GoogleAuthHandler) upsertCustomer(profile *auth.Profile) (*models.User, error) {
	email := strings.ToLower(profile.Email)

	var user models.User
	err := h.db.
		Where("provider = ? AND provider_id = ?", "google", profile.ID).
		Or("email = ?", email).
		First(&user).Error

	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Name:       profile.Name,
			Email:      email,
			AvatarURL:  profile.Picture,
			Provider:   "google",
			ProviderID: profile.ID,
			Role:       models.RoleCustomer,
		}
		if err := h.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	user.Name = profile.Name
	user.AvatarURL = profile.Picture
	user.Provider = "google"
	user.ProviderID = profile.ID
	if err := h.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
