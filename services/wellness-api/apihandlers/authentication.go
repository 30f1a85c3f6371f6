package apihandlers

import (
	"errors"
	"log/slog"
	"net/http"

	mw "github.com/Lokeshwar-goud/Psyvana/pkg/apihelpers/middlewares"
	jwthandling "github.com/Lokeshwar-goud/Psyvana/pkg/jwt-handling"
	usermanagement "github.com/Lokeshwar-goud/Psyvana/pkg/user-management"
	umUtils "github.com/Lokeshwar-goud/Psyvana/pkg/user-management/utils"
	"github.com/gin-gonic/gin"

	userTypes "github.com/Lokeshwar-goud/Psyvana/pkg/user-management/types"
)

const (
	signupRateLimitWindow = 5 * 60 // to count the new signups, seconds
)

func (h *HttpEndpoints) AddAppAuthAPI(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", mw.RequirePayload(), h.loginWithEmail)
		authGroup.POST("/signup", mw.RequirePayload(), h.signupWithEmail)

		authGroup.POST("/token/renew", mw.RequirePayload(), mw.GetAndValidateAppUserJWTWithIgnoringExpiration(h.tokenSignKey), h.refreshToken)
		authGroup.GET("/token/validate", mw.GetAndValidateAppUserJWT(h.tokenSignKey), h.validateToken)
		authGroup.POST("/logout", mw.GetAndValidateAppUserJWT(h.tokenSignKey), h.logout)
	}
}

type LoginWithEmailReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func loginErrorStatus(err error) int {
	switch {
	case errors.Is(err, usermanagement.ErrMissingArguments):
		return http.StatusBadRequest
	case errors.Is(err, usermanagement.ErrTooManyAttempts):
		return http.StatusTooManyRequests
	case errors.Is(err, usermanagement.ErrAccountNotFound), errors.Is(err, usermanagement.ErrWrongPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func signupErrorStatus(err error) int {
	switch {
	case errors.Is(err, usermanagement.ErrMissingArguments),
		errors.Is(err, usermanagement.ErrInvalidEmail),
		errors.Is(err, usermanagement.ErrWeakPassword):
		return http.StatusBadRequest
	case errors.Is(err, usermanagement.ErrEmailInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *HttpEndpoints) loginWithEmail(c *gin.Context) {
	var req LoginWithEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := usermanagement.Login(req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", slog.String("email", req.Email), slog.String("error", err.Error()))
		randomWait(5, 10)
		c.JSON(loginErrorStatus(err), gin.H{"error": usermanagement.LoginErrorMessage(err)})
		return
	}

	token, renewToken, err := h.issueTokenPair(user)
	if err != nil {
		slog.Error("failed to issue tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("login successful", slog.String("subject", user.ID.Hex()))

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken":  token,
			"refreshToken": renewToken,
			"expiresIn":    h.tokenExpiresIn.Seconds(),
		},
		"user": user,
	})
}

type SignupWithEmailReq struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
	InfoCheck   string `json:"infoCheck"`
}

func (h *HttpEndpoints) signupWithEmail(c *gin.Context) {
	var req SignupWithEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.InfoCheck != "" {
		slog.Warn("honeypot field filled out", slog.String("email", req.Email), slog.String("infoCheck", req.InfoCheck))
		randomWait(5, 10)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid request"})
		return
	}

	// rate limit
	newUserCount, err := h.userDBConn.CountRecentlyCreatedUsers(signupRateLimitWindow)
	if err != nil {
		slog.Error("failed to count new users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if newUserCount >= int64(h.maxNewUsersPer5Minute) {
		slog.Warn("rate limit for new users reached")
		randomWait(5, 10)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "try again later"})
		return
	}

	newUser, err := usermanagement.SignUp(req.DisplayName, req.Email, req.Password)
	if err != nil {
		slog.Warn("signup failed", slog.String("email", req.Email), slog.String("error", err.Error()))
		c.JSON(signupErrorStatus(err), gin.H{"error": usermanagement.SignupErrorMessage(err)})
		return
	}

	token, renewToken, err := h.issueTokenPair(newUser)
	if err != nil {
		slog.Error("failed to issue tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("signup successful", slog.String("subject", newUser.ID.Hex()))

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken":  token,
			"refreshToken": renewToken,
			"expiresIn":    h.tokenExpiresIn.Seconds(),
		},
		"user": newUser,
	})
}

func (h *HttpEndpoints) issueTokenPair(user userTypes.User) (token string, renewToken string, err error) {
	token, err = jwthandling.GenerateNewAppUserToken(
		h.tokenExpiresIn,
		user.ID.Hex(),
		user.Account.DisplayName,
		user.Account.IsAdmin,
		h.tokenSignKey,
	)
	if err != nil {
		return "", "", err
	}

	renewToken, err = umUtils.GenerateUniqueTokenString()
	if err != nil {
		return "", "", err
	}

	if err := h.userDBConn.CreateRenewToken(user.ID.Hex(), renewToken); err != nil {
		return "", "", err
	}
	return token, renewToken, nil
}

type RefreshTokenReq struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *HttpEndpoints) refreshToken(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	var req RefreshTokenReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("failed to bind request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// check if user still exists
	user, err := h.userDBConn.GetUser(token.Subject)
	if err != nil {
		slog.Warn("user not found", slog.String("subject", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	// refresh tokens are one-time use
	_, err = h.userDBConn.FindAndDeleteRenewToken(token.Subject, req.RefreshToken)
	if err != nil {
		slog.Warn("invalid renew token", slog.String("subject", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	newJwt, newRenewToken, err := h.issueTokenPair(user)
	if err != nil {
		slog.Error("failed to issue tokens", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user.Account.Password = ""

	slog.Info("token refreshed", slog.String("subject", user.ID.Hex()))

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken":  newJwt,
			"refreshToken": newRenewToken,
			"expiresIn":    h.tokenExpiresIn.Seconds(),
		},
		"user": user,
	})
}

func (h *HttpEndpoints) validateToken(c *gin.Context) {
	// read validated token
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	// check if user still exists
	_, err := h.userDBConn.GetUser(token.Subject)
	if err != nil {
		slog.Warn("user not found", slog.String("subject", token.Subject), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tokenInfos": token})
}

func (h *HttpEndpoints) logout(c *gin.Context) {
	token := c.MustGet("validatedToken").(*jwthandling.AppUserClaims)

	count, err := h.userDBConn.DeleteRenewTokensForUser(token.Subject)
	if err != nil {
		slog.Error("failed to delete renew tokens during logout", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	slog.Info("user logged out", slog.String("subject", token.Subject), slog.Int64("tokensRevoked", count))
	c.JSON(http.StatusOK, gin.H{
		"message":       "logout successful",
		"tokensRevoked": count,
	})
}
