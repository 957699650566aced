package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mighty-stack/swiftship/internal/guard"
	"github.com/mighty-stack/swiftship/internal/store"
)

// AuthController owns the session views: register, login, logout, the
// session snapshot, and the post-login interstitial redirect.
type AuthController struct {
	Sessions *store.SessionStore
}

type registerInput struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account and signs the session in.
func (ctrl *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.Sessions.SignUp(c.Request.Context(), input.FullName, input.Email, input.Password, input.Phone); err != nil {
		snap := ctrl.Sessions.Snapshot()
		c.JSON(errorStatus(err), gin.H{"error": snap.LastError})
		return
	}

	snap := ctrl.Sessions.Snapshot()
	c.JSON(http.StatusCreated, gin.H{
		"user":     snap.Principal,
		"redirect": guard.RoleHome(snap.Principal),
	})
}

// Login authenticates an existing account.
func (ctrl *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := ctrl.Sessions.SignIn(c.Request.Context(), input.Email, input.Password); err != nil {
		snap := ctrl.Sessions.Snapshot()
		c.JSON(errorStatus(err), gin.H{"error": snap.LastError})
		return
	}

	snap := ctrl.Sessions.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"user":     snap.Principal,
		"redirect": guard.RoleHome(snap.Principal),
	})
}

// Logout tears the session down. Local cleanup only; it cannot fail.
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.Sessions.SignOut()
	c.Redirect(http.StatusFound, "/login")
}

// Session renders the current session snapshot.
func (ctrl *AuthController) Session(c *gin.Context) {
	snap := ctrl.Sessions.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"user":            snap.Principal,
		"isAuthenticated": snap.IsAuthenticated,
		"pending":         snap.Pending,
		"error":           snap.LastError,
	})
}

// Redirect is the interstitial that routes a fresh login to its role home.
func (ctrl *AuthController) Redirect(c *gin.Context) {
	c.Redirect(http.StatusFound, guard.RoleHome(ctrl.Sessions.Principal()))
}

// LoginView and RegisterView render the form state for the auth screens.
func (ctrl *AuthController) LoginView(c *gin.Context) {
	snap := ctrl.Sessions.Snapshot()
	c.JSON(http.StatusOK, gin.H{"view": "login", "pending": snap.Pending, "error": snap.LastError})
}

func (ctrl *AuthController) RegisterView(c *gin.Context) {
	snap := ctrl.Sessions.Snapshot()
	c.JSON(http.StatusOK, gin.H{"view": "register", "pending": snap.Pending, "error": snap.LastError})
}

// Home is the public landing view.
func (ctrl *AuthController) Home(c *gin.Context) {
	snap := ctrl.Sessions.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"service":         "swiftship",
		"isAuthenticated": snap.IsAuthenticated,
	})
}
