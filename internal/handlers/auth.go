package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"

	"github.com/pequelandia/agendita/internal/db"
	"github.com/pequelandia/agendita/internal/models"
	"github.com/pequelandia/agendita/internal/store"
)

const sessionName = "agendita_session"

var sessionStore = sessions.NewCookieStore([]byte(sessionKey()))

func sessionKey() string {
	if k := os.Getenv("SESSION_KEY"); k != "" {
		return k
	}
	return "agendita-dev-session-key" // change in production: export SESSION_KEY=...
}

func jwtSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("agendita-dev-secret")
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// POST /auth/register
func Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	u := models.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := store.CreateUser(db.Conn(), &u); err != nil {
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "el usuario ya existe")
			return
		}
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, messageResponse{Message: "Usuario registrado correctamente"})
}

// POST /auth/login
// Issues a 24h JWT for API clients and sets the page session cookie, so the
// same login works for both surfaces.
func Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo de la petición no válido")
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	u, err := authenticate(req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "usuario o contraseña incorrectos")
		return
	}

	token, err := issueToken(u)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	sess, _ := sessionStore.Get(r, sessionName)
	sess.Values["user_id"] = u.ID
	sess.Values["username"] = u.Username
	sess.Values["role"] = u.Role
	_ = sess.Save(r, w)

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: u.Username, Role: u.Role})
}

func authenticate(username, password string) (models.User, error) {
	u, err := store.FindUserByUsername(db.Conn(), strings.TrimSpace(username))
	if err != nil {
		return models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func issueToken(u models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   u.ID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// RequireSession guards the server-rendered pages: no session, off to /login.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := sessionStore.Get(r, sessionName)
		if id, ok := sess.Values["user_id"].(string); !ok || id == "" {
			http.Redirect(w, r, "/login?next="+r.URL.RequestURI(), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GET /logout
func Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := sessionStore.Get(r, sessionName)
	sess.Options.MaxAge = -1
	_ = sess.Save(r, w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
