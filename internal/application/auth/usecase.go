package auth

import (
	"fmt"
	"regexp"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/flogin/flogin-api/internal/application/dto"
	"github.com/flogin/flogin-api/internal/domain/repository"
)

// Failure and success messages. The unknown-user and wrong-password branches
// share one message so callers cannot tell which part was wrong.
const (
	MsgInvalidUsername    = "username must be 3-50 characters"
	MsgInvalidPassword    = "password must contain at least one letter and one digit"
	MsgInvalidCredentials = "invalid username or password"
	MsgLoginOK            = "login successful"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// AuthUseCase authenticates credentials against an in-memory snapshot of the
// user table. LoadCredentials fills the snapshot once at startup; after that
// the map is read-only, so Authenticate takes no lock. Users created in the
// store later are invisible until restart.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	credentials map[string]string // username -> password
}

// NewAuthUseCase builds the use case with an empty credential cache.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		credentials: make(map[string]string),
	}
}

// LoadCredentials copies every user row into the cache. Call once at startup,
// before the server accepts traffic.
func (uc *AuthUseCase) LoadCredentials() (int, error) {
	users, err := uc.userRepo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		uc.credentials[u.Username] = u.Password
	}
	return len(users), nil
}

// Authenticate validates the credential pair and produces a login result.
// It never returns an error: every failure is a structured response.
// Checks short-circuit, first failure wins.
func (uc *AuthUseCase) Authenticate(in dto.LoginRequest) *dto.LoginResponse {
	if !ValidateUsername(in.Username) {
		return failure(MsgInvalidUsername)
	}
	if !ValidatePassword(in.Password) {
		return failure(MsgInvalidPassword)
	}

	stored, ok := uc.credentials[in.Username]
	if !ok {
		return failure(MsgInvalidCredentials)
	}
	if stored != in.Password {
		return failure(MsgInvalidCredentials)
	}

	token := fmt.Sprintf("token-%d", time.Now().UnixMilli())
	return &dto.LoginResponse{
		Success: true,
		Message: MsgLoginOK,
		Token:   &token,
	}
}

// ValidateUsername accepts 3-50 characters from [A-Za-z0-9_-].
// Lengths count characters, not bytes.
func ValidateUsername(username string) bool {
	if n := utf8.RuneCountInString(username); n < 3 || n > 50 {
		return false
	}
	return usernamePattern.MatchString(username)
}

// ValidatePassword accepts 6-100 characters containing at least one letter
// and at least one digit. Scans until both are seen or the string ends.
// Lengths count characters, not bytes, so multibyte runes weigh one each.
func ValidatePassword(password string) bool {
	if n := utf8.RuneCountInString(password); n < 6 || n > 100 {
		return false
	}

	hasLetter := false
	hasDigit := false
	for _, c := range password {
		if unicode.IsLetter(c) {
			hasLetter = true
		} else if unicode.IsDigit(c) {
			hasDigit = true
		}
		if hasLetter && hasDigit {
			break
		}
	}
	return hasLetter && hasDigit
}

func failure(message string) *dto.LoginResponse {
	return &dto.LoginResponse{Success: false, Message: message, Token: nil}
}
