package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	jwtExpiry       = 30 * 24 * time.Hour
	guestRateWindow = 60 * time.Second
	maxGuestsPerIP  = 10
)

var (
	ErrTooManyGuests = errors.New("too many new guests, try again later")
	ErrInvalidToken  = errors.New("invalid token")
)

// Auth issues and validates guest tokens. Guests have no password; the token
// is the only thing tying a browser to its credit balance.
type Auth struct {
	db        *DB
	jwtSecret []byte

	// Rate limiting for guest creation (IP -> attempts)
	rateMu  sync.Mutex
	rateMap map[string]*rateEntry
	swept   time.Time // last pass dropping expired rateMap entries
}

type rateEntry struct {
	Count   int
	ResetAt time.Time
}

// NewAuth creates a new Auth handler
func NewAuth(db *DB) *Auth {
	return &Auth{
		db:        db,
		jwtSecret: loadOrCreateSecret(db),
		rateMap:   make(map[string]*rateEntry),
	}
}

// loadOrCreateSecret loads the JWT secret from the database, or generates
// and persists a new one if none exists.
func loadOrCreateSecret(db *DB) []byte {
	if db != nil {
		if h := db.GetSetting("jwt_secret"); h != "" {
			if b, err := hex.DecodeString(h); err == nil && len(b) == 32 {
				return b
			}
		}
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		panic("failed to generate JWT secret: " + err.Error())
	}
	if db != nil {
		if err := db.SetSetting("jwt_secret", hex.EncodeToString(secret)); err != nil {
			log.Printf("warning: could not persist JWT secret: %v", err)
		}
	}
	return secret
}

// NewGuest creates a guest identity and its token
func (a *Auth) NewGuest(ip string) (string, string, error) {
	if !a.checkRate(ip) {
		return "", "", ErrTooManyGuests
	}
	id := uuid.NewString()
	if a.db != nil {
		if err := a.db.TouchGuest(id); err != nil {
			return "", "", fmt.Errorf("failed to create guest: %w", err)
		}
	}
	token, err := a.generateToken(id)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}
	return id, token, nil
}

// ValidateToken validates a JWT and returns the guest ID
func (a *Auth) ValidateToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	gid, ok := claims["gid"].(string)
	if !ok {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(gid); err != nil {
		return "", ErrInvalidToken
	}
	return gid, nil
}

// Resume validates a stored token, falling back to a fresh guest when the
// token is missing or no longer valid.
func (a *Auth) Resume(tokenStr, ip string) (string, string, error) {
	if tokenStr != "" {
		gid, err := a.ValidateToken(tokenStr)
		if err == nil {
			if a.db != nil {
				if err := a.db.TouchGuest(gid); err != nil {
					log.Printf("auth: touch guest %s: %v", gid, err)
				}
			}
			return gid, tokenStr, nil
		}
		log.Printf("auth: rejecting token from %s: %v", ip, err)
	}
	return a.NewGuest(ip)
}

func (a *Auth) generateToken(guestID string) (string, error) {
	claims := jwt.MapClaims{
		"gid": guestID,
		"exp": time.Now().Add(jwtExpiry).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

func (a *Auth) checkRate(ip string) bool {
	a.rateMu.Lock()
	defer a.rateMu.Unlock()

	now := time.Now()
	entry, ok := a.rateMap[ip]
	if !ok || now.After(entry.ResetAt) {
		// At most one sweep per window keeps inserts cheap
		if now.Sub(a.swept) >= guestRateWindow {
			a.sweepRates(now)
		}
		a.rateMap[ip] = &rateEntry{Count: 1, ResetAt: now.Add(guestRateWindow)}
		return true
	}
	entry.Count++
	return entry.Count <= maxGuestsPerIP
}

// sweepRates drops expired entries; caller holds rateMu
func (a *Auth) sweepRates(now time.Time) {
	for ip, e := range a.rateMap {
		if now.After(e.ResetAt) {
			delete(a.rateMap, ip)
		}
	}
	a.swept = now
}
