// Package session guarda el bearer token emitido por el servicio de
// autenticación externo. La consola nunca firma ni valida criptográficamente
// tokens: solo los porta hacia el backend y los descarta ante un 401.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Store almacén del token de sesión, persistido en un archivo local para
// sobrevivir reinicios del proceso de la consola.
type Store struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewStore crea el almacén y carga el token persistido si existe.
func NewStore(path string) *Store {
	s := &Store{path: path}
	if data, err := os.ReadFile(path); err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

// Token devuelve el bearer token actual ("" si no hay sesión).
// Un token con claim exp vencido se descarta localmente: evita un round-trip
// que terminaría en 401 de todas formas.
func (s *Store) Token() string {
	s.mu.RLock()
	tok := s.token
	s.mu.RUnlock()
	if tok == "" {
		return ""
	}
	if expired(tok) {
		s.Clear()
		return ""
	}
	return tok
}

// Save persiste un token nuevo (login exitoso).
func (s *Store) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear descarta la sesión local (logout o 401 del backend). Idempotente.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}

// Active indica si hay una sesión local vigente.
func (s *Store) Active() bool {
	return s.Token() != ""
}

// expired decodifica los claims SIN verificar la firma (la consola no posee
// el secreto del emisor) y compara exp contra el reloj local.
func expired(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Token opaco (no JWT): lo decide el backend.
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
