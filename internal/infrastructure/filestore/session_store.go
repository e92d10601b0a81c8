package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/domain/entity"
	"github.com/jhoicas/nautica-cli/pkg/jwt"
	"github.com/jhoicas/nautica-cli/pkg/logger"
)

// SessionStore persiste la sesión como un JWT firmado (HS256) en un archivo.
// Implementa session.Store. Un token ilegible o con firma inválida degrada a
// sesión nueva (equivale a no haber iniciado sesión), nunca a error: el
// estado de sesión no vale un fallo del proceso.
type SessionStore struct {
	path   string
	secret string
	issuer string
	log    *logger.Logger
}

// NewSessionStore construye el almacén de sesión.
func NewSessionStore(path, secret, issuer string, log *logger.Logger) *SessionStore {
	return &SessionStore{path: path, secret: secret, issuer: issuer, log: log}
}

// Load lee el token y re-enlaza usuario y empresa contra el grafo cargado.
// Devuelve nil cuando no hay sesión utilizable.
func (s *SessionStore) Load(data *entity.AppData) (*session.Session, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}

	userID, companyName, lastVisited, err := jwt.ParseSession(s.secret, strings.TrimSpace(string(raw)))
	if err != nil {
		s.log.Warn().Err(err).Msg("sesión persistida inválida, se descarta")
		return nil, nil
	}
	if userID == "" {
		return nil, nil
	}
	user := data.FindUserByID(userID)
	if user == nil {
		s.log.Warn().Str("user_id", userID).Msg("la sesión refiere a un usuario inexistente")
		return nil, nil
	}
	var company *entity.Company
	if companyName != "" {
		for _, c := range data.Companies {
			if c.Name == companyName {
				company = c
				break
			}
		}
	}
	return session.Restore(user, company, lastVisited), nil
}

// Save firma el estado de sesión y lo escribe con permisos restringidos.
func (s *SessionStore) Save(sess *session.Session) error {
	var userID, companyName string
	// Lectura directa del estado sin refrescar la marca de acceso: persistir
	// no cuenta como actividad del usuario.
	if company := sess.Company(); company != nil {
		companyName = company.Name
	}
	if user := sess.PeekUser(); user != nil {
		userID = user.ID
	}
	token, err := jwt.GenerateSession(s.secret, userID, companyName, sess.LastVisited(), s.issuer)
	if err != nil {
		return fmt.Errorf("firmar sesión: %w", err)
	}
	return writeAtomic(s.path, []byte(token), 0o600)
}
