package session

import "github.com/jhoicas/nautica-cli/internal/domain/entity"

// Store es el puerto de persistencia de la sesión. La sesión se guarda como
// blob opaco independiente de los datos de la aplicación; al cargar se
// re-enlazan usuario y empresa contra el grafo ya cargado.
type Store interface {
	// Load devuelve la sesión persistida re-enlazada contra data, o nil si
	// no hay sesión guardada. Un blob corrupto o con firma inválida degrada
	// a nil (equivale a no haber iniciado sesión), nunca a error.
	Load(data *entity.AppData) (*Session, error)
	Save(s *Session) error
}
