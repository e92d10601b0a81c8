package repository

import "github.com/jhoicas/nautica-cli/internal/domain/entity"

// DataStore es el puerto de persistencia del estado de la aplicación.
// El formato en disco es opaco para el dominio; solo se exige que el grafo
// de entidades sobreviva un ciclo save/load preservando la identidad por
// clave (Membership→User por ID, Product→Category por CatID).
type DataStore interface {
	// Load devuelve el estado persistido, o nil si aún no existe
	// (el llamador siembra los datos por defecto).
	Load() (*entity.AppData, error)
	Save(data *entity.AppData) error
}
