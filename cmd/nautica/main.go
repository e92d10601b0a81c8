package main

import (
	"os"
	"time"

	"github.com/jhoicas/nautica-cli/internal/application/seed"
	"github.com/jhoicas/nautica-cli/internal/application/session"
	"github.com/jhoicas/nautica-cli/internal/infrastructure/filestore"
	"github.com/jhoicas/nautica-cli/internal/interfaces/cli"
	"github.com/jhoicas/nautica-cli/pkg/config"
	"github.com/jhoicas/nautica-cli/pkg/logger"
)

// Modelo de ejecución: cada invocación carga el estado completo, ejecuta un
// comando y persiste antes de salir. Dos invocaciones simultáneas sobre el
// mismo estado compiten (gana la última escritura); limitación conocida.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	dataStore := filestore.NewDataStore(cfg.State.DataFile)
	data, err := dataStore.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar datos de la aplicación")
	}
	if data == nil {
		log.Info().Str("file", cfg.State.DataFile).Msg("sin datos previos, sembrando dataset inicial")
		data = seed.Default()
	}

	sessionStore := filestore.NewSessionStore(
		cfg.State.SessionFile, cfg.Session.Secret, cfg.Session.Issuer, log,
	)
	sess, err := sessionStore.Load(data)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar sesión")
	}

	ctx := session.NewContext(data, sess, time.Duration(cfg.Session.TTLMinutes)*time.Minute)
	app := cli.NewApp(ctx, log, os.Stdout, os.Stdin)
	code := app.Run(os.Args[1:])

	// Persistir siempre: el comando pudo mutar datos o sesión.
	if err := dataStore.Save(data); err != nil {
		log.Fatal().Err(err).Msg("guardar datos de la aplicación")
	}
	if err := sessionStore.Save(ctx.Session()); err != nil {
		log.Fatal().Err(err).Msg("guardar sesión")
	}
	os.Exit(code)
}
