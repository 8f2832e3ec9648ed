package main

import (
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cosmicfolio/cosmicfolio/assets"
	"github.com/cosmicfolio/cosmicfolio/internal/config"
	"github.com/cosmicfolio/cosmicfolio/internal/game"
	"github.com/cosmicfolio/cosmicfolio/internal/store"
	"github.com/cosmicfolio/cosmicfolio/internal/world"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var contentFile string

//nolint:gochecknoglobals // Cobra boilerplate
var storePath string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cosmicfolio",
	Short: "Explore a portfolio as a solar system",
	Long: `cosmicfolio renders a career as a small solar system: jobs orbit the sun
as planets with their projects as moons, and skills are stars waiting to be discovered.

Running without a subcommand opens the window.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWindow,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config overlay (default is built in)")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "portfolio YAML (default is the embedded portfolio)")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "SQLite state file, or :memory: (default is under the user config dir)")
}

// session is everything a command needs: config, content, the durable store and the scene.
type session struct {
	cfg      config.Config
	content  *world.Content
	kv       *store.KV
	notified *store.Notified
	scene    *game.Scene
}

func openSession() (s *session, err error) {
	s = &session{}

	s.cfg, err = config.Load(configFile)
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return nil, err
	}

	s.content, err = loadContent()
	if err != nil {
		return nil, err
	}

	s.notified = openNotified(s)

	s.scene, err = game.NewScene(s.content, s.cfg, s.notified)
	if err != nil {
		s.closeStore()
		err = errors.Wrap(err, "failed to build scene")
		return nil, err
	}
	return s, nil
}

// Close stops the scene and releases the store.
func (s *session) Close() {
	s.scene.Close()
	s.closeStore()
}

func (s *session) closeStore() {
	if s.kv == nil {
		return
	}
	err := s.kv.Close()
	if err != nil {
		log.Printf("store: close: %v", err)
	}
	s.kv = nil
}

// openNotified opens the durable announced set. Without a usable store file
// banners are tracked in memory for this run only.
func openNotified(s *session) *store.Notified {
	n, err := loadNotified(s)
	if err == nil {
		return n
	}
	log.Printf("store: %v; achievement banners will not persist", err)
	s.closeStore()
	n, _ = store.LoadNotified(store.Memory{})
	return n
}

func loadNotified(s *session) (n *store.Notified, err error) {
	path, err := resolveStorePath(s.cfg)
	if err != nil {
		return nil, err
	}
	if verbose {
		log.Printf("store: %s", path)
	}
	s.kv, err = store.OpenSQLite(path)
	if err != nil {
		return nil, err
	}
	return store.LoadNotified(s.kv)
}

func loadContent() (content *world.Content, err error) {
	if contentFile == "" {
		content, err = world.LoadContent(assets.Portfolio)
		if err != nil {
			err = errors.Wrap(err, "failed to load embedded portfolio")
		}
		return content, err
	}
	if verbose {
		log.Printf("content: %s", contentFile)
	}
	return world.LoadContentFile(contentFile)
}

func resolveStorePath(cfg config.Config) (string, error) {
	switch {
	case storePath != "":
		return storePath, nil
	case cfg.Store != "":
		return cfg.Store, nil
	default:
		return store.DefaultPath()
	}
}
