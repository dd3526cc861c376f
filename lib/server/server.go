package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
	"github.com/pescuma/fontvault/lib/storages"
)

type Options struct {
	Port uint
}

func Run(console consoles.Console, storage storages.Storage, opts *Options) error {
	s := newServer(opts)

	console.Printf("Loading existing data...\n")

	err := s.load(storage)
	if err != nil {
		return err
	}

	console.Printf("Starting server on port %v...\n", s.opts.Port)

	return s.run()
}

type server struct {
	opts *Options

	storage   storages.Storage
	fonts     *model.FontFiles
	families  *model.Families
	archives  *model.Archives
	publishes *model.Publishes
}

func newServer(opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2428
	}

	return &server{
		opts: opts,
	}
}

func (s *server) load(storage storages.Storage) error {
	var err error

	s.storage = storage

	s.fonts, err = storage.LoadFontFiles()
	if err != nil {
		return err
	}

	s.families, err = storage.LoadFamilies()
	if err != nil {
		return err
	}

	s.archives, err = storage.LoadArchives()
	if err != nil {
		return err
	}

	s.publishes, err = storage.LoadPublishes()
	if err != nil {
		return err
	}

	return nil
}

func (s *server) run() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	s.initFonts(r)
	s.initFamilies(r)
	s.initArchives(r)
	s.initPublishes(r)

	return r.Run(fmt.Sprintf(":%v", s.opts.Port))
}
