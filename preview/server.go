// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package preview serves a websocket that builds recipes on demand and sends
// back the resulting textures.
package preview

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"runtime"

	"github.com/SoftbearStudios/soar/cloud"
	"github.com/SoftbearStudios/soar/random"
	"github.com/SoftbearStudios/soar/recipe"
	"github.com/SoftbearStudios/soar/texture"
	"github.com/finnbear/moderation"
)

// DefaultMaxCells limits previews to 512x512.
const DefaultMaxCells = 512 * 512

var (
	ErrName    = errors.New("preview: inappropriate recipe name")
	ErrSurface = errors.New("preview: recipe does not build a surface")
)

type Options struct {
	// Cloud receives published textures, nil for offline.
	Cloud *cloud.Cloud
	// MaxCells bounds the size of a recipe, defaults to DefaultMaxCells.
	MaxCells int
	// Workers bounds concurrent builds, defaults to the number of CPUs.
	Workers int
}

type Server struct {
	cloud    *cloud.Cloud
	maxCells int
	workers  chan struct{}
}

func NewServer(options Options) *Server {
	if options.MaxCells <= 0 || options.MaxCells > recipe.MaxCells {
		options.MaxCells = DefaultMaxCells
	}
	if options.Workers <= 0 {
		options.Workers = runtime.NumCPU()
	}
	return &Server{
		cloud:    options.Cloud,
		maxCells: options.MaxCells,
		workers:  make(chan struct{}, options.Workers),
	}
}

// ServeIndex sends the default recipe as a starting point for clients.
func (s *Server) ServeIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	buf, err := json.Marshal(recipe.Default())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	_, _ = w.Write(buf)
}

func (s *Server) ServeSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error", err)
		return
	}

	NewSocketClient(s, conn).Init()
}

func (s *Server) handle(rng *random.Generator, in inboundJSON) outbound {
	var (
		out outbound
		err error
	)

	switch in.Type {
	case typeBuild:
		var build Build
		if err = json.Unmarshal(in.Data, &build); err == nil {
			out, err = s.build(rng, &build)
		}
	case typeList:
		var list List
		if err = json.Unmarshal(in.Data, &list); err == nil {
			out, err = s.list(&list)
		}
	default:
		err = fmt.Errorf("invalid message type %q", in.Type)
	}

	if err != nil {
		return &Error{Message: err.Error()}
	}
	return out
}

func (s *Server) build(rng *random.Generator, build *Build) (*Texture, error) {
	r := &build.Recipe
	if moderation.Scan(r.Name).Is(moderation.Inappropriate) {
		return nil, ErrName
	}
	if cells := r.Cells(); cells > s.maxCells {
		return nil, fmt.Errorf("%w: %d > %d", recipe.ErrTooBig, cells, s.maxCells)
	}
	r.WithSeed(build.Seed)

	s.workers <- struct{}{}
	output, err := r.Build(rng)
	<-s.workers
	if err != nil {
		return nil, err
	}
	if output.Surface == nil {
		return nil, ErrSurface
	}

	if build.Publish {
		if err := s.cloud.Publish(r, build.Seed, output.Surface); err != nil {
			log.Printf("%s publish error: %v\n", s.cloud, err)
		}
	}

	return &Texture{
		Name:    r.Name,
		Seed:    build.Seed,
		Texture: texture.Encode(output.Surface, build.Compress),
	}, nil
}

func (s *Server) list(list *List) (*Textures, error) {
	textures, err := s.cloud.Textures(list.Recipe)
	if err != nil {
		return nil, err
	}
	return &Textures{Textures: textures}, nil
}
