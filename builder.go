// File: lixenwraith/input/builder.go
package input

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Builder provides a fluent interface for building resolvers.
//
// Sources are consulted in this order: explicit sources (WithSource), the
// process environment, env files, then input files. Earlier sources win.
type Builder struct {
	opts       Options
	sources    []Source
	processEnv bool
	envFiles   []string
	files      []string
	discovery  *FileDiscoveryOptions
	logger     *zap.Logger
	err        error
}

// NewBuilder creates a new resolver builder
func NewBuilder() *Builder {
	return &Builder{
		opts:       DefaultOptions(),
		processEnv: true,
		logger:     zap.NewNop(),
	}
}

// WithPrefix sets the prefix of canonical variable names
func (b *Builder) WithPrefix(prefix string) *Builder {
	b.opts.Prefix = prefix
	return b
}

// WithNameTransform sets a custom key to variable name transformer
func (b *Builder) WithNameTransform(fn NameTransformFunc) *Builder {
	b.opts.NameTransform = fn
	return b
}

// WithLineSeparator sets the separator multi-line values are rejoined with
func (b *Builder) WithLineSeparator(sep string) *Builder {
	b.opts.LineSeparator = sep
	return b
}

// WithSource adds sources that take precedence over the process environment
func (b *Builder) WithSource(sources ...Source) *Builder {
	for _, s := range sources {
		if s == nil {
			b.err = errors.New("nil source")
			continue
		}
		b.sources = append(b.sources, s)
	}
	return b
}

// WithoutProcessEnv stops the resolver from reading the process environment
func (b *Builder) WithoutProcessEnv() *Builder {
	b.processEnv = false
	return b
}

// WithEnvFile adds a .env style file below the process environment
func (b *Builder) WithEnvFile(path string) *Builder {
	b.envFiles = append(b.envFiles, path)
	return b
}

// WithFile adds a TOML, JSON or YAML input file below env files
func (b *Builder) WithFile(path string) *Builder {
	b.files = append(b.files, path)
	return b
}

// WithFileDiscovery searches for an env file at build time
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// WithLogger sets the logger used by the builder and the resolver
func (b *Builder) WithLogger(logger *zap.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build creates the Resolver with all specified options.
// Missing files are not fatal: the resolver is returned along with an error
// matching ErrFileNotFound.
func (b *Builder) Build() (*Resolver, error) {
	if b.err != nil {
		return nil, b.err
	}

	sources := append([]Source(nil), b.sources...)
	if b.processEnv {
		sources = append(sources, FromEnv())
	}

	envFiles := b.envFiles
	if b.discovery != nil {
		if path := DiscoverEnvFile(*b.discovery); path != "" {
			b.logger.Debug("discovered env file", zap.String("path", path))
			envFiles = append(envFiles, path)
		}
	}

	var loadErrors []error

	for _, path := range envFiles {
		src, err := FromEnvFile(path)
		if err != nil {
			if errors.Is(err, ErrFileNotFound) {
				b.logger.Warn("env file not found", zap.String("path", path))
				loadErrors = append(loadErrors, err)
				continue
			}
			return nil, err
		}
		b.logger.Debug("loaded env file", zap.String("path", path), zap.Int("variables", len(src)))
		sources = append(sources, src)
	}

	for _, path := range b.files {
		src, err := FromFile(path)
		if err != nil {
			if errors.Is(err, ErrFileNotFound) {
				b.logger.Warn("input file not found", zap.String("path", path))
				loadErrors = append(loadErrors, err)
				continue
			}
			return nil, err
		}
		b.logger.Debug("loaded input file", zap.String("path", path), zap.Int("variables", len(src)))
		sources = append(sources, src)
	}

	r := NewWithOptions(Chain(sources...), b.opts).WithLogger(b.logger)

	// ErrFileNotFound or nil
	return r, errors.Join(loadErrors...)
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Resolver {
	r, err := b.Build()
	if err != nil {
		// Missing files are not fatal, the resolver works with what was found
		if !errors.Is(err, ErrFileNotFound) {
			panic(fmt.Sprintf("resolver build failed: %v", err))
		}
	}
	return r
}
