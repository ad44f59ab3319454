// Package modkit provides module wiring, options and core deps
package modkit

import "tutorhub/internal/modkit/module"

// Module is the common surface for API modules
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
