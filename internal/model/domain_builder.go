package model

import "go.uber.org/zap"

// DomainBuilder enumerates the legal candidate triples for sessions.
type DomainBuilder interface {
	// BuildAll returns the sessions that survive the data-integrity checks
	// (in input order) and their domains keyed by session key. A session
	// with an empty domain is kept: empty is a reportable outcome, not an
	// error.
	BuildAll(sessions []Session) ([]Session, map[string]Domain)
}

func NewDomainBuilder(cfg Config, dataset *Dataset, logger *zap.Logger) DomainBuilder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newDomainBuilderImplementation(cfg, dataset, logger)
}
