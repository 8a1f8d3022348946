package crimping

import (
	"context"
	"errors"

	"crimpqc/internal/errs"
	"crimpqc/internal/ports"
)

func (s *Service) ListTerminals(ctx context.Context) ([]ports.TerminalSpec, error) {
	if err := s.checkRefs(ctx); err != nil {
		return nil, err
	}
	return s.refs.ListTerminals(ctx)
}

func (s *Service) ListWires(ctx context.Context) ([]ports.WireSpec, error) {
	if err := s.checkRefs(ctx); err != nil {
		return nil, err
	}
	return s.refs.ListWires(ctx)
}

func (s *Service) ListTools(ctx context.Context) ([]ports.CrimpingTool, error) {
	if err := s.checkRefs(ctx); err != nil {
		return nil, err
	}
	return s.refs.ListTools(ctx)
}

func (s *Service) ListStandards(ctx context.Context) ([]ports.PullForceStandard, error) {
	if err := s.checkRefs(ctx); err != nil {
		return nil, err
	}
	return s.refs.ListStandards(ctx)
}

func (s *Service) checkRefs(ctx context.Context) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	if s.refs == nil {
		return errors.New("reference repository is required")
	}
	return nil
}
