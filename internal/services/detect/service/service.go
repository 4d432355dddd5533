// Package service runs guarded detections for the HTTP probe
package service

import (
	"context"

	"langshim/internal/core/engine"
	"langshim/internal/core/guard"
	"langshim/internal/core/lang"
	"langshim/internal/core/marshal"
	perr "langshim/internal/platform/errors"
	"langshim/internal/platform/logger"
	pnet "langshim/internal/platform/net"
	"langshim/internal/services/detect/domain"

	"github.com/rs/zerolog"
)

// DefaultMaxTextBytes caps the text of one request
const DefaultMaxTextBytes = 1 << 20

// Options tunes a Service
type Options struct {
	MaxTextBytes int // <= 0 uses DefaultMaxTextBytes
}

// Service is the detect use case
type Service struct {
	eng     engine.Engine
	alloc   marshal.Allocator
	maxText int
}

// New builds a Service over eng. alloc owns every outcome array
func New(eng engine.Engine, alloc marshal.Allocator, opt Options) *Service {
	if opt.MaxTextBytes <= 0 {
		opt.MaxTextBytes = DefaultMaxTextBytes
	}
	return &Service{eng: eng, alloc: alloc, maxText: opt.MaxTextBytes}
}

var _ domain.ServicePort = (*Service)(nil)

// EngineName reports the engine serving detections
func (s *Service) EngineName() string { return s.eng.Name() }

// MaxTextBytes reports the per-request text cap
func (s *Service) MaxTextBytes() int { return s.maxText }

// Detect runs one detection. Exhaustion surfaces as OutOfMemory so the caller
// may retry; everything else is an engine failure
func (s *Service) Detect(ctx context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	if len(in.Text) > s.maxText {
		return domain.DetectOutput{}, perr.Newf(perr.ErrorCodeValidation, "text exceeds %d bytes", s.maxText)
	}
	ctx = pnet.WithEngine(ctx, s.eng.Name())
	log := logger.C(ctx)

	out, err := guard.Run(s.eng, s.alloc, request(in))
	if st := guard.StatusOf(err); st != guard.StatusOK {
		lvl := zerolog.ErrorLevel
		if st.Retryable() {
			lvl = zerolog.WarnLevel
		}
		log.WithLevel(lvl).Err(err).Str("status", st.State().String()).Int("text_bytes", len(in.Text)).Msg("detect failed")
		return domain.DetectOutput{}, perr.WithOp(failure(st, err), "detect")
	}
	defer out.Release(s.alloc)

	res := domain.FromOutcome(s.eng.Name(), &out)
	log.Debug().
		Str("result", res.ResultCode).
		Bool("reliable", res.Reliable).
		Int("chunks", len(res.Chunks)).
		Msg("detect ok")
	return res, nil
}

// Languages lists the language table
func (s *Service) Languages(context.Context) ([]domain.Language, error) {
	return domain.Languages(), nil
}

func failure(st guard.Status, err error) error {
	switch {
	case st == guard.StatusNoMemory:
		return perr.Wrap(err, perr.ErrorCodeOutOfMemory, "detection ran out of memory, retry")
	case perr.IsCode(err, perr.ErrorCodePanic):
		return perr.Wrap(err, perr.ErrorCodePanic, "detection failed")
	default:
		return perr.Wrap(err, perr.ErrorCodeEngine, "detection failed")
	}
}

// request maps the wire input onto a marshal request. plain_text defaults to
// true; an unknown language code cannot reach here past validation
func request(in domain.DetectInput) marshal.Request {
	req := marshal.Request{
		Buffer:              []byte(in.Text),
		PlainText:           in.PlainText == nil || *in.PlainText,
		ContentLanguageHint: in.ContentLanguageHint,
		TLDHint:             in.TLDHint,
		Flags:               engine.Flags(in.Flags),
	}
	if in.EncodingHint != nil {
		e := lang.Encoding(*in.EncodingHint)
		req.EncodingHint = &e
	}
	if in.LanguageHint != nil {
		l := lang.FromCode(*in.LanguageHint)
		req.LanguageHint = &l
	}
	return req
}
