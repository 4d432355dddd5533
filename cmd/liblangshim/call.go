package main

import (
	"sync"

	"langshim/internal/core/engine"
	_ "langshim/internal/core/engine/cld2"
	_ "langshim/internal/core/engine/script"
	"langshim/internal/core/guard"
	"langshim/internal/core/lang"
	"langshim/internal/core/marshal"
	"langshim/internal/platform/config"
	perr "langshim/internal/platform/errors"
)

// call is one langshim_detect invocation after C values are read. Pointer
// checks are done before it is built; nilSlot records a missing output slot
type call struct {
	buf      []byte
	plain    bool
	content  *string
	tld      *string
	encoding lang.Encoding
	language lang.Language
	flags    engine.Flags
	badLen   bool
	nilSlot  bool
}

// activeEngine resolves LANGSHIM_ENGINE once per process
var activeEngine = sync.OnceValues(func() (engine.Engine, error) {
	return engine.Select(config.New().Prefix("LANGSHIM_").MayString("ENGINE", ""))
})

func (c call) request() marshal.Request {
	enc, l := c.encoding, c.language
	return marshal.Request{
		Buffer:              c.buf,
		PlainText:           c.plain,
		ContentLanguageHint: c.content,
		TLDHint:             c.tld,
		// integer hints are always present; callers pass the engine's own
		// sentinels to mean none
		EncodingHint: &enc,
		LanguageHint: &l,
		Flags:        c.flags,
	}
}

func (c call) validate() error {
	switch {
	case c.badLen:
		return perr.InvalidArgf("invalid buffer length")
	case c.nilSlot:
		return perr.InvalidArgf("required output slot is NULL")
	}
	return nil
}

// run validates and detects under the guard. Validation and engine lookup
// failures are StatusFailure like any other
func run(alloc marshal.Allocator, c call) (marshal.Outcome, guard.Status) {
	return guard.Protect(func() (marshal.Outcome, error) {
		if err := c.validate(); err != nil {
			return marshal.Outcome{}, err
		}
		eng, err := activeEngine()
		if err != nil {
			return marshal.Outcome{}, err
		}
		return marshal.Marshal(eng, alloc, c.request())
	})
}

// engineName is reported by langshim_engine_name; "" when none resolves
func engineName() string {
	eng, err := activeEngine()
	if err != nil {
		return ""
	}
	return eng.Name()
}
