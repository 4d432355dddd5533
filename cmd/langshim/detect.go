package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"langshim/internal/core/engine"
	"langshim/internal/core/guard"
	"langshim/internal/core/lang"
	"langshim/internal/core/marshal"
	"langshim/internal/platform/config"
	perr "langshim/internal/platform/errors"
	"langshim/internal/platform/logger"
	"langshim/internal/services/detect/domain"
)

type detectOptions struct {
	plainText   bool
	hintLang    string
	hintTLD     string
	hintContent string
	hintEnc     int32
	flags       int32
	format      string
	maxChunks   int
}

// fileResult is one output record
type fileResult struct {
	File      string              `json:"file" msgpack:"file"`
	Detection domain.DetectOutput `json:"detection" msgpack:"detection"`
}

func newDetectCmd() *cobra.Command {
	var o detectOptions
	cmd := &cobra.Command{
		Use:   "detect [flags] FILE...",
		Short: "Detect the languages of each FILE (- reads stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, o, args)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&o.plainText, "plain-text", false, "treat input as plain text (default: HTML tags are skipped)")
	f.StringVar(&o.hintLang, "hint-lang", "", "language hint (CLD2 code or BCP-47 tag)")
	f.StringVar(&o.hintTLD, "hint-tld", "", "top-level domain hint, e.g. fr")
	f.StringVar(&o.hintContent, "hint-content-lang", "", "Content-Language style hint, e.g. \"fr, en;q=0.5\"")
	f.Int32Var(&o.hintEnc, "hint-encoding", int32(lang.UnknownEncoding), "encoding hint (CLD2 encoding number)")
	f.Int32Var(&o.flags, "flags", 0, "engine flag bitmask")
	f.StringVar(&o.format, "format", "text", "output format (text|json|msgpack)")
	f.IntVar(&o.maxChunks, "max-chunks", 0, "cap on chunk array length (0 = none)")
	return cmd
}

func selectEngine(cmd *cobra.Command) (engine.Engine, error) {
	name, _ := cmd.Flags().GetString("engine")
	if name == "" {
		name = config.New().MayString("LANGSHIM_ENGINE", "")
	}
	return engine.Select(name)
}

// request builds the marshal request; only flags the user set become hints
func (o detectOptions) request(cmd *cobra.Command, buf []byte) (marshal.Request, error) {
	req := marshal.Request{Buffer: buf, PlainText: o.plainText, Flags: engine.Flags(o.flags)}
	f := cmd.Flags()
	if f.Changed("hint-lang") {
		l := lang.FromCode(o.hintLang)
		if l == lang.UnknownLanguage && !strings.EqualFold(o.hintLang, lang.UnknownLanguage.Code()) {
			return req, perr.InvalidArgf("unknown language %q", o.hintLang)
		}
		req.LanguageHint = &l
	}
	if f.Changed("hint-tld") {
		req.TLDHint = &o.hintTLD
	}
	if f.Changed("hint-content-lang") {
		req.ContentLanguageHint = &o.hintContent
	}
	if f.Changed("hint-encoding") {
		e := lang.Encoding(o.hintEnc)
		req.EncodingHint = &e
	}
	return req, nil
}

func runDetect(cmd *cobra.Command, o detectOptions, files []string) error {
	w, err := newWriter(o.format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	eng, err := selectEngine(cmd)
	if err != nil {
		return err
	}
	log := logger.Named("cli").With().Str("engine", eng.Name()).Logger()
	alloc := marshal.HeapAllocator{Limit: o.maxChunks}

	failed := 0
	for _, name := range files {
		buf, err := readInput(cmd.InOrStdin(), name)
		if err != nil {
			return err
		}
		req, err := o.request(cmd, buf)
		if err != nil {
			return err
		}
		out, err := guard.Run(eng, alloc, req)
		if st := guard.StatusOf(err); st != guard.StatusOK {
			log.Debug().Err(err).Str("file", name).Msg("detect failed")
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: status %d (%s)\n", name, int(st), st.State())
			failed++
			continue
		}
		rec := fileResult{File: name, Detection: domain.FromOutcome(eng.Name(), &out)}
		out.Release(alloc)
		if err := w.write(rec); err != nil {
			return err
		}
	}
	if err := w.flush(); err != nil {
		return err
	}
	if failed > 0 {
		return &statusError{msg: fmt.Sprintf("%d of %d inputs failed", failed, len(files))}
	}
	return nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "read stdin")
		}
		return b, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "read %s", name)
	}
	return b, nil
}
