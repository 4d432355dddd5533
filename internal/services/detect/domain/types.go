// Package domain holds the detect service contracts and wire types. The
// output types carry json and msgpack tags and are shared with the CLI
package domain

import (
	"context"

	"langshim/internal/core/lang"
	"langshim/internal/core/marshal"
)

// DetectInput is the POST /v1/detect body. Hints are optional; a nil hint is
// absent, which differs from a present English "en"
type DetectInput struct {
	Text                string  `json:"text"`
	PlainText           *bool   `json:"plain_text"`
	ContentLanguageHint *string `json:"content_language_hint" validate:"omitempty,max=256"`
	TLDHint             *string `json:"tld_hint" validate:"omitempty,max=63"`
	EncodingHint        *int32  `json:"encoding_hint" validate:"omitempty,min=0,max=24"`
	LanguageHint        *string `json:"language_hint" validate:"omitempty,lang_code"`
	Flags               int32   `json:"flags" validate:"min=0"`
}

// Ranked is one of the three top languages
type Ranked struct {
	Lang    int32   `json:"lang" msgpack:"lang"`
	Code    string  `json:"code" msgpack:"code"`
	Name    string  `json:"name" msgpack:"name"`
	Percent int32   `json:"percent" msgpack:"percent"`
	Score   float64 `json:"score" msgpack:"score"`
}

// Chunk is one contiguous run of a single language
type Chunk struct {
	Offset int32  `json:"offset" msgpack:"offset"`
	Bytes  uint16 `json:"bytes" msgpack:"bytes"`
	Lang   uint16 `json:"lang" msgpack:"lang"`
	Code   string `json:"code" msgpack:"code"`
}

// DetectOutput is a successful detection
type DetectOutput struct {
	Engine     string   `json:"engine" msgpack:"engine"`
	Result     int32    `json:"result" msgpack:"result"`
	ResultCode string   `json:"result_code" msgpack:"result_code"`
	ResultName string   `json:"result_name" msgpack:"result_name"`
	Top        []Ranked `json:"top" msgpack:"top"`
	TextBytes  int32    `json:"text_bytes" msgpack:"text_bytes"`
	Reliable   bool     `json:"reliable" msgpack:"reliable"`
	Chunks     []Chunk  `json:"chunks" msgpack:"chunks"`
}

// Language is a row of GET /v1/languages
type Language struct {
	ID    int32  `json:"id" msgpack:"id"`
	Code  string `json:"code" msgpack:"code"`
	Name  string `json:"name" msgpack:"name"`
	BCP47 string `json:"bcp47" msgpack:"bcp47"`
}

// ServicePort is consumed by handlers
type ServicePort interface {
	Detect(ctx context.Context, in DetectInput) (DetectOutput, error)
	Languages(ctx context.Context) ([]Language, error)
	EngineName() string
}

// FromOutcome builds the wire view of a marshaled outcome. Non-finite scores
// become 0 so the result always encodes as JSON
func FromOutcome(engineName string, o *marshal.Outcome) DetectOutput {
	out := DetectOutput{
		Engine:     engineName,
		Result:     int32(o.Result),
		ResultCode: o.Result.Code(),
		ResultName: o.Result.Name(),
		Top:        make([]Ranked, 0, 3),
		TextBytes:  o.TextBytes,
		Reliable:   o.Reliable,
		Chunks:     make([]Chunk, o.NumChunks()),
	}
	for i := range 3 {
		l := lang.Language(o.Language3[i])
		out.Top = append(out.Top, Ranked{
			Lang:    o.Language3[i],
			Code:    l.Code(),
			Name:    l.Name(),
			Percent: o.Percent3[i],
			Score:   o.Score(i),
		})
	}
	for i := range out.Chunks {
		out.Chunks[i] = Chunk{
			Offset: o.Offsets[i],
			Bytes:  o.Sizes[i],
			Lang:   o.Langs[i],
			Code:   lang.Language(o.Langs[i]).Code(),
		}
	}
	return out
}

// Languages lists every known language
func Languages() []Language {
	all := lang.All()
	out := make([]Language, 0, len(all))
	for _, l := range all {
		out = append(out, Language{ID: int32(l), Code: l.Code(), Name: l.Name(), BCP47: l.Tag().String()})
	}
	return out
}
