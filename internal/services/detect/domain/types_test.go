package domain

import (
	"encoding/json"
	"math"
	"testing"

	"langshim/internal/core/lang"
	"langshim/internal/core/marshal"
)

func TestFromOutcome(t *testing.T) {
	o := &marshal.Outcome{
		Result:           lang.French,
		Language3:        [3]int32{int32(lang.French), int32(lang.English), int32(lang.UnknownLanguage)},
		Percent3:         [3]int32{70, 29, 0},
		NormalizedScore3: [3]float64{900, math.NaN(), 0},
		TextBytes:        120,
		Reliable:         true,
		Offsets:          []int32{0, 80},
		Sizes:            []uint16{80, 45},
		Langs:            []uint16{uint16(lang.French), uint16(lang.English)},
	}
	out := FromOutcome("script", o)
	if out.Engine != "script" || out.ResultCode != "fr" || out.ResultName != "French" || !out.Reliable {
		t.Fatalf("scalars = %+v", out)
	}
	if len(out.Top) != 3 || out.Top[1].Code != "en" || out.Top[1].Score != 0 || out.Top[2].Lang != int32(lang.UnknownLanguage) {
		t.Fatalf("top = %+v", out.Top)
	}
	if len(out.Chunks) != 2 || out.Chunks[1].Offset != 80 || out.Chunks[1].Code != "en" {
		t.Fatalf("chunks = %+v", out.Chunks)
	}
	if _, err := json.Marshal(out); err != nil {
		t.Fatalf("output must encode: %v", err)
	}
}

func TestFromOutcome_NoChunksIsEmptyList(t *testing.T) {
	out := FromOutcome("script", &marshal.Outcome{Offsets: []int32{}, Sizes: []uint16{}, Langs: []uint16{}})
	b, _ := json.Marshal(out)
	var back map[string]any
	_ = json.Unmarshal(b, &back)
	if chunks, ok := back["chunks"].([]any); !ok || len(chunks) != 0 {
		t.Fatalf("chunks should encode as [], got %v", back["chunks"])
	}
}

func TestLanguages(t *testing.T) {
	rows := Languages()
	if len(rows) == 0 || rows[0].ID != int32(lang.English) || rows[0].Code != "en" || rows[0].BCP47 != "en" {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
}
