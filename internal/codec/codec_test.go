package codec_test

import (
	"testing"

	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/codec"
)

type payload struct {
	Title string   `json:"title" msgpack:"title"`
	Steps []string `json:"steps" msgpack:"steps"`
}

func TestCodecs_RoundTrip(t *testing.T) {
	codecs := []codec.Codec{
		codec.JSON{},
		codec.Msgpack{},
		codec.Compressed{Inner: codec.JSON{}},
		codec.Compressed{Inner: codec.Msgpack{}},
	}

	in := payload{Title: "Reset procedure", Steps: []string{"unplug", "wait", "replug"}}

	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Encode(in)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			var out payload
			if err := c.Decode(data, &out); err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if out.Title != in.Title || len(out.Steps) != len(in.Steps) {
				t.Errorf("round trip = %+v, want %+v", out, in)
			}
		})
	}
}

func TestCompressed_RejectsGarbage(t *testing.T) {
	c := codec.Compressed{Inner: codec.JSON{}}
	var out payload
	if err := c.Decode([]byte("definitely not zstd"), &out); err == nil {
		t.Error("Decode() accepted non-zstd input")
	}
}

func TestCodecs_Names(t *testing.T) {
	if got := (codec.Compressed{Inner: codec.Msgpack{}}).Name(); got != "msgpack+zstd" {
		t.Errorf("Name() = %q, want msgpack+zstd", got)
	}
}
