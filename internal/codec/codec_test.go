package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/mdtodo/internal/codec"
	"github.com/idilsaglam/mdtodo/internal/model"
)

func TestDecodeLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want model.Item
	}{
		{"unchecked", "- [ ] Item 1", model.Item{Text: "Item 1"}},
		{"checked", "- [X] Item 1", model.Item{Text: "Item 1", Done: true}},
		{"lowercase x is not done", "- [x] Item 1", model.Item{Text: "Item 1"}},
		{"trailing whitespace kept", "- [ ] spaced  ", model.Item{Text: "spaced  "}},
		{"prefix only", "- [X] ", model.Item{Done: true}},
		{"short line", "- [X]", model.Item{Done: true}},
		{"very short line", "-", model.Item{}},
		{"multibyte text", "- [ ] café ☕", model.Item{Text: "café ☕"}},
		{"multibyte mark", "- [✓] thing", model.Item{Text: "thing"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, codec.DecodeLine(tc.line))
		})
	}
}

func TestEncodeLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "- [ ] Item 1", codec.EncodeLine(model.Item{Text: "Item 1"}))
	assert.Equal(t, "- [X] Item 1", codec.EncodeLine(model.Item{Text: "Item 1", Done: true}))
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []model.Item
	}{
		{"empty input", "", []model.Item{}},
		{"header only", "# TODO\n\n", []model.Item{}},
		{"one item", "# TODO\n\n- [ ] Item 1\n", []model.Item{{Text: "Item 1"}}},
		{
			"two items",
			"# TODO\n\n- [ ] Item 1\n- [X] Item 2\n",
			[]model.Item{{Text: "Item 1"}, {Text: "Item 2", Done: true}},
		},
		{
			"blank lines skipped",
			"# TODO\n\n\n- [ ] Item 1\n\n\n- [X] Item 2\n\n",
			[]model.Item{{Text: "Item 1"}, {Text: "Item 2", Done: true}},
		},
		{
			"any title is discarded",
			"My chores\n- [ ] Item 1",
			[]model.Item{{Text: "Item 1"}},
		},
		{
			"first line discarded even if it is an item",
			"- [ ] lost\n- [ ] kept\n",
			[]model.Item{{Text: "kept"}},
		},
		{
			"crlf line endings",
			"# TODO\r\n\r\n- [X] Item 1\r\n",
			[]model.Item{{Text: "Item 1", Done: true}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, codec.Decode(tc.text))
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "# TODO\n\n", codec.Encode(nil))
	assert.Equal(t, "# TODO\n\n", codec.Encode([]model.Item{}))
	assert.Equal(t,
		"# TODO\n\n- [ ] Item 1\n- [X] Item 2\n",
		codec.Encode([]model.Item{{Text: "Item 1"}, {Text: "Item 2", Done: true}}),
	)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, line := range []string{"- [ ] text", "- [X] text", "- [ ] trailing ", "- [X] - [ ] nested marker"} {
		doc := codec.Header + line + "\n"
		assert.Equal(t, doc, codec.Encode(codec.Decode(doc)), line)
	}
}

func TestRoundTripReplacesTitle(t *testing.T) {
	t.Parallel()

	got := codec.Encode(codec.Decode("Shopping\n\n- [ ] eggs\n"))
	assert.Equal(t, "# TODO\n\n- [ ] eggs\n", got)
}
