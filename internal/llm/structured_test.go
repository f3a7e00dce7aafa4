package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	WhyThis string   `json:"why_this"`
	Flags   []string `json:"flags"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	result, err := ExtractJSON[testPayload](`{"why_this":"taper","flags":["rest"]}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "taper", result.WhyThis)
	assert.Equal(t, []string{"rest"}, result.Flags)
}

func TestExtractJSON_FencedJSON(t *testing.T) {
	raw := "```json\n{\"why_this\":\"build\"}\n```"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "build", result.WhyThis)
}

func TestExtractJSON_SurroundingText(t *testing.T) {
	raw := "Here is your coaching:\n{\"why_this\":\"sharpen\"}\nEnjoy the swim!"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "sharpen", result.WhyThis)
}

func TestExtractJSON_NestedBraces(t *testing.T) {
	type nested struct {
		Outer struct {
			Inner string `json:"inner"`
		} `json:"outer"`
	}
	result, err := ExtractJSON[nested](`prefix {"outer":{"inner":"x"}} {"second":1}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "x", result.Outer.Inner)
}

func TestExtractJSON_NoJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload]("no object here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_UnbalancedObject(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"why_this":"cut off`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_InvalidJSON(t *testing.T) {
	_, err := ExtractJSON[testPayload](`{"why_this": nope}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Comments(t *testing.T) {
	raw := "{\n  // the reason\n  \"why_this\": \"a // not a comment\", /* trailing */\n  \"flags\": []\n}"
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "a // not a comment", result.WhyThis)
}

func TestExtractJSON_TrailingCommas(t *testing.T) {
	raw := `{"why_this":"x, y","flags":["a","b",],}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "x, y", result.WhyThis)
	assert.Equal(t, []string{"a", "b"}, result.Flags)
}

func TestExtractJSON_EscapedQuotesAndBraces(t *testing.T) {
	raw := `{"why_this":"say \"hi\" {not} a brace"}`
	result, err := ExtractJSON[testPayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `say "hi" {not} a brace`, result.WhyThis)
}

func TestExtractJSON_Validation(t *testing.T) {
	validator := func(p testPayload) error {
		if p.WhyThis == "" {
			return fmt.Errorf("why_this is required")
		}
		return nil
	}

	_, err := ExtractJSON[testPayload](`{"flags":[]}`, validator)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "why_this is required")

	result, err := ExtractJSON[testPayload](`{"why_this":"ok"}`, validator)
	require.NoError(t, err)
	assert.Equal(t, "ok", result.WhyThis)
}
