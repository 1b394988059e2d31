package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"agrismart/pkg/ai"
	cropservice "agrismart/pkg/crop/service"
	"agrismart/pkg/insight"
)

const rotationPayload = `{
  "introduction": "Rotation restores the soil.",
  "steps": [
    {"season": "Next Season", "recommendedCrop": "Beans", "reason": "Break pest cycle", "soilBenefit": "Fixes nitrogen"},
    {"season": "Following Season", "recommendedCrop": "Cabbage", "reason": "Use residual N", "soilBenefit": "Loosens soil"},
    {"season": "Third Season", "recommendedCrop": "Carrots", "reason": "Low demand", "soilBenefit": "Improves structure"}
  ]
}`

type stubLLM struct {
	raw        string
	err        error
	calls      int
	lastSchema *genai.Schema
}

func (s *stubLLM) Invoke(_ context.Context, _ string, schema *genai.Schema) (string, error) {
	s.calls++
	s.lastSchema = schema
	if s.err != nil {
		return "", s.err
	}
	return s.raw, nil
}

func TestPlanSuccess(t *testing.T) {
	llm := &stubLLM{raw: rotationPayload}
	s := New(llm, zap.NewNop())

	plan, err := s.Plan(context.Background(), "Sugarcane", "3 acres", "Nakhon Sawan")
	require.NoError(t, err)
	assert.Equal(t, "Rotation restores the soil.", plan.Introduction)
	assert.Len(t, plan.Steps, 3)
	assert.Equal(t, 1, llm.calls)
	// the rotation pipeline must declare the rotation shape, not the analysis one
	require.NotNil(t, llm.lastSchema)
	assert.Contains(t, llm.lastSchema.Required, "introduction")
}

func TestPlanRejectsEmptyInputsBeforeAnyCall(t *testing.T) {
	cases := []struct {
		name     string
		lastCrop string
		landSize string
		loc      string
		field    string
	}{
		{"no crop", " ", "3 acres", "here", "last_crop"},
		{"no size", "Rice", "", "here", "land_size"},
		{"no location", "Rice", "3 acres", "  ", "location"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &stubLLM{raw: rotationPayload}
			s := New(llm, zap.NewNop())
			_, err := s.Plan(context.Background(), tc.lastCrop, tc.landSize, tc.loc)
			var ie *cropservice.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.field, ie.Field)
			assert.Zero(t, llm.calls)
		})
	}
}

func TestPlanGatewayFailure(t *testing.T) {
	llm := &stubLLM{err: &ai.GatewayError{Cause: errors.New("network down")}}
	s := New(llm, zap.NewNop())
	_, err := s.Plan(context.Background(), "Rice", "2 hectares", "Bali")
	var gw *ai.GatewayError
	require.ErrorAs(t, err, &gw)
}

func TestPlanDecodeFailure(t *testing.T) {
	llm := &stubLLM{raw: `{"introduction": "ok", "steps": [{"season": "Next"}]}`}
	s := New(llm, zap.NewNop())
	_, err := s.Plan(context.Background(), "Rice", "2 hectares", "Bali")
	require.True(t, insight.IsDecodeError(err))
}
