package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"agrismart/database"
	"agrismart/entities"
	"agrismart/pkg/ai"
	"agrismart/pkg/crop/repositoryImp"
	"agrismart/pkg/crop/service"
	"agrismart/pkg/insight"
)

const analysisPayload = `{
  "idealConditions": {"temperatureRange": "18-27°C", "humidityRange": "55-75%", "rainfallRequirement": "450mm", "soilType": "Loam"},
  "fertilizers": [],
  "pestsAndDiseases": [],
  "marketOutlook": {"averagePrice": "200", "currency": "$", "trend": "Up", "seasonalInsight": "rising"},
  "harvestTips": [],
  "summary": "ok",
  "totalDurationDays": 60
}`

type stubLLM struct {
	raw        string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubLLM) Invoke(_ context.Context, prompt string, _ *genai.Schema) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.raw, nil
}

type stubWeather struct{ r entities.WeatherReading }

func (s stubWeather) Current() entities.WeatherReading { return s.r }

var testDBSeq int

func newSvc(t *testing.T, llm ai.Client) *CropSvc {
	t.Helper()
	testDBSeq++
	db := database.Open(fmt.Sprintf("file:croptest%d?mode=memory&cache=shared", testDBSeq))
	w := stubWeather{r: entities.WeatherReading{Temperature: 24, Humidity: 65, WindSpeed: 12, Condition: "Sunny"}}
	return New(llm, repositoryImp.New(db), w, zap.NewNop())
}

func validInput() entities.CropInput {
	return entities.CropInput{
		CropName:   "Wheat",
		LandArea:   "5",
		LandUnit:   entities.LandUnitAcres,
		Location:   "Kansas",
		SowingDate: "2024-01-01",
	}
}

func TestAddCropSuccess(t *testing.T) {
	llm := &stubLLM{raw: analysisPayload}
	s := newSvc(t, llm)

	rec, err := s.AddCrop(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "Wheat", rec.CropName)
	assert.Equal(t, 60, rec.Analysis.TotalDurationDays)
	assert.Equal(t, 1, llm.calls)
	assert.Contains(t, llm.lastPrompt, "Wheat")
	assert.Contains(t, llm.lastPrompt, "Kansas")

	// the record round-trips through the store, analysis included
	got, err := s.GetCrop(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Analysis, got.Analysis)
}

func TestAddCropRejectsInputBeforeAnyCall(t *testing.T) {
	cases := []struct {
		name   string
		change func(in *entities.CropInput)
		field  string
	}{
		{"empty crop name", func(in *entities.CropInput) { in.CropName = "  " }, "crop_name"},
		{"empty location", func(in *entities.CropInput) { in.Location = "" }, "location"},
		{"non-numeric area", func(in *entities.CropInput) { in.LandArea = "lots" }, "land_area"},
		{"zero area", func(in *entities.CropInput) { in.LandArea = "0" }, "land_area"},
		{"negative area", func(in *entities.CropInput) { in.LandArea = "-2" }, "land_area"},
		{"unknown unit", func(in *entities.CropInput) { in.LandUnit = "rai" }, "land_unit"},
		{"bad date", func(in *entities.CropInput) { in.SowingDate = "01/06/2024" }, "sowing_date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			llm := &stubLLM{raw: analysisPayload}
			s := newSvc(t, llm)
			in := validInput()
			tc.change(&in)

			_, err := s.AddCrop(context.Background(), in)
			var ie *service.InputError
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tc.field, ie.Field)
			assert.Zero(t, llm.calls, "gateway must not be invoked for invalid input")
		})
	}
}

func TestAddCropSowingDateDefaultsToToday(t *testing.T) {
	llm := &stubLLM{raw: analysisPayload}
	s := newSvc(t, llm)
	s.now = func() time.Time { return time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC) }

	in := validInput()
	in.SowingDate = ""
	rec, err := s.AddCrop(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), rec.SowingDate)
	assert.Contains(t, llm.lastPrompt, "2024-05-10")
}

func TestAddCropGatewayFailureLeavesStoreUntouched(t *testing.T) {
	llm := &stubLLM{err: &ai.GatewayError{Cause: errors.New("quota exceeded")}}
	s := newSvc(t, llm)

	_, err := s.AddCrop(context.Background(), validInput())
	var gw *ai.GatewayError
	require.ErrorAs(t, err, &gw)

	recs, err := s.ListCrops()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestAddCropDecodeFailureLeavesStoreUntouched(t *testing.T) {
	llm := &stubLLM{raw: `{"summary": "partial"}`}
	s := newSvc(t, llm)

	_, err := s.AddCrop(context.Background(), validInput())
	require.True(t, insight.IsDecodeError(err))

	recs, err := s.ListCrops()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestAddCropResubmitIsIndependent(t *testing.T) {
	llm := &stubLLM{err: ai.ErrEmptyResponse}
	s := newSvc(t, llm)

	_, err := s.AddCrop(context.Background(), validInput())
	require.ErrorIs(t, err, ai.ErrEmptyResponse)

	llm.err = nil
	llm.raw = analysisPayload
	rec, err := s.AddCrop(context.Background(), validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 2, llm.calls)
}

func TestListCropsMostRecentFirst(t *testing.T) {
	llm := &stubLLM{raw: analysisPayload}
	s := newSvc(t, llm)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"Wheat", "Maize", "Rice"} {
		s.now = func() time.Time { return base.Add(time.Duration(i) * time.Hour) }
		in := validInput()
		in.CropName = name
		_, err := s.AddCrop(context.Background(), in)
		require.NoError(t, err)
	}

	recs, err := s.ListCrops()
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Rice", recs[0].CropName)
	assert.Equal(t, "Wheat", recs[2].CropName)
}
