package synthesis

import (
	"math"
	"testing"

	"github.com/choulifeisgood/valuation-agent/internal/models"
)

func TestRatingForUpside_Ladder(t *testing.T) {
	cases := []struct {
		upside float64
		want   models.Rating
	}{
		{-20, models.RatingSell},
		{-10, models.RatingReduce},
		{0, models.RatingHold},
		{10, models.RatingAccumulate},
		{20, models.RatingBuy},
		{35, models.RatingStrongBuy},
	}
	for _, tc := range cases {
		if got := RatingForUpside(models.Float(tc.upside)); got != tc.want {
			t.Errorf("RatingForUpside(%v) = %s, want %s", tc.upside, got, tc.want)
		}
	}
}

func TestRatingForUpside_Boundaries(t *testing.T) {
	cases := []struct {
		upside float64
		want   models.Rating
	}{
		{30, models.RatingStrongBuy},
		{15, models.RatingBuy},
		{5, models.RatingAccumulate},
		{-5, models.RatingHold},
		{-15, models.RatingReduce},
		{-15.01, models.RatingSell},
	}
	for _, tc := range cases {
		if got := RatingForUpside(models.Float(tc.upside)); got != tc.want {
			t.Errorf("RatingForUpside(%v) = %s, want %s", tc.upside, got, tc.want)
		}
	}
}

func TestRatingForUpside_NilIsUnknown(t *testing.T) {
	if got := RatingForUpside(nil); got != models.RatingUnknown {
		t.Errorf("RatingForUpside(nil) = %s, want UNKNOWN", got)
	}
}

func TestBuildRecommendation_Buy(t *testing.T) {
	fin := &models.CompanyFinancials{Ticker: "AAPL", CurrentPrice: 150}
	fairValue := models.FairValueRange{
		Low:  models.Float(150.75),
		Mid:  models.Float(172.5),
		High: models.Float(194.25),
	}

	rec := buildRecommendation(fin, fairValue, models.RiskModerate)

	if rec.UpsidePct == nil {
		t.Fatal("UpsidePct is nil, want a value")
	}
	if math.Abs(*rec.UpsidePct-15.0) > 1e-9 {
		t.Errorf("UpsidePct = %v, want 15.0", *rec.UpsidePct)
	}
	if rec.Rating != models.RatingBuy {
		t.Errorf("Rating = %s, want BUY", rec.Rating)
	}
	if rec.TargetPrice == nil || *rec.TargetPrice != 172.5 {
		t.Errorf("TargetPrice = %v, want 172.5", rec.TargetPrice)
	}
	if rec.Description == "" {
		t.Error("Description is empty")
	}
}

func TestBuildRecommendation_Reduce(t *testing.T) {
	fin := &models.CompanyFinancials{Ticker: "TEST", CurrentPrice: 150}
	fairValue := models.FairValueRange{
		Low:  models.Float(126),
		Mid:  models.Float(140),
		High: models.Float(154),
	}

	rec := buildRecommendation(fin, fairValue, models.RiskModerate)

	if rec.UpsidePct == nil {
		t.Fatal("UpsidePct is nil, want a value")
	}
	if math.Abs(*rec.UpsidePct-(-6.7)) > 1e-9 {
		t.Errorf("UpsidePct = %v, want -6.7", *rec.UpsidePct)
	}
	if rec.Rating != models.RatingReduce {
		t.Errorf("Rating = %s, want REDUCE", rec.Rating)
	}
}

func TestBuildRecommendation_UnresolvedFairValue(t *testing.T) {
	fin := &models.CompanyFinancials{Ticker: "TEST", CurrentPrice: 150}

	rec := buildRecommendation(fin, models.FairValueRange{}, models.RiskModerate)

	if rec.Rating != models.RatingUnknown {
		t.Errorf("Rating = %s, want UNKNOWN", rec.Rating)
	}
	if rec.TargetPrice != nil || rec.UpsidePct != nil {
		t.Error("target and upside resolved without a fair value")
	}
}
