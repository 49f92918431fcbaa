package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type rangeRequest struct {
	Market string `query:"market" validate:"required"`
	Days   int    `query:"days" default:"30" validate:"gte=7,lte=60"`
}

func bindQuery(target string, req interface{}) interface{} {
	e := echo.New()
	r := httptest.NewRequest(http.MethodGet, target, nil)
	c := e.NewContext(r, httptest.NewRecorder())
	return ReadAndValidateRequest(c, req)
}

func TestReadAndValidateAppliesDefaults(t *testing.T) {
	var req rangeRequest
	if errs := bindQuery("/?market=CISOKA", &req); errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if req.Days != 30 {
		t.Fatalf("expected default days 30, got %d", req.Days)
	}
}

func TestReadAndValidateRequired(t *testing.T) {
	var req rangeRequest
	errs, ok := bindQuery("/", &req).([]ValidationError)
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one validation error, got %v", errs)
	}
	if errs[0].Code != "ERR_REQUIRED" || errs[0].Field != "Market" {
		t.Fatalf("unexpected error %+v", errs[0])
	}
	if errs[0].Message != "Market is required" {
		t.Fatalf("unexpected message %q", errs[0].Message)
	}
}

func TestReadAndValidateRangeBounds(t *testing.T) {
	var req rangeRequest
	errs, ok := bindQuery("/?market=CISOKA&days=90", &req).([]ValidationError)
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one validation error, got %v", errs)
	}
	if errs[0].Code != "ERR_LTE" || errs[0].Message != "Days must be at most 60" {
		t.Fatalf("unexpected error %+v", errs[0])
	}
	if errs[0].Params["max"] != "60" {
		t.Fatalf("unexpected params %+v", errs[0].Params)
	}

	var low rangeRequest
	errs, ok = bindQuery("/?market=CISOKA&days=1", &low).([]ValidationError)
	if !ok || len(errs) != 1 {
		t.Fatalf("expected one validation error, got %v", errs)
	}
	if errs[0].Code != "ERR_GTE" || errs[0].Params["min"] != "7" {
		t.Fatalf("unexpected error %+v", errs[0])
	}
}
