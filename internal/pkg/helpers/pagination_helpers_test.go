package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func contextWithQuery(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return c
}

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantPage int
		wantSize int
	}{
		{"defaults", "", 1, 10},
		{"explicit values", "page=3&size=25", 3, 25},
		{"zero page falls back", "page=0", 1, 10},
		{"negative page falls back", "page=-2", 1, 10},
		{"oversized page size falls back", "size=500", 1, 10},
		{"non numeric input falls back", "page=abc&size=xyz", 1, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, size := ParsePageParams(contextWithQuery(t, tc.query))
			if page != tc.wantPage || size != tc.wantSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", page, size, tc.wantPage, tc.wantSize)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	t.Run("partial last page", func(t *testing.T) {
		info := NewPaginationInfo(45, 2, 10)
		if info.TotalPages != 5 {
			t.Errorf("TotalPages = %d, want 5", info.TotalPages)
		}
		if info.CurrentPage != 2 {
			t.Errorf("CurrentPage = %d, want 2", info.CurrentPage)
		}
	})

	t.Run("empty result set", func(t *testing.T) {
		info := NewPaginationInfo(0, 1, 10)
		if info.TotalPages != 1 {
			t.Errorf("TotalPages = %d, want 1", info.TotalPages)
		}
	})

	t.Run("page beyond range is clamped", func(t *testing.T) {
		info := NewPaginationInfo(10, 9, 10)
		if info.CurrentPage != 1 {
			t.Errorf("CurrentPage = %d, want clamped to 1", info.CurrentPage)
		}
	})
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Hour); got != 2*time.Hour {
		t.Errorf("ParseDuration(2h) = %v, want 2h", got)
	}
	if got := ParseDuration("one week", time.Hour); got != time.Hour {
		t.Errorf("ParseDuration(invalid) = %v, want the default", got)
	}
}

func TestParseTimePtr(t *testing.T) {
	if got, err := ParseTimePtr(nil); err != nil || got != nil {
		t.Errorf("ParseTimePtr(nil) = %v, %v, want nil, nil", got, err)
	}

	empty := ""
	if got, err := ParseTimePtr(&empty); err != nil || got != nil {
		t.Errorf("ParseTimePtr(empty) = %v, %v, want nil, nil", got, err)
	}

	valid := "2026-03-15T10:00:00Z"
	got, err := ParseTimePtr(&valid)
	if err != nil {
		t.Fatalf("ParseTimePtr(valid): %v", err)
	}
	if got == nil || !got.Equal(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseTimePtr(valid) = %v", got)
	}

	bad := "15/03/2026"
	if _, err := ParseTimePtr(&bad); err == nil {
		t.Error("ParseTimePtr accepted non RFC 3339 input")
	}
}
